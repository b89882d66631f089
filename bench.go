// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/metrics"
)

// cancellation is checked once per checkEvery operations
const checkEvery = 1024

type benchOptions struct {
	Keys    int
	Deletes int
	Lookups int
	Seed    int64

	HistogramBins int
	BloomBits     uint
	BloomHashes   uint

	Progress bool
}

func benchOptionsFromConfig(cfg BenchConfig) benchOptions {
	return benchOptions{
		Keys:          cfg.Keys,
		Deletes:       cfg.Deletes,
		Lookups:       cfg.Lookups,
		Seed:          cfg.Seed,
		HistogramBins: cfg.HistogramBins,
		BloomBits:     cfg.BloomBits,
		BloomHashes:   cfg.BloomHashes,
	}
}

func (o benchOptions) validate() error {
	if o.Keys < 0 || o.Deletes < 0 || o.Lookups < 0 {
		return errors.New("keys, deletes and lookups must not be negative")
	}
	if o.Deletes > o.Keys {
		return errors.Errorf("cannot delete %d of %d keys", o.Deletes, o.Keys)
	}
	if o.BloomBits == 0 || o.BloomHashes == 0 {
		return errors.New("bloom filter needs at least one bit and one hash")
	}
	return nil
}

type benchPhase struct {
	Name     string
	Ops      int
	Duration time.Duration
}

func (p benchPhase) opsPerSecond() int64 {
	secs := p.Duration.Seconds()
	if secs <= 0 {
		return int64(p.Ops)
	}
	return int64(float64(p.Ops) / secs)
}

type benchResult struct {
	Phases []benchPhase

	Hits           int
	Misses         int
	FilterSkips    int // lookups answered by the bloom filter alone
	FalsePositives int // filter said maybe, tree said no

	Metrics metrics.TreeMetrics
}

// lockedTree serializes the workload with metrics scrapes
type lockedTree struct {
	mu   sync.Mutex
	tree *avl.Tree
}

func newLockedTree(tree *avl.Tree) *lockedTree {
	return &lockedTree{tree: tree}
}

func (l *lockedTree) do(fn func(tree *avl.Tree)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(l.tree)
}

func (l *lockedTree) Snapshot() metrics.TreeMetrics {
	l.mu.Lock()
	defer l.mu.Unlock()
	return metrics.Snapshot(l.tree)
}

func newBenchBar(total int, description string, enabled bool) *progressbar.ProgressBar {
	if !enabled {
		return progressbar.DefaultSilent(int64(total))
	}
	return progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(65*time.Millisecond),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

// runBench inserts opts.Keys distinct random keys, deletes opts.Deletes of
// them and runs opts.Lookups random lookups guarded by a bloom filter. The
// invariants are verified after every phase.
func runBench(ctx context.Context, lt *lockedTree, opts benchOptions) (benchResult, error) {
	var result benchResult
	if err := opts.validate(); err != nil {
		return result, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	keySpace := 2 * opts.Keys
	if keySpace == 0 {
		keySpace = 1
	}
	keys := rng.Perm(keySpace)[:opts.Keys]
	filter := NewKeyFilter(opts.BloomBits, opts.BloomHashes)

	phase := func(name string, n int, step func(i int) error) error {
		bar := newBenchBar(n, name, opts.Progress)
		defer bar.Close()

		start := time.Now()
		for i := 0; i < n; i++ {
			if i%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return errors.Wrapf(err, "%s interrupted after %d operations", name, i)
				}
			}
			if err := step(i); err != nil {
				return err
			}
			_ = bar.Add(1)
		}
		p := benchPhase{Name: name, Ops: n, Duration: time.Since(start)}
		result.Phases = append(result.Phases, p)

		var err error
		lt.do(func(tree *avl.Tree) { err = tree.Verify() })
		if err != nil {
			return errors.Wrapf(err, "after %s", name)
		}
		log.Info().
			Str("phase", name).
			Str("ops", humanize.Comma(int64(n))).
			Str("ops_per_sec", humanize.Comma(p.opsPerSecond())).
			Msg("phase done")
		return nil
	}

	err := phase("insert", len(keys), func(i int) error {
		var ok bool
		lt.do(func(tree *avl.Tree) { ok = tree.Insert(keys[i]) })
		if !ok {
			return errors.Errorf("insert %d reported a duplicate", keys[i])
		}
		filter.Add(keys[i])
		return nil
	})
	if err != nil {
		return result, err
	}

	rng.Shuffle(len(keys), func(i, j int) { keys[i], keys[j] = keys[j], keys[i] })
	err = phase("delete", opts.Deletes, func(i int) error {
		var ok bool
		lt.do(func(tree *avl.Tree) { ok = tree.Delete(keys[i]) })
		if !ok {
			return errors.Errorf("delete %d did not find the key", keys[i])
		}
		return nil
	})
	if err != nil {
		return result, err
	}

	err = phase("lookup", opts.Lookups, func(i int) error {
		key := rng.Intn(keySpace)
		if !filter.MayContain(key) {
			result.FilterSkips++
			return nil
		}
		var found bool
		lt.do(func(tree *avl.Tree) { found = tree.Find(key) != nil })
		if found {
			result.Hits++
		} else {
			result.FalsePositives++
		}
		return nil
	})
	if err != nil {
		return result, err
	}
	result.Misses = result.FilterSkips + result.FalsePositives

	result.Metrics = lt.Snapshot()
	return result, nil
}

func (r benchResult) report(w io.Writer, bins int) error {
	if _, err := fmt.Fprintf(w, "Workload:\n"); err != nil {
		return err
	}
	for _, p := range r.Phases {
		_, err := fmt.Fprintf(w, " %s: %s ops in %s (%s ops/sec)\n",
			p.Name,
			humanize.Comma(int64(p.Ops)),
			p.Duration.Round(time.Microsecond),
			humanize.Comma(p.opsPerSecond()),
		)
		if err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "\nLookups:\n hits: %s, misses: %s (bloom skipped %s, false positives %s)\n\n",
		humanize.Comma(int64(r.Hits)),
		humanize.Comma(int64(r.Misses)),
		humanize.Comma(int64(r.FilterSkips)),
		humanize.Comma(int64(r.FalsePositives)),
	)
	if err != nil {
		return err
	}
	return r.Metrics.Report(w, bins)
}
