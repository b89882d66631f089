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

package metrics

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/dustin/go-humanize"

	"github.com/cybrota/avltree/avl"
)

// TreeMetrics is a point in time view of a tree's shape and counters
type TreeMetrics struct {
	Size   int64
	Height int64

	Inserts        int64
	Deletes        int64
	LeftRotations  int64
	RightRotations int64

	// Depths[d] is the number of nodes at depth d, the root is at depth 0
	Depths []int64
}

// Snapshot collects the metrics of tree. It walks every node.
func Snapshot(tree *avl.Tree) TreeMetrics {
	stats := tree.Stats()
	m := TreeMetrics{
		Size:           int64(tree.Size()),
		Height:         int64(tree.Height()),
		Inserts:        stats.Inserts,
		Deletes:        stats.Deletes,
		LeftRotations:  stats.LeftRotations,
		RightRotations: stats.RightRotations,
	}
	if tree.Height() >= 0 {
		m.Depths = make([]int64, tree.Height()+1)
		countDepths(tree.Root(), 0, m.Depths)
	}
	return m
}

func countDepths(node *avl.Node, depth int, depths []int64) {
	if node == nil {
		return
	}
	depths[depth]++
	countDepths(node.Left(), depth+1, depths)
	countDepths(node.Right(), depth+1, depths)
}

// AverageDepth returns the mean depth of all nodes, 0 for an empty tree
func (m TreeMetrics) AverageDepth() float64 {
	if m.Size == 0 {
		return 0
	}
	var total int64
	for d, n := range m.Depths {
		total += int64(d) * n
	}
	return float64(total) / float64(m.Size)
}

// Report prints the counters and, when bins > 0, a histogram of node depths.
func (m TreeMetrics) Report(w io.Writer, bins int) error {
	_, err := fmt.Fprintf(w, "Tree:\n nodes: %s, height: %d, avg depth: %.2f\n",
		humanize.Comma(m.Size),
		m.Height,
		m.AverageDepth(),
	)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "\nOperations:\n inserts: %s, deletes: %s, rotations: %s (left %s, right %s)\n",
		humanize.Comma(m.Inserts),
		humanize.Comma(m.Deletes),
		humanize.Comma(m.LeftRotations+m.RightRotations),
		humanize.Comma(m.LeftRotations),
		humanize.Comma(m.RightRotations),
	)
	if err != nil {
		return err
	}

	if bins <= 0 || m.Size == 0 {
		return nil
	}

	histData := make([]float64, 0, m.Size)
	for d, n := range m.Depths {
		for i := int64(0); i < n; i++ {
			histData = append(histData, float64(d))
		}
	}
	if _, err := fmt.Fprintf(w, "\nNode depth:\n"); err != nil {
		return err
	}
	hist := histogram.Hist(bins, histData)
	return histogram.Fprintf(w, hist, histogram.Linear(10), func(v float64) string {
		return fmt.Sprintf("%.1f", v)
	})
}
