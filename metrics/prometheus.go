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
	"net/http"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "avltree"

// SnapshotFunc returns the current metrics. The collector calls it once per
// scrape, so it must be safe to call from the HTTP server goroutine.
type SnapshotFunc func() TreeMetrics

var _ prometheus.Collector = &Collector{}

// Collector exposes a tree's metrics to prometheus
type Collector struct {
	snapshot SnapshotFunc

	nodes     *prometheus.Desc
	height    *prometheus.Desc
	inserts   *prometheus.Desc
	deletes   *prometheus.Desc
	rotations *prometheus.Desc
	depth     *prometheus.Desc
}

// NewCollector creates a collector reading from snapshot
func NewCollector(snapshot SnapshotFunc) *Collector {
	return &Collector{
		snapshot: snapshot,
		nodes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "nodes"),
			"Number of keys in the tree.", nil, nil),
		height: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "height"),
			"Height of the root node, -1 when empty.", nil, nil),
		inserts: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "inserts_total"),
			"Keys added to the tree.", nil, nil),
		deletes: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "deletes_total"),
			"Keys removed from the tree.", nil, nil),
		rotations: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "rotations_total"),
			"Single rotations performed while rebalancing.", []string{"direction"}, nil),
		depth: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "", "node_depth"),
			"Distribution of node depths, the root is at depth 0.", nil, nil),
	}
}

// Describe implements prometheus.Collector
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.nodes
	ch <- c.height
	ch <- c.inserts
	ch <- c.deletes
	ch <- c.rotations
	ch <- c.depth
}

// Collect implements prometheus.Collector
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	m := c.snapshot()

	ch <- prometheus.MustNewConstMetric(c.nodes, prometheus.GaugeValue, float64(m.Size))
	ch <- prometheus.MustNewConstMetric(c.height, prometheus.GaugeValue, float64(m.Height))
	ch <- prometheus.MustNewConstMetric(c.inserts, prometheus.CounterValue, float64(m.Inserts))
	ch <- prometheus.MustNewConstMetric(c.deletes, prometheus.CounterValue, float64(m.Deletes))
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(m.LeftRotations), "left")
	ch <- prometheus.MustNewConstMetric(c.rotations, prometheus.CounterValue, float64(m.RightRotations), "right")

	// buckets are cumulative: bucket d counts nodes at depth <= d
	buckets := make(map[float64]uint64, len(m.Depths))
	var cumulative uint64
	var sum float64
	for d, n := range m.Depths {
		cumulative += uint64(n)
		buckets[float64(d)] = cumulative
		sum += float64(d) * float64(n)
	}
	ch <- prometheus.MustNewConstHistogram(c.depth, cumulative, sum, buckets)
}

// NewRegistry returns a registry holding only the tree collector
func NewRegistry(snapshot SnapshotFunc) *prometheus.Registry {
	registry := prometheus.NewRegistry()
	registry.MustRegister(NewCollector(snapshot))
	return registry
}

// WriteTextfile writes the metrics in the text exposition format, suitable
// for the node exporter textfile collector.
func WriteTextfile(path string, snapshot SnapshotFunc) error {
	if err := prometheus.WriteToTextfile(path, NewRegistry(snapshot)); err != nil {
		return errors.Wrapf(err, "write metrics to %s", path)
	}
	return nil
}

// Serve exposes the metrics on addr under /metrics. It blocks until the
// server fails.
func Serve(addr string, snapshot SnapshotFunc) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(NewRegistry(snapshot), promhttp.HandlerOpts{}))
	return http.ListenAndServe(addr, mux)
}
