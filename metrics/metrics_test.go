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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/avltree/avl"
)

func threeNodeTree() *avl.Tree {
	tree := avl.New()
	for _, key := range []int{1, 2, 3} {
		tree.Insert(key)
	}
	return tree
}

func TestSnapshot(t *testing.T) {
	m := Snapshot(threeNodeTree())

	assert.Equal(t, int64(3), m.Size)
	assert.Equal(t, int64(1), m.Height)
	assert.Equal(t, int64(3), m.Inserts)
	assert.Equal(t, int64(1), m.LeftRotations)
	assert.Equal(t, int64(0), m.RightRotations)
	assert.Equal(t, []int64{1, 2}, m.Depths)
	assert.InDelta(t, 2.0/3.0, m.AverageDepth(), 1e-9)
}

func TestSnapshotEmpty(t *testing.T) {
	m := Snapshot(avl.New())

	assert.Equal(t, int64(0), m.Size)
	assert.Equal(t, int64(-1), m.Height)
	assert.Empty(t, m.Depths)
	assert.Equal(t, 0.0, m.AverageDepth())
}

func TestReport(t *testing.T) {
	m := Snapshot(threeNodeTree())

	var buf bytes.Buffer
	require.NoError(t, m.Report(&buf, 0))
	assert.Contains(t, buf.String(), "nodes: 3, height: 1")
	assert.Contains(t, buf.String(), "rotations: 1 (left 1, right 0)")
	assert.NotContains(t, buf.String(), "Node depth")

	buf.Reset()
	require.NoError(t, m.Report(&buf, 4))
	assert.Contains(t, buf.String(), "Node depth")
}

func TestCollector(t *testing.T) {
	tree := threeNodeTree()
	c := NewCollector(func() TreeMetrics { return Snapshot(tree) })

	expected := `
# HELP avltree_height Height of the root node, -1 when empty.
# TYPE avltree_height gauge
avltree_height 1
# HELP avltree_nodes Number of keys in the tree.
# TYPE avltree_nodes gauge
avltree_nodes 3
`
	require.NoError(t, testutil.CollectAndCompare(c, strings.NewReader(expected), "avltree_nodes", "avltree_height"))

	// 2 gauges, 2 counters, 2 rotation series and the depth histogram
	assert.Equal(t, 7, testutil.CollectAndCount(c))
}

func TestWriteTextfile(t *testing.T) {
	tree := threeNodeTree()
	path := filepath.Join(t.TempDir(), "avltree.prom")

	require.NoError(t, WriteTextfile(path, func() TreeMetrics { return Snapshot(tree) }))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "avltree_nodes 3")
	assert.Contains(t, string(data), `avltree_rotations_total{direction="left"} 1`)
}
