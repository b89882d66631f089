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

package avl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildTree(keys ...int) *Tree {
	tree := New()
	for _, key := range keys {
		tree.Insert(key)
	}
	return tree
}

func TestVerifyDetectsCorruption(t *testing.T) {
	tests := []struct {
		name      string
		corrupt   func(tree *Tree)
		violation Violation
	}{
		{
			name:      "stale height",
			corrupt:   func(tree *Tree) { tree.root.height = 7 },
			violation: ViolationHeight,
		},
		{
			name:      "key out of order",
			corrupt:   func(tree *Tree) { tree.root.left.key = 100 },
			violation: ViolationOrder,
		},
		{
			name:      "duplicate key",
			corrupt:   func(tree *Tree) { tree.root.right.key = tree.root.key },
			violation: ViolationOrder,
		},
		{
			name:      "wrong count",
			corrupt:   func(tree *Tree) { tree.count++ },
			violation: ViolationCount,
		},
		{
			name: "unbalanced chain",
			corrupt: func(tree *Tree) {
				// hang a two node chain off the rightmost leaf
				leaf := maxNode(tree.root)
				leaf.right = &Node{key: 1000, height: 1, right: &Node{key: 1001}}
				leaf.height = 2
				tree.count += 2
			},
			violation: ViolationBalance,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := buildTree(4, 2, 6, 1, 3, 5, 7)
			require.NoError(t, tree.Verify())

			tc.corrupt(tree)

			err := tree.Verify()
			require.Error(t, err)
			var ie *InvariantError
			require.True(t, errors.As(err, &ie), "unexpected error type %T", err)
			assert.Equal(t, tc.violation, ie.Violation)
		})
	}
}

func TestRotationsRelinkAndRecomputeHeights(t *testing.T) {
	tree := buildTree(2, 1, 4, 3, 5)
	root := tree.root

	pivot := tree.rotateLeft(root)
	assert.Equal(t, 4, pivot.key)
	assert.Same(t, root, pivot.left)
	assert.Equal(t, 3, root.right.key)
	assert.Equal(t, 1, root.height)
	assert.Equal(t, 2, pivot.height)

	back := tree.rotateRight(pivot)
	assert.Same(t, root, back)
	assert.Same(t, pivot, root.right)
	assert.Equal(t, 3, pivot.left.key)
	assert.Equal(t, 1, pivot.height)
	assert.Equal(t, 2, root.height)

	assert.Equal(t, int64(1), tree.stats.LeftRotations)
	assert.Equal(t, int64(1), tree.stats.RightRotations)
}

func TestInvariantErrorMessage(t *testing.T) {
	err := &InvariantError{Violation: ViolationBalance, Key: 9, Detail: "balance factor 2"}
	assert.Equal(t, "balance invariant at key 9: balance factor 2", err.Error())

	err = &InvariantError{Violation: ViolationCount, Detail: "size is 3 but 2 nodes are reachable"}
	assert.Equal(t, "count invariant: size is 3 but 2 nodes are reachable", err.Error())
}
