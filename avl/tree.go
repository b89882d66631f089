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

// Stats holds cumulative counters for a tree. Only operations that changed
// the tree are counted.
type Stats struct {
	Inserts        int64
	Deletes        int64
	LeftRotations  int64
	RightRotations int64
}

// Rotations returns the total number of single rotations performed
func (s Stats) Rotations() int64 {
	return s.LeftRotations + s.RightRotations
}

// Tree holds the root node and the number of nodes below it
type Tree struct {
	root  *Node
	count int
	stats Stats
}

// New creates an empty tree
func New() *Tree {
	return &Tree{
		root:  nil,
		count: 0,
	}
}

// Size returns the number of keys in the tree
func (tree *Tree) Size() int {
	return tree.count
}

// IsEmpty is true when the tree holds no keys
func (tree *Tree) IsEmpty() bool {
	return tree.root == nil
}

// Root returns the root node, nil for an empty tree
func (tree *Tree) Root() *Node {
	return tree.root
}

// Height returns the height of the root, -1 for an empty tree
func (tree *Tree) Height() int {
	return height(tree.root)
}

// Stats returns a copy of the tree counters
func (tree *Tree) Stats() Stats {
	return tree.stats
}

// ResetStats zeroes the tree counters without touching the keys
func (tree *Tree) ResetStats() {
	tree.stats = Stats{}
}

// Clear discards every node in the tree.
func (tree *Tree) Clear() {
	tree.root = nil
	tree.count = 0
}
