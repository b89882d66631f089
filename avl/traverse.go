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

import "fmt"

// Entry is the diagnostic view of one node: its key, height and balance factor.
type Entry struct {
	Key     int
	Height  int
	Balance int
}

func (e Entry) String() string {
	return fmt.Sprintf("[%d, %d, %d]", e.Key, e.Height, e.Balance)
}

// Traverse returns an entry for every node in ascending key order.
func (tree *Tree) Traverse() []Entry {
	entries := make([]Entry, 0, tree.count)
	tree.Walk(func(n *Node) bool {
		entries = append(entries, Entry{
			Key:     n.key,
			Height:  n.height,
			Balance: balanceFactor(n),
		})
		return true
	})
	return entries
}

// Keys returns all keys in ascending order
func (tree *Tree) Keys() []int {
	keys := make([]int, 0, tree.count)
	tree.Walk(func(n *Node) bool {
		keys = append(keys, n.key)
		return true
	})
	return keys
}

// Walk calls fn for every node in ascending key order until fn returns false.
// fn must not modify the tree.
func (tree *Tree) Walk(fn func(n *Node) bool) {
	inorder(tree.root, fn)
}

func inorder(node *Node, fn func(n *Node) bool) bool {
	if node == nil {
		return true
	}
	if !inorder(node.left, fn) {
		return false
	}
	if !fn(node) {
		return false
	}
	return inorder(node.right, fn)
}
