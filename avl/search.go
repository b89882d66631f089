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

// Find returns the node holding key, or nil if the key is not in the tree.
func (tree *Tree) Find(key int) *Node {
	p := tree.root
	for p != nil {
		switch {
		case key < p.key:
			p = p.left
		case key > p.key:
			p = p.right
		default:
			return p
		}
	}
	return nil
}

// Contains reports whether key is in the tree
func (tree *Tree) Contains(key int) bool {
	return tree.Find(key) != nil
}

// Min returns the node with the lowest key, nil for an empty tree
func (tree *Tree) Min() *Node {
	if tree.root == nil {
		return nil
	}
	return minNode(tree.root)
}

// Max returns the node with the highest key, nil for an empty tree
func (tree *Tree) Max() *Node {
	if tree.root == nil {
		return nil
	}
	return maxNode(tree.root)
}
