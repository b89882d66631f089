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

// rotateLeft makes the right child of node the new subtree root.
//
//	  node               pivot
//	 /    \             /     \
//	a     pivot   =>  node     c
//	     /     \     /    \
//	    b       c   a      b
func (tree *Tree) rotateLeft(node *Node) *Node {
	pivot := node.right

	node.right = pivot.left
	pivot.left = node

	// node is now below pivot, so it goes first
	updateHeight(node)
	updateHeight(pivot)

	tree.stats.LeftRotations++
	return pivot
}

// rotateRight is the mirror of rotateLeft: the left child of node becomes
// the new subtree root.
func (tree *Tree) rotateRight(node *Node) *Node {
	pivot := node.left

	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	tree.stats.RightRotations++
	return pivot
}
