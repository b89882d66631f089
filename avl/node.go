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

// Node is a single key in the tree. Its links are owned by the tree and can
// only be read from outside the package.
type Node struct {
	key    int
	height int // longest path down to a leaf, a leaf is 0
	left   *Node
	right  *Node
}

func newNode(key int) *Node {
	return &Node{key: key, height: 0}
}

// Key returns the key stored in the node
func (n *Node) Key() int {
	return n.key
}

// Height returns the height of the subtree rooted at n, or -1 for a nil node.
func (n *Node) Height() int {
	return height(n)
}

// Left returns the left child, nil if there is none
func (n *Node) Left() *Node {
	return n.left
}

// Right returns the right child, nil if there is none
func (n *Node) Right() *Node {
	return n.right
}

// BalanceFactor returns height(left) - height(right). It is 0 for a nil node.
func (n *Node) BalanceFactor() int {
	return balanceFactor(n)
}

func height(n *Node) int {
	if n == nil {
		return -1
	}
	return n.height
}

func updateHeight(n *Node) {
	n.height = 1 + max(height(n.left), height(n.right))
}

func balanceFactor(n *Node) int {
	if n == nil {
		return 0
	}
	return height(n.left) - height(n.right)
}
