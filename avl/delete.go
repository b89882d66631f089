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

// Delete removes key from the tree. It returns false, and leaves the tree
// untouched, when the key is not present.
func (tree *Tree) Delete(key int) bool {
	if tree.Find(key) == nil {
		return false
	}

	tree.root = tree.deleteRecursive(tree.root, key)
	tree.count--
	tree.stats.Deletes++
	return true
}

func (tree *Tree) deleteRecursive(node *Node, key int) *Node {
	if node == nil {
		return nil
	}

	if key < node.key {
		node.left = tree.deleteRecursive(node.left, key)
	} else if key > node.key {
		node.right = tree.deleteRecursive(node.right, key)
	} else {
		// zero or one child: splice the node out
		if node.left == nil {
			return node.right
		}
		if node.right == nil {
			return node.left
		}

		// Two children: this node takes over the key of its inorder
		// successor and the successor node is removed instead.
		successor := minNode(node.right)
		node.key = successor.key
		node.right = tree.deleteRecursive(node.right, successor.key)
	}

	updateHeight(node)
	return tree.rebalance(node)
}

// rebalance restores the balance of node after one of its subtrees shrank.
// Unlike insert, more than one ancestor on the path may need it.
func (tree *Tree) rebalance(node *Node) *Node {
	bf := balanceFactor(node)

	// left heavy
	if bf > 1 {
		if balanceFactor(node.left) >= 0 {
			return tree.rotateRight(node)
		}
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	}

	// right heavy
	if bf < -1 {
		if balanceFactor(node.right) <= 0 {
			return tree.rotateLeft(node)
		}
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}

func minNode(node *Node) *Node {
	for node.left != nil {
		node = node.left
	}
	return node
}

func maxNode(node *Node) *Node {
	for node.right != nil {
		node = node.right
	}
	return node
}
