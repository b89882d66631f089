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

// Insert adds key to the tree and reports whether it was added.
// Inserting a key that is already present leaves the tree unchanged.
func (tree *Tree) Insert(key int) bool {
	added := false
	tree.root = tree.insertRecursive(tree.root, key, &added)
	if added {
		tree.count++
		tree.stats.Inserts++
	}
	return added
}

func (tree *Tree) insertRecursive(node *Node, key int, added *bool) *Node {
	if node == nil {
		*added = true
		return newNode(key)
	}

	if key < node.key {
		node.left = tree.insertRecursive(node.left, key, added)
	} else if key > node.key {
		node.right = tree.insertRecursive(node.right, key, added)
	} else {
		// duplicate
		return node
	}

	updateHeight(node)

	// The new key sits below the child on the heavy side; which grandchild
	// it went into decides between a single and a double rotation.
	bf := balanceFactor(node)
	switch {
	case bf > 1 && key < node.left.key:
		return tree.rotateRight(node)
	case bf > 1 && key > node.left.key:
		node.left = tree.rotateLeft(node.left)
		return tree.rotateRight(node)
	case bf < -1 && key > node.right.key:
		return tree.rotateLeft(node)
	case bf < -1 && key < node.right.key:
		node.right = tree.rotateRight(node.right)
		return tree.rotateLeft(node)
	}

	return node
}
