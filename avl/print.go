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
	"fmt"
	"io"
)

// Print writes one "[key, height, bf]" line per node in ascending key order.
func (tree *Tree) Print(w io.Writer) error {
	p := &printer{w: w}
	tree.Walk(func(n *Node) bool {
		p.printf("[%d, %d, %d]\n", n.key, n.height, balanceFactor(n))
		return p.err == nil
	})
	return p.err
}

// to control the drawing routine
type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Draw writes an ASCII picture of the tree, rotated a quarter turn: the
// right subtree is above its parent and the left subtree below.
func (tree *Tree) Draw(w io.Writer) error {
	p := &printer{w: w}
	if tree.root == nil {
		p.printf("(empty)\n")
		return p.err
	}
	p.draw(tree.root, "", rootBranch)
	return p.err
}

// printer keeps the first write error so the walk can stop on it
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) draw(node *Node, prefix string, br branch) {
	if node.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		p.draw(node.right, prefix+t, rightBranch)
	}
	switch br {
	case rootBranch:
		p.printf("%s|------+ ", prefix)
	case leftBranch:
		p.printf("%s\\------+ ", prefix)
	case rightBranch:
		p.printf("%s/------+ ", prefix)
	}
	p.printf("%d h=%d bf=%+d\n", node.key, node.height, balanceFactor(node))
	if node.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		p.draw(node.left, prefix+t, leftBranch)
	}
}
