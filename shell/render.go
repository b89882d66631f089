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

package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emicklei/dot"
	"github.com/pkg/errors"

	"github.com/cybrota/avltree/avl"
)

// Format selects how the tree is printed
type Format string

const (
	FormatTable Format = "table"
	FormatTree  Format = "tree"
	FormatDot   Format = "dot"
)

// ParseFormat accepts table, tree or dot (case insensitive)
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatTree, FormatDot:
		return f, nil
	}
	return "", errors.Wrapf(ErrUsage, "unknown print format %q, want table, tree or dot", s)
}

// Render returns the tree in the given format
func Render(tree *avl.Tree, format Format) (string, error) {
	var b strings.Builder
	switch format {
	case FormatTable:
		if err := tree.Print(&b); err != nil {
			return "", err
		}
	case FormatTree:
		if err := tree.Draw(&b); err != nil {
			return "", err
		}
	case FormatDot:
		return DotGraph(tree).String(), nil
	default:
		return "", errors.Wrapf(ErrUsage, "unknown print format %q", format)
	}
	return b.String(), nil
}

// DotGraph builds a Graphviz graph of the tree with one vertex per key
func DotGraph(tree *avl.Tree) *dot.Graph {
	graph := dot.NewGraph(dot.Directed)

	var traverse func(node *avl.Node) dot.Node
	traverse = func(node *avl.Node) dot.Node {
		label := fmt.Sprintf("%d (h=%d, bf=%d)", node.Key(), node.Height(), node.BalanceFactor())
		n := graph.Node(strconv.Itoa(node.Key())).Label(label)
		if left := node.Left(); left != nil {
			n.Edge(traverse(left), "l")
		}
		if right := node.Right(); right != nil {
			n.Edge(traverse(right), "r")
		}
		return n
	}

	if root := tree.Root(); root != nil {
		traverse(root)
	}
	return graph
}
