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
	"strings"

	"github.com/pkg/errors"

	"github.com/cybrota/avltree/avl"
)

// builtin is a Handler defined by a run function
type builtin struct {
	name    string
	aliases []string
	usage   string
	summary string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(s *Session, cmd *Command) (string, error)
}

func (b *builtin) Name() string      { return b.name }
func (b *builtin) Aliases() []string { return b.aliases }
func (b *builtin) Usage() string     { return b.usage }
func (b *builtin) Summary() string   { return b.summary }

func (b *builtin) Run(s *Session, cmd *Command) (string, error) {
	n := len(cmd.SubCmds)
	if n < b.minArgs || (b.maxArgs >= 0 && n > b.maxArgs) {
		return "", errors.Wrapf(ErrUsage, "%s", b.usage)
	}
	return b.run(s, cmd)
}

func mutationHandlers() []Handler {
	return []Handler{
		&builtin{
			name:    "insert",
			aliases: []string{"add", "i"},
			usage:   "insert KEY...",
			summary: "Insert keys, duplicates are ignored",
			minArgs: 1,
			maxArgs: -1,
			run: func(s *Session, cmd *Command) (string, error) {
				keys, err := cmd.Keys()
				if err != nil {
					return "", err
				}
				lines := make([]string, 0, len(keys))
				for _, key := range keys {
					if s.Tree.Insert(key) {
						lines = append(lines, fmt.Sprintf("inserted %d", key))
					} else {
						lines = append(lines, fmt.Sprintf("duplicate %d", key))
					}
				}
				return strings.Join(lines, "\n"), nil
			},
		},
		&builtin{
			name:    "delete",
			aliases: []string{"del", "rm", "d"},
			usage:   "delete KEY...",
			summary: "Delete keys, missing keys are reported",
			minArgs: 1,
			maxArgs: -1,
			run: func(s *Session, cmd *Command) (string, error) {
				keys, err := cmd.Keys()
				if err != nil {
					return "", err
				}
				lines := make([]string, 0, len(keys))
				for _, key := range keys {
					if s.Tree.Delete(key) {
						lines = append(lines, fmt.Sprintf("deleted %d", key))
					} else {
						lines = append(lines, fmt.Sprintf("not found %d", key))
					}
				}
				return strings.Join(lines, "\n"), nil
			},
		},
		&builtin{
			name:    "clear",
			usage:   "clear",
			summary: "Remove every key",
			maxArgs: 0,
			run: func(s *Session, cmd *Command) (string, error) {
				n := s.Tree.Size()
				s.Tree.Clear()
				return fmt.Sprintf("cleared %d keys", n), nil
			},
		},
	}
}

func queryHandlers() []Handler {
	return []Handler{
		&builtin{
			name:    "find",
			aliases: []string{"get", "f"},
			usage:   "find KEY",
			summary: "Look up a key and show its height and balance factor",
			minArgs: 1,
			maxArgs: 1,
			run: func(s *Session, cmd *Command) (string, error) {
				keys, err := cmd.Keys()
				if err != nil {
					return "", err
				}
				node := s.Tree.Find(keys[0])
				if node == nil {
					return fmt.Sprintf("not found %d", keys[0]), nil
				}
				return fmt.Sprintf("found %d height=%d bf=%d", node.Key(), node.Height(), node.BalanceFactor()), nil
			},
		},
		&builtin{
			name:    "min",
			usage:   "min",
			summary: "Show the lowest key",
			maxArgs: 0,
			run: func(s *Session, cmd *Command) (string, error) {
				return keyOrEmpty(s.Tree.Min()), nil
			},
		},
		&builtin{
			name:    "max",
			usage:   "max",
			summary: "Show the highest key",
			maxArgs: 0,
			run: func(s *Session, cmd *Command) (string, error) {
				return keyOrEmpty(s.Tree.Max()), nil
			},
		},
		&builtin{
			name:    "size",
			aliases: []string{"count", "len"},
			usage:   "size",
			summary: "Show the number of keys",
			maxArgs: 0,
			run: func(s *Session, cmd *Command) (string, error) {
				return fmt.Sprintf("%d", s.Tree.Size()), nil
			},
		},
		&builtin{
			name:    "height",
			usage:   "height",
			summary: "Show the height of the root, -1 when empty",
			maxArgs: 0,
			run: func(s *Session, cmd *Command) (string, error) {
				return fmt.Sprintf("%d", s.Tree.Height()), nil
			},
		},
	}
}

func inspectHandlers() []Handler {
	return []Handler{
		&builtin{
			name:    "print",
			aliases: []string{"p", "ls", "traverse"},
			usage:   "print [table|tree|dot]",
			summary: "Print the tree, table lists [key, height, bf] in key order",
			maxArgs: 1,
			run: func(s *Session, cmd *Command) (string, error) {
				format := s.Format
				if cmd.HasSubCommand(1) {
					f, err := ParseFormat(cmd.GetSubCommand(0))
					if err != nil {
						return "", err
					}
					format = f
				}
				out, err := Render(s.Tree, format)
				if err != nil {
					return "", err
				}
				return strings.TrimRight(out, "\n"), nil
			},
		},
		&builtin{
			name:    "check",
			aliases: []string{"verify"},
			usage:   "check",
			summary: "Verify ordering, heights, balance and size",
			maxArgs: 0,
			run: func(s *Session, cmd *Command) (string, error) {
				if err := s.Tree.Verify(); err != nil {
					return "", err
				}
				return "ok", nil
			},
		},
		&builtin{
			name:    "stats",
			usage:   "stats",
			summary: "Show insert, delete and rotation counters",
			maxArgs: 0,
			run: func(s *Session, cmd *Command) (string, error) {
				return formatStats(s.Tree.Stats()), nil
			},
		},
	}
}

func keyOrEmpty(node *avl.Node) string {
	if node == nil {
		return "empty"
	}
	return fmt.Sprintf("%d", node.Key())
}

func formatStats(st avl.Stats) string {
	return fmt.Sprintf("inserts=%d deletes=%d rotations=%d left=%d right=%d",
		st.Inserts, st.Deletes, st.Rotations(), st.LeftRotations, st.RightRotations)
}
