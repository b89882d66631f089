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
	"github.com/cybrota/avltree/avl"
)

// Session drives one tree with text commands. A session is not safe for
// concurrent use, in the same way as the tree it owns.
type Session struct {
	Tree   *avl.Tree
	Format Format

	// RenderHelp, when set, turns the markdown produced by "help" into
	// terminal output.
	RenderHelp func(markdown string) string

	registry   *Registry
	lastOutput string
}

// NewSession creates a session over tree, a nil tree starts empty
func NewSession(tree *avl.Tree) *Session {
	if tree == nil {
		tree = avl.New()
	}
	return &Session{
		Tree:     tree,
		Format:   FormatTable,
		registry: NewRegistry(),
	}
}

// Registry returns the command registry used by the session
func (s *Session) Registry() *Registry {
	return s.registry
}

// LastOutput returns the output of the last command that succeeded
func (s *Session) LastOutput() string {
	return s.lastOutput
}

// Execute parses and runs a single line. Blank and comment lines do nothing.
func (s *Session) Execute(line string) (string, error) {
	cmd, err := ParseLine(line)
	if err != nil {
		return "", err
	}
	if cmd == nil {
		return "", nil
	}
	return s.Run(cmd)
}

// Run dispatches an already parsed command
func (s *Session) Run(cmd *Command) (string, error) {
	out, err := s.registry.Dispatch(s, cmd)
	if err != nil {
		return "", err
	}
	s.lastOutput = out
	return out, nil
}
