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
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"
)

var (
	// ErrUnknownCommand is returned for a command no handler supports
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUsage is returned when a command gets the wrong arguments
	ErrUsage = errors.New("usage")
	// ErrEmptyCommand is returned when dispatching a command with no parts
	ErrEmptyCommand = errors.New("empty command")
)

// Handler defines the interface for a shell command
type Handler interface {
	Name() string
	Aliases() []string
	Usage() string   // e.g. "insert KEY..."
	Summary() string // one line description
	Run(s *Session, cmd *Command) (string, error)
}

// Command represents a parsed command with its parts
type Command struct {
	Parts    []string
	BaseCmd  string
	SubCmds  []string
	FullName string
}

// NewCommand creates a new Command from command parts
func NewCommand(parts []string) *Command {
	if len(parts) == 0 {
		return &Command{Parts: parts}
	}

	return &Command{
		Parts:    parts,
		BaseCmd:  strings.ToLower(parts[0]),
		SubCmds:  parts[1:],
		FullName: strings.Join(parts, " "),
	}
}

// HasSubCommand checks if command has at least n arguments
func (c *Command) HasSubCommand(n int) bool {
	return len(c.SubCmds) >= n
}

// GetSubCommand returns the nth argument (0-indexed)
func (c *Command) GetSubCommand(n int) string {
	if n >= len(c.SubCmds) {
		return ""
	}
	return c.SubCmds[n]
}

// Keys parses every argument as an int key
func (c *Command) Keys() ([]int, error) {
	keys := make([]int, 0, len(c.SubCmds))
	for _, arg := range c.SubCmds {
		key, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(ErrUsage, "%s: %q is not an integer key", c.BaseCmd, arg)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ParseLine splits a script line into a Command. Blank lines and lines
// starting with '#' give a nil Command.
func ParseLine(line string) (*Command, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return nil, nil
	}

	args, err := shellwords.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse command %q", trimmed)
	}
	if len(args) == 0 {
		return nil, nil
	}
	return NewCommand(args), nil
}
