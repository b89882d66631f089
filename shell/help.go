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
)

func helpHandler() Handler {
	return &builtin{
		name:    "help",
		aliases: []string{"?"},
		usage:   "help [COMMAND]",
		summary: "List commands or show the usage of one command",
		maxArgs: 1,
		run: func(s *Session, cmd *Command) (string, error) {
			var md string
			if cmd.HasSubCommand(1) {
				name := strings.ToLower(cmd.GetSubCommand(0))
				h, ok := s.registry.Lookup(name)
				if !ok {
					return "", errors.Wrapf(ErrUnknownCommand, "%q", name)
				}
				md = CommandHelp(h)
			} else {
				md = Overview(s.registry)
			}
			if s.RenderHelp != nil {
				return s.RenderHelp(md), nil
			}
			return md, nil
		},
	}
}

// CommandHelp returns markdown describing one command
func CommandHelp(h Handler) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", h.Name())
	fmt.Fprintf(&b, "%s\n\n", h.Summary())
	fmt.Fprintf(&b, "Usage: `%s`\n", h.Usage())
	if aliases := h.Aliases(); len(aliases) > 0 {
		fmt.Fprintf(&b, "\nAliases: %s\n", strings.Join(aliases, ", "))
	}
	return b.String()
}

// Overview returns markdown listing every registered command
func Overview(r *Registry) string {
	var b strings.Builder
	b.WriteString("# Commands\n\n")
	for _, h := range r.Handlers() {
		fmt.Fprintf(&b, "* `%s` - %s\n", h.Usage(), h.Summary())
	}
	b.WriteString("\nLines starting with `#` are comments.\n")
	return b.String()
}
