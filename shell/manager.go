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

import "github.com/pkg/errors"

// Registry maps command names and aliases to handlers
type Registry struct {
	handlers []Handler
	byName   map[string]Handler
}

// NewRegistry creates a registry with all built-in commands
func NewRegistry() *Registry {
	registry := &Registry{
		byName: make(map[string]Handler),
	}

	// registration order is the order shown by help
	for _, h := range mutationHandlers() {
		registry.Register(h)
	}
	for _, h := range queryHandlers() {
		registry.Register(h)
	}
	for _, h := range inspectHandlers() {
		registry.Register(h)
	}
	registry.Register(helpHandler())

	return registry
}

// Register adds a handler. A later handler with the same name or alias
// replaces the earlier one.
func (r *Registry) Register(h Handler) {
	r.handlers = append(r.handlers, h)
	r.byName[h.Name()] = h
	for _, alias := range h.Aliases() {
		r.byName[alias] = h
	}
}

// Lookup finds the handler for a command name or alias
func (r *Registry) Lookup(name string) (Handler, bool) {
	h, ok := r.byName[name]
	return h, ok
}

// Handlers returns the registered handlers in registration order
func (r *Registry) Handlers() []Handler {
	seen := make(map[string]struct{}, len(r.handlers))
	out := make([]Handler, 0, len(r.handlers))
	for i := len(r.handlers) - 1; i >= 0; i-- {
		h := r.handlers[i]
		if _, ok := seen[h.Name()]; ok {
			continue
		}
		seen[h.Name()] = struct{}{}
		out = append(out, h)
	}
	// restore registration order
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Dispatch runs cmd with the handler registered for its base command
func (r *Registry) Dispatch(s *Session, cmd *Command) (string, error) {
	if cmd == nil || len(cmd.Parts) == 0 {
		return "", ErrEmptyCommand
	}

	h, ok := r.Lookup(cmd.BaseCmd)
	if !ok {
		return "", errors.Wrapf(ErrUnknownCommand, "%q (try \"help\")", cmd.BaseCmd)
	}
	return h.Run(s, cmd)
}
