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

package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sendKey(t *testing.T, m Model, msg tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func runLine(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.commandInput.SetValue(line)
	return sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
}

func TestTUIExecutesCommands(t *testing.T) {
	m := InitialModel(testSession(t))

	m = runLine(t, m, "insert 3 1 2")
	assert.Equal(t, []int{1, 2, 3}, m.session.Tree.Keys())
	assert.Equal(t, "inserted 2", m.status)
	assert.False(t, m.statusErr)
	assert.Empty(t, m.commandInput.Value())
	assert.Len(t, m.entriesList.Items(), 3)

	m = runLine(t, m, "delete 7")
	assert.Equal(t, "not found 7", m.status)

	m = runLine(t, m, "frobnicate")
	assert.True(t, m.statusErr)
	assert.Contains(t, m.status, "unknown command")
}

func TestTUIFocusAndSelection(t *testing.T) {
	m := InitialModel(testSession(t))
	m = runLine(t, m, "insert 10 20")

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, focusEntries, m.focusIndex)
	assert.False(t, m.commandInput.Focused())

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "found 10 height=1 bf=-1", m.status)

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, focusInput, m.focusIndex)
	assert.True(t, m.commandInput.Focused())
}

func TestTUICopyTraversal(t *testing.T) {
	m := InitialModel(testSession(t))
	var copied string
	m.copyText = func(s string) error {
		copied = s
		return nil
	}

	m = runLine(t, m, "insert 1 2")
	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyCtrlY})
	assert.Equal(t, "[1, 1, -1]\n[2, 0, 0]", copied)
	assert.Equal(t, "copied 2 entries to the clipboard", m.status)
}

func TestTUIView(t *testing.T) {
	m := InitialModel(testSession(t))
	assert.Equal(t, "Initializing...", m.View())

	m = runLine(t, m, "insert 1 2 3")
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	view := m.View()
	assert.Contains(t, view, "Inorder (3)")
	assert.Contains(t, view, "size 3")
	assert.Contains(t, view, "2 h=1 bf=+0")

	m = sendKey(t, m, tea.KeyMsg{Type: tea.KeyF1})
	assert.True(t, m.showHelp)
	assert.Contains(t, m.View(), "Commands")

	next, _ = m.Update(tea.WindowSizeMsg{Width: 10, Height: 5})
	assert.True(t, strings.HasPrefix(next.(Model).View(), "Terminal too small"))
}

func TestTUIQuit(t *testing.T) {
	m := InitialModel(testSession(t))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
