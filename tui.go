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
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avltree/avl"
	"github.com/cybrota/avltree/shell"
)

const (
	focusInput = iota
	focusEntries
	focusTree
	focusCount
)

// Model is the Bubble Tea state of the explorer
type Model struct {
	ready bool

	commandInput textinput.Model
	entriesList  list.Model
	treeViewport viewport.Model

	session *shell.Session

	focusIndex int
	showHelp   bool
	status     string
	statusErr  bool

	// copyText writes to the system clipboard
	copyText func(string) error

	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	width  int
	height int
}

// entryItem is one row of the inorder list
type entryItem struct {
	entry avl.Entry
}

func (i entryItem) FilterValue() string { return fmt.Sprintf("%d", i.entry.Key) }
func (i entryItem) Title() string       { return fmt.Sprintf("%d", i.entry.Key) }
func (i entryItem) Description() string {
	return fmt.Sprintf("height %d, balance %+d", i.entry.Height, i.entry.Balance)
}

// InitialModel creates the explorer model over session
func InitialModel(session *shell.Session) Model {
	ti := textinput.New()
	ti.Placeholder = "insert 10 20 30, delete 20, find 10, help..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	entriesList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	entriesList.SetShowTitle(false)
	entriesList.SetShowHelp(false)
	entriesList.SetFilteringEnabled(false)

	treeViewport := viewport.New(0, 0)

	style := "dark"
	if GetTerminalMode() == TerminalModeLight {
		style = "light"
	}
	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(72),
	)

	m := Model{
		commandInput:    ti,
		entriesList:     entriesList,
		treeViewport:    treeViewport,
		session:         session,
		focusIndex:      focusInput,
		copyText:        clipboard.WriteAll,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		status:          "Type a command and press enter",
	}
	m.refresh()
	return m
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "f1":
			m.showHelp = !m.showHelp
			m.refreshViewport()
			return m, nil
		case "ctrl+y":
			m.copyTraversal()
			return m, nil
		case "tab":
			m.setFocus((m.focusIndex + 1) % focusCount)
			return m, nil
		case "shift+tab":
			m.setFocus((m.focusIndex + focusCount - 1) % focusCount)
			return m, nil
		case "enter":
			switch m.focusIndex {
			case focusInput:
				m.execute(m.commandInput.Value())
				m.commandInput.SetValue("")
				return m, nil
			case focusEntries:
				if item, ok := m.entriesList.SelectedItem().(entryItem); ok {
					m.execute(fmt.Sprintf("find %d", item.entry.Key))
				}
				return m, nil
			}
		}

		switch m.focusIndex {
		case focusInput:
			m.commandInput, cmd = m.commandInput.Update(msg)
		case focusEntries:
			m.entriesList, cmd = m.entriesList.Update(msg)
		case focusTree:
			m.treeViewport, cmd = m.treeViewport.Update(msg)
		}
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m *Model) setFocus(index int) {
	m.focusIndex = index
	if index == focusInput {
		m.commandInput.Focus()
	} else {
		m.commandInput.Blur()
	}
}

// execute runs one command line and refreshes the panes
func (m *Model) execute(line string) {
	if strings.TrimSpace(line) == "" {
		return
	}
	if isExitCommand(line) {
		m.status, m.statusErr = "press esc to quit", false
		return
	}

	out, err := m.session.Execute(line)
	if err != nil {
		m.status, m.statusErr = err.Error(), true
	} else {
		m.status, m.statusErr = lastLine(out), false
	}

	// help output goes to the right pane instead of the status line
	if cmd, _ := shell.ParseLine(line); err == nil && cmd != nil {
		if h, ok := m.session.Registry().Lookup(cmd.BaseCmd); ok && h.Name() == "help" {
			m.showHelp = true
			m.status = "commands are listed on the right, f1 returns to the tree"
		}
	}
	m.refresh()
}

func (m *Model) copyTraversal() {
	var lines []string
	for _, e := range m.session.Tree.Traverse() {
		lines = append(lines, e.String())
	}
	if err := m.copyText(strings.Join(lines, "\n")); err != nil {
		m.status, m.statusErr = fmt.Sprintf("copy failed: %v", err), true
		return
	}
	m.status, m.statusErr = fmt.Sprintf("copied %d entries to the clipboard", len(lines)), false
}

func lastLine(out string) string {
	out = strings.TrimRight(out, "\n")
	if i := strings.LastIndex(out, "\n"); i >= 0 {
		return out[i+1:]
	}
	return out
}

// refresh reloads the entries list and the right pane from the tree
func (m *Model) refresh() {
	entries := m.session.Tree.Traverse()
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = entryItem{entry: e}
	}
	m.entriesList.SetItems(items)
	m.refreshViewport()
}

func (m *Model) refreshViewport() {
	if m.showHelp {
		md := shell.Overview(m.session.Registry())
		if m.glamourRenderer != nil {
			if rendered, err := m.glamourRenderer.Render(md); err == nil {
				md = rendered
			}
		}
		m.treeViewport.SetContent(md)
		return
	}

	drawing, err := shell.Render(m.session.Tree, shell.FormatTree)
	if err != nil {
		drawing = err.Error()
	}
	m.treeViewport.SetContent(drawing)
}

func (m *Model) layout() (leftWidth, rightWidth, listHeight int) {
	leftWidth = (m.width * 4 / 10) - 1
	rightWidth = m.width - leftWidth - 3
	listHeight = m.height - 3 - 7
	return
}

// updateLayout updates component dimensions
func (m *Model) updateLayout() {
	leftWidth, rightWidth, listHeight := m.layout()
	m.commandInput.Width = leftWidth - 6
	m.entriesList.SetSize(leftWidth-2, listHeight-2)
	m.treeViewport.Width = rightWidth - 2
	m.treeViewport.Height = listHeight + 3
}

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 30 || m.height < 12 {
		return "Terminal too small. Please resize your terminal."
	}

	leftWidth, rightWidth, listHeight := m.layout()

	box := func(focused bool, width, height int, title, content string) string {
		style := m.styles.BorderBlurred
		if focused {
			style = m.styles.BorderFocused
			title += " (Active)"
		}
		return style.
			Width(width).
			Height(height).
			Render(lipgloss.JoinVertical(
				lipgloss.Left,
				m.styles.Title.Width(width-4).Render(title),
				content,
			))
	}

	inputBox := box(m.focusIndex == focusInput, leftWidth, 3, " ⌨  Command", m.commandInput.View())
	entriesBox := box(m.focusIndex == focusEntries, leftWidth, listHeight,
		fmt.Sprintf(" 📋 Inorder (%d)", m.session.Tree.Size()), m.entriesList.View())

	rightTitle := " 🌳 Tree"
	if m.showHelp {
		rightTitle = " 📖 Commands"
	}
	treeBox := box(m.focusIndex == focusTree, rightWidth, listHeight+5, rightTitle, m.treeViewport.View())

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, entriesBox),
		treeBox,
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		main,
		m.renderStatus(),
		m.renderKeyHelp(),
	)
}

func (m Model) renderStatus() string {
	summary := m.styles.Muted.Render(fmt.Sprintf("size %d • height %d", m.session.Tree.Size(), m.session.Tree.Height()))
	status := m.styles.SuccessMessage.Render(m.status)
	if m.statusErr {
		status = m.styles.ErrorMessage.Render(m.status)
	}
	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(summary + "  " + status)
}

func (m Model) renderKeyHelp() string {
	keys := []string{"enter", "tab", "f1", "ctrl+y", "esc"}
	descs := []string{"run / find", "switch focus", "toggle commands", "copy traversal", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}

	return lipgloss.NewStyle().
		Padding(0, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// runBubbleTeaApp starts the explorer
func runBubbleTeaApp(session *shell.Session) error {
	program := tea.NewProgram(
		InitialModel(session),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := program.Run()
	return err
}
