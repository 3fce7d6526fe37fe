package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// exitChoice is the menu entry that ends the program.
const exitChoice = "0"

type menuItem struct {
	choice string
	title  string
	page   string
}

type MenuModel struct {
	items []menuItem
	idx   int
}

// NewMenuModel lists the operations in order followed by Exit.
func NewMenuModel(ops []operation) *MenuModel {
	items := make([]menuItem, 0, len(ops)+1)
	for _, op := range ops {
		items = append(items, menuItem{choice: op.choice, title: op.title, page: op.page})
	}
	items = append(items, menuItem{choice: exitChoice, title: "Exit"})

	return &MenuModel{items: items}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		return m, m.choose(m.items[m.idx])
	}

	for i, item := range m.items {
		if keyMsg.String() == item.choice {
			m.idx = i
			return m, m.choose(item)
		}
	}

	return m, nil
}

func (m *MenuModel) choose(item menuItem) tea.Cmd {
	if item.choice == exitChoice {
		return tea.Quit
	}

	page := item.page
	return func() tea.Msg { return NavigateTo{Page: page} }
}

func (m *MenuModel) View() string {
	var b strings.Builder

	idColWidth := lipgloss.Width("ID") + 2
	actionColWidth := lipgloss.Width("Action")
	for _, item := range m.items {
		if w := lipgloss.Width(item.title); w > actionColWidth {
			actionColWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, "ID", actionColWidth, "Action"))
	b.WriteString(strings.Repeat("─", idColWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", actionColWidth))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		idCell := fmt.Sprintf("%s %s", cursor, item.choice)
		b.WriteString(fmt.Sprintf("%-*s │ %-*s\n", idColWidth, idCell, actionColWidth, item.title))
	}

	return renderPage(
		"AUTHENTICATION SYSTEM MENU",
		strings.TrimRight(b.String(), "\n"),
		"0-9: choose │ enter: select │ ↑/↓: navigate │ v: version",
	)
}
