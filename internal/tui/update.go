package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Tab):
			m.page = (m.page + 1) % pageCount
			m.cursor = 0
			return m, nil

		case key.Matches(msg, m.keys.Up):
			m.cursor = clamp(m.cursor-m.columns(), m.pageSize())
			return m, nil

		case key.Matches(msg, m.keys.Down):
			m.cursor = clamp(m.cursor+m.columns(), m.pageSize())
			return m, nil

		case key.Matches(msg, m.keys.Left):
			m.cursor = clamp(m.cursor-1, m.pageSize())
			return m, nil

		case key.Matches(msg, m.keys.Right):
			m.cursor = clamp(m.cursor+1, m.pageSize())
			return m, nil

		case key.Matches(msg, m.keys.Select):
			sequence, err := m.selection()
			if err != nil {
				return m, nil
			}
			m.Selection = sequence
			return m, tea.Quit
		}
	}

	return m, nil
}

func clamp(cursor, size int) int {
	if cursor < 0 {
		return 0
	}
	if cursor >= size {
		return size - 1
	}
	return cursor
}
