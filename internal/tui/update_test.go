package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func keyPress(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

func step(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	require.True(t, ok)
	return next
}

func TestTabCyclesPages(t *testing.T) {
	t.Parallel()

	m := NewModel()
	require.Equal(t, PageAttributes, m.page)

	m = step(t, m, keyPress("tab"))
	require.Equal(t, PageBasic, m.page)

	m = step(t, m, keyPress("tab"))
	require.Equal(t, PagePalette, m.page)

	m = step(t, m, keyPress("tab"))
	require.Equal(t, PageAttributes, m.page)
}

func TestCursorStaysInBounds(t *testing.T) {
	t.Parallel()

	m := NewModel()

	m = step(t, m, keyPress("up"))
	require.Equal(t, 0, m.cursor)

	for i := 0; i < 100; i++ {
		m = step(t, m, keyPress("down"))
	}
	require.Equal(t, len(attributeKinds)-1, m.cursor)
}

func TestPaletteGridMovement(t *testing.T) {
	t.Parallel()

	m := NewModel()
	m = step(t, m, keyPress("tab"))
	m = step(t, m, keyPress("tab"))
	require.Equal(t, PagePalette, m.page)

	m = step(t, m, keyPress("down"))
	require.Equal(t, 16, m.cursor, "down moves one grid row")

	m = step(t, m, keyPress("right"))
	require.Equal(t, 17, m.cursor)
}

func TestEnterSelectsSequence(t *testing.T) {
	t.Parallel()

	m := NewModel()
	m = step(t, m, keyPress("enter"))
	require.Equal(t, "\x1b[1m", m.Selection, "first attribute is bold")
}

func TestPaletteSelectionSequence(t *testing.T) {
	t.Parallel()

	m := NewModel()
	m = step(t, m, keyPress("tab"))
	m = step(t, m, keyPress("tab"))
	m.cursor = 196
	m = step(t, m, keyPress("enter"))
	require.Equal(t, "\x1b[38;5;196m", m.Selection)
}

func TestWindowSizeUpdatesDimensions(t *testing.T) {
	t.Parallel()

	m := NewModel()
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.width)
	require.Equal(t, 40, m.height)
}

func TestViewRendersEveryPage(t *testing.T) {
	t.Parallel()

	m := NewModel()
	for page := Page(0); page < pageCount; page++ {
		m.page = page
		m.cursor = 0
		require.NotEmpty(t, m.View())
	}
}
