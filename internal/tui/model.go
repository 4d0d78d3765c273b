// Package tui implements the interactive palette browser: a bubbletea
// program for exploring the SGR attributes, the 16 basic colors, and the
// 256-color palette, and for copying the escape sequence of a selection.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/tint/pkg/sgr"
)

// Page identifies one browsable tab.
type Page int

const (
	PageAttributes Page = iota
	PageBasic
	PagePalette
	pageCount
)

func (p Page) String() string {
	switch p {
	case PageBasic:
		return "basic colors"
	case PagePalette:
		return "256 palette"
	default:
		return "attributes"
	}
}

// keyMap collects the browser key bindings.
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Tab    key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Select, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Tab, k.Select, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:  key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Tab:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Model contains the bubbletea state for the palette browser.
type Model struct {
	page   Page
	cursor int
	keys   keyMap
	help   help.Model
	width  int
	height int

	// Selection is the set sequence chosen with enter; it stays empty when
	// the browser is quit without selecting.
	Selection string
}

// NewModel constructs the palette browser model.
func NewModel() Model {
	return Model{
		page:   PageAttributes,
		keys:   defaultKeyMap(),
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// pageSize returns the number of selectable entries on the current page.
func (m Model) pageSize() int {
	switch m.page {
	case PageBasic:
		return 16
	case PagePalette:
		return 256
	default:
		return len(attributeKinds)
	}
}

// columns returns the grid width of the current page.
func (m Model) columns() int {
	switch m.page {
	case PageBasic:
		return 8
	case PagePalette:
		return 16
	default:
		return 1
	}
}

var attributeKinds = []sgr.StyleKind{
	sgr.Bold, sgr.Faint, sgr.Italic, sgr.Underline, sgr.Blink, sgr.RapidBlink,
	sgr.Invert, sgr.Conceal, sgr.Strikethrough, sgr.Superscript, sgr.Subscript,
}

// selection resolves the set sequence under the cursor.
func (m Model) selection() (string, error) {
	var kind sgr.Kind

	switch m.page {
	case PageBasic:
		color, err := sgr.BasicColor(sgr.Foreground, uint8(m.cursor%8), m.cursor >= 8)
		if err != nil {
			return "", err
		}
		kind = color
	case PagePalette:
		color, err := sgr.IndexedColor(sgr.Foreground, m.cursor)
		if err != nil {
			return "", err
		}
		kind = color
	default:
		kind = attributeKinds[m.cursor]
	}

	codes, err := sgr.Resolve(kind, sgr.RevertNone)
	if err != nil {
		return "", err
	}
	return sgr.Sequence(codes.Set...), nil
}
