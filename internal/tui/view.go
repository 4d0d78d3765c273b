package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tint/pkg/sgr"
)

// View renders the current state of the model.
func (m Model) View() string {
	var sections []string

	sections = append(sections, titleStyle.Render("tint • palette browser"))
	sections = append(sections, m.renderTabs())

	switch m.page {
	case PageBasic:
		sections = append(sections, m.renderBasic())
	case PagePalette:
		sections = append(sections, m.renderPalette())
	default:
		sections = append(sections, m.renderAttributes())
	}

	sections = append(sections, footerStyle.Render(m.help.View(m.keys)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderTabs() string {
	var tabs []string
	for page := Page(0); page < pageCount; page++ {
		style := tabStyle
		if page == m.page {
			style = activeTabStyle
		}
		tabs = append(tabs, style.Render(page.String()))
	}
	return strings.Join(tabs, "  ")
}

func (m Model) renderAttributes() string {
	var lines []string
	for i, kind := range attributeKinds {
		sample, err := sgr.New(kind).Wrap(kind.String())
		if err != nil {
			sample = kind.String()
		}

		line := fmt.Sprintf("  %-16s %s", kind, sample)
		if i == m.cursor {
			line = cursorStyle.Render(fmt.Sprintf("> %-16s", kind)) + " " + sample
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m Model) renderBasic() string {
	var rows []string
	for row := 0; row < 2; row++ {
		var cells []string
		for col := 0; col < 8; col++ {
			index := row*8 + col
			label := baseLabel(index)
			cell := cellStyle.Foreground(basicLipglossColor(index)).Render(label)
			if index == m.cursor {
				cell = cursorStyle.Render(label)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderPalette() string {
	var rows []string
	for row := 0; row < 16; row++ {
		var cells []string
		for col := 0; col < 16; col++ {
			index := row*16 + col
			label := fmt.Sprintf("%3d", index)
			cell := cellStyle.Foreground(lipgloss.Color(fmt.Sprintf("%d", index))).Render(label)
			if index == m.cursor {
				cell = cursorStyle.Render(label)
			}
			cells = append(cells, cell)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return strings.Join(rows, "\n")
}

func baseLabel(index int) string {
	names := [...]string{"black", "red", "green", "yellow", "blue", "magenta", "cyan", "white"}
	name := names[index%8]
	if index >= 8 {
		name = "br-" + name
	}
	return fmt.Sprintf("%-10s", name)
}

func basicLipglossColor(index int) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("%d", index))
}
