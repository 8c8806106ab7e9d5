package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vancomm/buscaminas/internal/mines"
)

// ANSI colour per glyph; digits cycle through the palette like the
// classic clients do.
var glyphStyles = map[byte]lipgloss.Style{
	mines.GlyphHidden: lipgloss.NewStyle().Faint(true),
	mines.GlyphMine:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	'0':               lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	'1':               lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	'2':               lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	'3':               lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	'4':               lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	'5':               lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	'6':               lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	'7':               lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	'8':               lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
}

var (
	cursorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("15")).
		Background(lipgloss.Color("0")).
		Bold(true)

	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

func renderGlyph(g byte) string {
	if style, ok := glyphStyles[g]; ok {
		return style.Render(string(g))
	}
	return string(g)
}
