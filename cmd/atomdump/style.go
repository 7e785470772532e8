package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/atom-runtime/inspect"
)

type palette struct {
	header   lipgloss.Style
	label    lipgloss.Style
	typ      lipgloss.Style
	value    lipgloss.Style
	err      lipgloss.Style
	title    lipgloss.Style
	selected lipgloss.Style
	help     lipgloss.Style
}

func newPalette(color bool) palette {
	if !color {
		plain := lipgloss.NewStyle()
		return palette{plain, plain, plain, plain, plain, plain, plain, plain}
	}
	return palette{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FAFAFA")),
		label:  lipgloss.NewStyle().Foreground(lipgloss.Color("#98FB98")),
		typ:    lipgloss.NewStyle().Foreground(lipgloss.Color("#87CEEB")),
		value:  lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90")),
		err:    lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")),
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1),
		selected: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")),
		help: lipgloss.NewStyle().Foreground(lipgloss.Color("#666666")),
	}
}

func (p palette) line(n *inspect.Node) string {
	var b strings.Builder
	if n.Label != "" {
		b.WriteString(p.label.Render(n.Label))
		b.WriteString(": ")
	}
	b.WriteString(p.typ.Render(n.TypeName))
	if n.Value != "" {
		b.WriteByte(' ')
		b.WriteString(p.value.Render(n.Value))
	}
	if n.Err != nil {
		b.WriteByte(' ')
		b.WriteString(p.err.Render("! " + n.Err.Error()))
	}
	return b.String()
}
