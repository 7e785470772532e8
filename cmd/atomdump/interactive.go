package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// listWidth is the width of the frame list column.
const listWidth = 28

type interactiveModel struct {
	d        *dumper
	filename string
	frames   []int
	filter   textinput.Model
	view     viewport.Model
	selected int
	width    int
	height   int
	ready    bool
	editing  bool
}

func newInteractiveModel(d *dumper, frames []int, filename string) *interactiveModel {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter"
	ti.Width = 30
	return &interactiveModel{
		d:        d,
		filename: filename,
		frames:   frames,
		filter:   ti,
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) refresh() {
	if !m.ready {
		return
	}
	m.view.SetContent(m.d.render(m.frames[m.selected], m.filter.Value()))
	m.view.GotoTop()
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		w, h := msg.Width-listWidth-2, msg.Height-4
		if w < 10 {
			w = 10
		}
		if h < 3 {
			h = 3
		}
		if !m.ready {
			m.view = viewport.New(w, h)
			m.ready = true
		} else {
			m.view.Width, m.view.Height = w, h
		}
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			switch msg.String() {
			case "enter", "esc":
				m.editing = false
				m.filter.Blur()
				if msg.String() == "esc" {
					m.filter.SetValue("")
				}
				m.refresh()
				return m, nil
			}
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.refresh()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.refresh()
			}
			return m, nil
		case "down", "j":
			if m.selected < len(m.frames)-1 {
				m.selected++
				m.refresh()
			}
			return m, nil
		case "/":
			m.editing = true
			return m, m.filter.Focus()
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.view, cmd = m.view.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *interactiveModel) frameList() string {
	var b strings.Builder
	visible := m.view.Height
	start := 0
	if m.selected >= visible {
		start = m.selected - visible + 1
	}
	for row := start; row < len(m.frames) && row < start+visible; row++ {
		fr := m.d.file.Frames[m.frames[row]]
		line := fmt.Sprintf("%4d %-*.*s", fr.Cycle, listWidth-7, listWidth-7, fr.Port)
		if row == m.selected {
			b.WriteString(m.d.pal.selected.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func (m *interactiveModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.d.pal.title.Render("atomdump"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("  ")
	b.WriteString(m.d.frameHeader(m.frames[m.selected]))
	b.WriteString("\n\n")

	list := lipgloss.NewStyle().Width(listWidth).MarginRight(2).Render(m.frameList())
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, m.view.View()))
	b.WriteString("\n")

	if m.editing || m.filter.Value() != "" {
		b.WriteString(m.filter.View())
		b.WriteString("  ")
	}
	b.WriteString(m.d.pal.help.Render("↑/↓ frame • pgup/pgdn scroll • / filter • q quit"))
	return b.String()
}

func runInteractive(d *dumper, frames []int, filename string) error {
	p := tea.NewProgram(newInteractiveModel(d, frames, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
