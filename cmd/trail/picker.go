package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// pickerStyles holds the lipgloss styles for the pick UI.
type pickerStyles struct {
	selected lipgloss.Style
	normal   lipgloss.Style
	counter  lipgloss.Style
}

func defaultPickerStyles() pickerStyles {
	return pickerStyles{
		selected: lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
		normal:   lipgloss.NewStyle(),
		counter:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// pickerModel is the Bubble Tea model for the interactive path picker:
// frecency-ordered paths, narrowed by a substring filter, selected with
// enter.
type pickerModel struct {
	paths    []string // display paths, frecency order
	filtered []string
	cursor   int
	input    textinput.Model
	styles   pickerStyles

	// choice is the selected path once the user confirms; empty on abort.
	choice string

	height int
}

// newPickerModel creates a picker over the given display paths.
func newPickerModel(paths []string) pickerModel {
	input := textinput.New()
	input.Placeholder = "filter"
	input.Prompt = "> "
	input.Focus()

	return pickerModel{
		paths:    paths,
		filtered: paths,
		input:    input,
		styles:   defaultPickerStyles(),
		height:   24,
	}
}

// Init implements tea.Model.
func (m pickerModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.choice = ""
			return m, tea.Quit
		case "enter":
			if m.cursor < len(m.filtered) {
				m.choice = m.filtered[m.cursor]
			}
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down", "ctrl+n":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.filtered = filterPaths(m.paths, m.input.Value())
	if m.cursor >= len(m.filtered) {
		m.cursor = 0
	}
	return m, cmd
}

// View implements tea.Model.
func (m pickerModel) View() string {
	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("  ")
	b.WriteString(m.styles.counter.Render(fmt.Sprintf("%d/%d", len(m.filtered), len(m.paths))))
	b.WriteString("\n")

	visible := m.height - 2
	if visible < 1 {
		visible = 1
	}

	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	for i := start; i < end; i++ {
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + m.filtered[i]))
		} else {
			b.WriteString(m.styles.normal.Render("  " + m.filtered[i]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// filterPaths keeps the paths containing every whitespace-separated term of
// query, case-insensitively, preserving order.
func filterPaths(paths []string, query string) []string {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return paths
	}

	var kept []string
	for _, p := range paths {
		lower := strings.ToLower(p)
		match := true
		for _, term := range terms {
			if !strings.Contains(lower, term) {
				match = false
				break
			}
		}
		if match {
			kept = append(kept, p)
		}
	}
	return kept
}
