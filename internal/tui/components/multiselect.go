// Package components provides shared UI components for the TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

var (
	multiTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#a8dadc"))

	multiTitleFocusedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d"))

	multiItemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f1faee"))

	multiItemOffStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#666666"))

	multiCursorStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#ffe66d")).
				Background(lipgloss.Color("#2d3436"))

	multiCountStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Italic(true)
)

// MultiSelect is a scrollable checklist where every option starts selected.
type MultiSelect struct {
	Title string

	options  []string
	selected map[string]bool
	cursor   int
	offset   int
	height   int // visible options, 0 shows all
	focused  bool
}

// NewMultiSelect creates a checklist with every option selected.
func NewMultiSelect(title string, options []string) MultiSelect {
	opts := make([]string, len(options))
	copy(opts, options)

	m := MultiSelect{
		Title:    title,
		options:  opts,
		selected: make(map[string]bool, len(opts)),
	}
	m.SelectAll()
	return m
}

// Options returns the options in display order.
func (m MultiSelect) Options() []string {
	out := make([]string, len(m.options))
	copy(out, m.options)
	return out
}

// Selected returns the selected options in display order.
func (m MultiSelect) Selected() []string {
	out := make([]string, 0, len(m.options))
	for _, o := range m.options {
		if m.selected[o] {
			out = append(out, o)
		}
	}
	return out
}

// IsSelected reports whether option is selected.
func (m MultiSelect) IsSelected(option string) bool {
	return m.selected[option]
}

// Cursor returns the index of the highlighted option.
func (m MultiSelect) Cursor() int {
	return m.cursor
}

// Focus gives the list keyboard focus.
func (m *MultiSelect) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *MultiSelect) Blur() { m.focused = false }

// SetHeight limits the number of visible options.
func (m *MultiSelect) SetHeight(h int) {
	m.height = h
	m.clampOffset()
}

// CursorUp moves the highlight up.
func (m *MultiSelect) CursorUp() {
	if m.cursor > 0 {
		m.cursor--
	}
	m.clampOffset()
}

// CursorDown moves the highlight down.
func (m *MultiSelect) CursorDown() {
	if m.cursor < len(m.options)-1 {
		m.cursor++
	}
	m.clampOffset()
}

// Toggle flips the highlighted option.
func (m *MultiSelect) Toggle() {
	if len(m.options) == 0 {
		return
	}
	o := m.options[m.cursor]
	m.selected[o] = !m.selected[o]
}

// SelectAll selects every option.
func (m *MultiSelect) SelectAll() {
	for _, o := range m.options {
		m.selected[o] = true
	}
}

// SelectNone clears the selection.
func (m *MultiSelect) SelectNone() {
	for _, o := range m.options {
		m.selected[o] = false
	}
}

func (m *MultiSelect) clampOffset() {
	if m.height <= 0 {
		m.offset = 0
		return
	}
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+m.height {
		m.offset = m.cursor - m.height + 1
	}
}

// View renders the list within width cells.
func (m MultiSelect) View(width int) string {
	var b strings.Builder

	titleStyle := multiTitleStyle
	if m.focused {
		titleStyle = multiTitleFocusedStyle
	}
	b.WriteString(titleStyle.Render(runewidth.Truncate(m.Title, width, "…")))
	b.WriteString("\n")

	end := len(m.options)
	if m.height > 0 && m.offset+m.height < end {
		end = m.offset + m.height
	}

	for i := m.offset; i < end; i++ {
		o := m.options[i]
		box := "[ ] "
		style := multiItemOffStyle
		if m.selected[o] {
			box = "[x] "
			style = multiItemStyle
		}
		if m.focused && i == m.cursor {
			style = multiCursorStyle
		}
		label := runewidth.Truncate(box+o, width, "…")
		b.WriteString(style.Render(runewidth.FillRight(label, width)))
		b.WriteString("\n")
	}

	hidden := len(m.options) - (end - m.offset)
	count := len(m.Selected())
	summary := fmt.Sprintf("%d/%d selected", count, len(m.options))
	if hidden > 0 {
		summary += fmt.Sprintf(" (%d more)", hidden)
	}
	b.WriteString(multiCountStyle.Render(summary))

	return b.String()
}
