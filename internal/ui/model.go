// Package ui implements the interactive pattern tester.
package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/coregx/rexspan"
)

// Focus is the input field receiving keystrokes
type Focus int

const (
	FocusPattern Focus = iota
	FocusInput
)

// Model is the tester state
type Model struct {
	config rexspan.Config

	// UI State
	pattern textinput.Model
	input   textinput.Model
	focus   Focus
	offset  int

	// Results, recomputed on every edit
	compiled *rexspan.Pattern
	source   string
	err      error
	spans    []rexspan.Span
	best     rexspan.Span
	found    bool

	width  int
	height int
}

// NewModel creates a tester compiling with config
func NewModel(config rexspan.Config) *Model {
	pattern := textinput.New()
	pattern.Placeholder = "Enter regex pattern..."
	pattern.CharLimit = 256
	pattern.Prompt = ""
	pattern.Focus()

	input := textinput.New()
	input.Placeholder = "Enter text to match..."
	input.CharLimit = 4096
	input.Prompt = ""

	m := &Model{
		config:  config,
		pattern: pattern,
		input:   input,
		focus:   FocusPattern,
		width:   80,
		height:  24,
	}
	m.recompute()
	return m
}

// Init starts the cursor blink
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses and window resizes
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			m.close()
			return m, tea.Quit
		case "tab", "shift+tab":
			m.switchFocus()
			return m, nil
		case "ctrl+right":
			m.setOffset(m.offset + 1)
			return m, nil
		case "ctrl+left":
			m.setOffset(m.offset - 1)
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.focus == FocusPattern {
		m.pattern, cmd = m.pattern.Update(msg)
	} else {
		m.input, cmd = m.input.Update(msg)
	}
	m.recompute()
	return m, cmd
}

// Data management methods

// SetPattern replaces the pattern text
func (m *Model) SetPattern(s string) {
	m.pattern.SetValue(s)
	m.recompute()
}

// SetInput replaces the input text
func (m *Model) SetInput(s string) {
	m.input.SetValue(s)
	m.setOffset(m.offset)
}

// Focus returns the field receiving keystrokes
func (m *Model) Focus() Focus { return m.focus }

// Offset returns the byte offset queries start at
func (m *Model) Offset() int { return m.offset }

// Spans returns the capture result for the current pattern and input
func (m *Model) Spans() []rexspan.Span { return m.spans }

// Best returns the search result
func (m *Model) Best() (rexspan.Span, bool) { return m.best, m.found }

// Err returns the compile error of the current pattern, if any
func (m *Model) Err() error { return m.err }

// Internal methods

func (m *Model) switchFocus() {
	if m.focus == FocusPattern {
		m.focus = FocusInput
		m.pattern.Blur()
		m.input.Focus()
	} else {
		m.focus = FocusPattern
		m.input.Blur()
		m.pattern.Focus()
	}
}

// setOffset clamps offset to [0, len(input)] and recomputes.
func (m *Model) setOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	if n := len(m.input.Value()); offset > n {
		offset = n
	}
	m.offset = offset
	m.recompute()
}

// recompute compiles the pattern if it changed and reruns capture and search.
func (m *Model) recompute() {
	if src := m.pattern.Value(); (m.compiled == nil && m.err == nil) || src != m.source {
		m.close()
		m.source = src
		m.compiled, m.err = rexspan.CompileWithConfig(src, m.config)
	}

	m.spans, m.best, m.found = nil, rexspan.Unmatched, false
	if m.compiled == nil {
		return
	}

	text := m.input.Value()
	if m.offset > len(text) {
		m.offset = len(text)
	}
	m.spans, _ = m.compiled.Capture(text, m.offset)
	m.best, m.found, _ = m.compiled.Search(text, m.offset)
}

func (m *Model) close() {
	if m.compiled != nil {
		m.compiled.Close()
		m.compiled = nil
	}
}
