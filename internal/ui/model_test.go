package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/coregx/rexspan"
)

func newTestModel(t *testing.T, pattern, input string) *Model {
	t.Helper()
	m := NewModel(rexspan.Config{Backend: "std"})
	m.SetPattern(pattern)
	m.SetInput(input)
	return m
}

func TestModelCapture(t *testing.T) {
	m := newTestModel(t, "(a)(b)", "xab")

	want := []rexspan.Span{{Begin: 1, End: 3}, {Begin: 1, End: 2}, {Begin: 2, End: 3}}
	if diff := cmp.Diff(want, m.Spans()); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}

	best, ok := m.Best()
	if !ok || best != (rexspan.Span{Begin: 2, End: 3}) {
		t.Errorf("Best() = %v, %v; want {2,3}, true", best, ok)
	}
}

func TestModelOffsetKeys(t *testing.T) {
	m := newTestModel(t, "(a)", "aba")

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})
	if m.Offset() != 1 {
		t.Fatalf("Offset() = %d, want 1", m.Offset())
	}
	if got := m.Spans()[0]; got != (rexspan.Span{Begin: 2, End: 3}) {
		t.Errorf("group 0 at offset 1 = %v, want {2,3}", got)
	}

	// Clamped to the input length.
	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlRight})
	}
	if m.Offset() != 3 {
		t.Errorf("Offset() = %d, want 3", m.Offset())
	}
	if len(m.Spans()) != 0 {
		t.Errorf("Spans() at end of input = %v, want empty", m.Spans())
	}

	for i := 0; i < 10; i++ {
		m.Update(tea.KeyMsg{Type: tea.KeyCtrlLeft})
	}
	if m.Offset() != 0 {
		t.Errorf("Offset() = %d, want 0", m.Offset())
	}
}

func TestModelTyping(t *testing.T) {
	m := newTestModel(t, "", "")
	if m.Focus() != FocusPattern {
		t.Fatalf("initial focus = %v, want pattern", m.Focus())
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("(b)")})
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.Focus() != FocusInput {
		t.Fatalf("focus after tab = %v, want input", m.Focus())
	}
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("abc")})

	if m.Err() != nil {
		t.Fatalf("Err() = %v", m.Err())
	}
	want := []rexspan.Span{{Begin: 1, End: 2}, {Begin: 1, End: 2}}
	if diff := cmp.Diff(want, m.Spans()); diff != "" {
		t.Errorf("Spans() mismatch (-want +got):\n%s", diff)
	}
}

func TestModelInvalidPattern(t *testing.T) {
	m := newTestModel(t, "(a", "a")
	if m.Err() == nil {
		t.Fatal("Err() = nil for unbalanced pattern")
	}
	if m.Spans() != nil {
		t.Errorf("Spans() = %v, want nil", m.Spans())
	}
	if !strings.Contains(m.View(), "compile") {
		t.Errorf("View() does not show the compile error:\n%s", m.View())
	}

	m.SetPattern("(a)")
	if m.Err() != nil {
		t.Errorf("Err() after fix = %v", m.Err())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, "a", "a")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("esc command = %T, want tea.QuitMsg", cmd())
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(t, `(\w+)=(\w+)`, "key=value")
	view := m.View()

	for _, want := range []string{"Pattern", "Input", "Offset", "group 0", "{0,9}", `"value"`} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q:\n%s", want, view)
		}
	}
}
