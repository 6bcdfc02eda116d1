package editor

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/tailpad/buffer"
)

func TestModel_New_InitialText(t *testing.T) {
	m := New(Config{Text: "a\nb"})
	if got, want := m.Buffer().Text(), "a\nb"; got != want {
		t.Fatalf("buffer text=%q, want %q", got, want)
	}
	if !m.Focused() {
		t.Fatalf("expected new model to be focused")
	}
}

func TestModel_Update_TypingMutatesBuffer(t *testing.T) {
	m := New(Config{Text: ""})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hi")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("!")})

	if got, want := m.Buffer().Text(), "hi\n!"; got != want {
		t.Fatalf("buffer text=%q, want %q", got, want)
	}
}

func TestModel_Update_BackspaceAndUndo(t *testing.T) {
	m := New(Config{Text: "ab"})
	m.Buffer().SetCursor(buffer.Pos{Row: 0, Col: 2})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Buffer().Text(), "a"; got != want {
		t.Fatalf("after backspace text=%q, want %q", got, want)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyCtrlZ})
	if got, want := m.Buffer().Text(), "ab"; got != want {
		t.Fatalf("after undo text=%q, want %q", got, want)
	}
}

func TestModel_ReadOnly_BlocksTextMutation(t *testing.T) {
	m := New(Config{Text: "ab", ReadOnly: true})

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	if got, want := m.Buffer().Text(), "ab"; got != want {
		t.Fatalf("read-only buffer mutated: %q", got)
	}

	// Cursor movement is still allowed.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if got := m.Buffer().Cursor(); got != (buffer.Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}
}

func TestModel_HostMutationPickedUpOnUpdate(t *testing.T) {
	m := New(Config{Text: "a"})
	m.Buffer().InsertAt(1, 0, "\n\n")

	// Any message triggers a sync from the buffer.
	m, _ = m.Update(struct{}{})
	if got, want := m.Buffer().Text(), "a\n\n"; got != want {
		t.Fatalf("buffer text=%q, want %q", got, want)
	}
}
