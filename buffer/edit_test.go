package buffer

import "testing"

func TestBuffer_InsertText_MovesCursorPastInsertion(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})

	b.InsertText("XY")
	if got, want := b.Text(), "aXYb"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 3}) {
		t.Fatalf("cursor=%v, want (0,3)", got)
	}
}

func TestBuffer_InsertText_Multiline(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})

	b.InsertText("1\n2")
	if got, want := b.Text(), "a1\n2b"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 1}) {
		t.Fatalf("cursor=%v, want (1,1)", got)
	}
}

func TestBuffer_InsertNewline_SplitsLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})

	b.InsertNewline()
	if got, want := b.Text(), "a\nb"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != (Pos{Row: 1, Col: 0}) {
		t.Fatalf("cursor=%v, want (1,0)", got)
	}
}

func TestBuffer_DeleteBackward(t *testing.T) {
	b := New("ab\ncd", Options{})

	// At document start: no-op.
	b.DeleteBackward()
	if got, want := b.Text(), "ab\ncd"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}

	// Mid-line: deletes the previous rune.
	b.SetCursor(Pos{Row: 0, Col: 2})
	b.DeleteBackward()
	if got, want := b.Text(), "a\ncd"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}

	// At line start: joins with the previous line.
	b.SetCursor(Pos{Row: 1, Col: 0})
	b.DeleteBackward()
	if got, want := b.Text(), "acd"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
	if got := b.Cursor(); got != (Pos{Row: 0, Col: 1}) {
		t.Fatalf("cursor=%v, want (0,1)", got)
	}
}

func TestBuffer_DeleteForward(t *testing.T) {
	b := New("ab\ncd", Options{})

	// Mid-line: deletes the rune under the cursor.
	b.DeleteForward()
	if got, want := b.Text(), "b\ncd"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}

	// At line end: joins with the next line.
	b.SetCursor(Pos{Row: 0, Col: 1})
	b.DeleteForward()
	if got, want := b.Text(), "bcd"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}

	// At document end: no-op.
	b.SetCursor(Pos{Row: 0, Col: 3})
	b.DeleteForward()
	if got, want := b.Text(), "bcd"; got != want {
		t.Fatalf("Text()=%q, want %q", got, want)
	}
}
