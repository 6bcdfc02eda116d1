package buffer

import "strings"

// InsertText inserts text at the cursor and moves the cursor past it.
func (b *Buffer) InsertText(s string) {
	if s == "" {
		return
	}

	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(Range{Start: b.cursor, End: b.cursor}, s)
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

// InsertRune inserts a single rune at the cursor.
func (b *Buffer) InsertRune(r rune) {
	b.InsertText(string(r))
}

// InsertNewline inserts a line break at the cursor.
func (b *Buffer) InsertNewline() {
	b.InsertText("\n")
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	row, col := b.cursor.Row, b.cursor.Col
	if row == 0 && col == 0 {
		return
	}

	start := Pos{Row: row, Col: col - 1}
	if col == 0 {
		// Join with previous line (delete the newline).
		start = Pos{Row: row - 1, Col: len(b.lines[row-1])}
	}
	b.deleteRange(Range{Start: start, End: b.cursor})
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	row, col := b.cursor.Row, b.cursor.Col
	end := Pos{Row: row, Col: col + 1}
	if col == len(b.lines[row]) {
		if row == len(b.lines)-1 {
			return
		}
		// Join with next line (delete the newline).
		end = Pos{Row: row + 1, Col: 0}
	}
	b.deleteRange(Range{Start: b.cursor, End: end})
}

func (b *Buffer) deleteRange(r Range) {
	prev := b.snapshot()
	nextCursor, changed := b.replaceRange(r, "")
	if !changed {
		return
	}

	b.cursor = nextCursor
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

func (b *Buffer) replaceRange(r Range, text string) (nextCursor Pos, changed bool) {
	r = NormalizeRange(ClampRange(r, len(b.lines), b.lineLen))
	if r.IsEmpty() && text == "" {
		return b.cursor, false
	}

	startRow, startCol := r.Start.Row, r.Start.Col
	endRow, endCol := r.End.Row, r.End.Col

	prefix := append([]rune(nil), b.lines[startRow][:startCol]...)
	suffix := append([]rune(nil), b.lines[endRow][endCol:]...)

	parts := strings.Split(text, "\n")
	ins := make([][]rune, 0, len(parts))
	for _, p := range parts {
		ins = append(ins, []rune(p))
	}

	repl := make([][]rune, 0, len(ins))
	if len(ins) == 1 {
		line := make([]rune, 0, len(prefix)+len(ins[0])+len(suffix))
		line = append(line, prefix...)
		line = append(line, ins[0]...)
		line = append(line, suffix...)
		repl = append(repl, line)
		nextCursor = Pos{Row: startRow, Col: len(prefix) + len(ins[0])}
	} else {
		first := make([]rune, 0, len(prefix)+len(ins[0]))
		first = append(first, prefix...)
		first = append(first, ins[0]...)
		repl = append(repl, first)

		for i := 1; i < len(ins)-1; i++ {
			repl = append(repl, append([]rune(nil), ins[i]...))
		}

		lastPart := ins[len(ins)-1]
		last := make([]rune, 0, len(lastPart)+len(suffix))
		last = append(last, lastPart...)
		last = append(last, suffix...)
		repl = append(repl, last)

		nextCursor = Pos{Row: startRow + len(ins) - 1, Col: len(lastPart)}
	}

	before := b.lines[:startRow]
	after := b.lines[endRow+1:]
	out := make([][]rune, 0, len(before)+len(repl)+len(after))
	out = append(out, before...)
	out = append(out, repl...)
	out = append(out, after...)
	if len(out) == 0 {
		out = [][]rune{nil}
	}

	b.lines = out
	return nextCursor, true
}
