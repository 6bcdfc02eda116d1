package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000
}

// Buffer is the pure document state: text lines and a cursor.
//
// Version counts every observable mutation. TextVersion counts only text
// mutations, which is what change listeners care about.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos

	opt  Options
	hist historyState
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines:  splitLines(text),
		cursor: Pos{Row: 0, Col: 0},
		opt:    opt,
	}
}

func (b *Buffer) Text() string {
	if len(b.lines) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// LineCount reports the number of logical lines. A buffer always has at
// least one line.
func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of the given row, without its line terminator.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

func (b *Buffer) Version() uint64 { return b.version }

func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

// InsertAt inserts text at (row, col), clamped into document bounds, without
// moving the cursor. Rows past the last line address the end of the document,
// so InsertAt(b.LineCount(), 0, s) appends after the last line. That mapping
// lives here and not in ClampPos, which stays per-line for cursor movement
// and range edits.
//
// The cursor keeps its coordinates, so an append past the cursor never drags
// it along. The insertion is recorded in undo history like any other edit.
func (b *Buffer) InsertAt(row, col int, text string) {
	if text == "" {
		return
	}
	var pos Pos
	if row >= len(b.lines) {
		last := len(b.lines) - 1
		pos = Pos{Row: last, Col: b.lineLen(last)}
	} else {
		pos = b.clampPos(Pos{Row: row, Col: col})
	}
	prev := b.snapshot()
	cursor := b.cursor

	if _, changed := b.replaceRange(Range{Start: pos, End: pos}, text); !changed {
		return
	}

	b.cursor = b.clampPos(cursor)
	b.version++
	b.textVersion++
	b.recordUndo(prev)
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	if len(parts) == 0 {
		parts = []string{""}
	}
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}
