package buffer

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveLine
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start
	DirEnd  // line end
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

func (b *Buffer) Move(m Move) {
	next := b.clampPos(b.moveCursor(b.cursor, m))
	if next == b.cursor {
		return
	}
	b.cursor = next
	b.version++
}

func (b *Buffer) moveCursor(p Pos, m Move) Pos {
	switch m.Unit {
	case MoveLine:
		switch m.Dir {
		case DirUp:
			return Pos{Row: p.Row - 1, Col: p.Col}
		case DirDown:
			return Pos{Row: p.Row + 1, Col: p.Col}
		case DirHome:
			return Pos{Row: p.Row, Col: 0}
		case DirEnd:
			return Pos{Row: p.Row, Col: b.lineLen(p.Row)}
		}
	default: // MoveRune
		switch m.Dir {
		case DirLeft:
			if p.Col > 0 {
				return Pos{Row: p.Row, Col: p.Col - 1}
			}
			if p.Row > 0 {
				return Pos{Row: p.Row - 1, Col: b.lineLen(p.Row - 1)}
			}
		case DirRight:
			if p.Col < b.lineLen(p.Row) {
				return Pos{Row: p.Row, Col: p.Col + 1}
			}
			if p.Row < len(b.lines)-1 {
				return Pos{Row: p.Row + 1, Col: 0}
			}
		}
	}
	return p
}
