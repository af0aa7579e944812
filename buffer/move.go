package buffer

type MoveUnit int

const (
	MoveRune MoveUnit = iota
	MoveLine
	MoveDoc
)

type MoveDir int

const (
	DirLeft MoveDir = iota
	DirRight
	DirUp
	DirDown
	DirHome // line start (or doc start for MoveDoc)
	DirEnd  // line end (or doc end for MoveDoc)
)

type Move struct {
	Unit MoveUnit
	Dir  MoveDir
}

// MoveCaret moves the caret and reports whether it changed.
func (b *Buffer) MoveCaret(m Move) bool {
	prev := b.caret
	b.SetCaret(b.moveCaret(prev, m))
	return b.caret != prev
}

func (b *Buffer) moveCaret(off int, m Move) int {
	switch m.Unit {
	case MoveRune:
		switch m.Dir {
		case DirLeft:
			return off - 1
		case DirRight:
			return off + 1
		}
	case MoveLine:
		pos, ok := b.PosFromOffset(off)
		if !ok {
			return off
		}
		switch m.Dir {
		case DirUp:
			if pos.Row == 0 {
				return 0
			}
			return b.offsetClampedToRow(pos.Row-1, pos.Col)
		case DirDown:
			if pos.Row >= b.LineCount()-1 {
				return len(b.text)
			}
			return b.offsetClampedToRow(pos.Row+1, pos.Col)
		case DirHome:
			return off - pos.Col
		case DirEnd:
			return b.offsetClampedToRow(pos.Row, len(b.text))
		}
	case MoveDoc:
		switch m.Dir {
		case DirHome, DirUp, DirLeft:
			return 0
		case DirEnd, DirDown, DirRight:
			return len(b.text)
		}
	}
	return off
}

func (b *Buffer) offsetClampedToRow(row, col int) int {
	start, ok := b.lineStart(row)
	if !ok {
		return len(b.text)
	}
	return start + clampInt(col, 0, b.lineLen(start))
}
