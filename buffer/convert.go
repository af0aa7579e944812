package buffer

// PosFromOffset converts a rune offset into (row, col). Offsets outside
// [0, Len()] report false.
func (b *Buffer) PosFromOffset(off int) (Pos, bool) {
	if off < 0 || off > len(b.text) {
		return Pos{}, false
	}
	row, col := 0, 0
	for _, r := range b.text[:off] {
		if r == '\n' {
			row++
			col = 0
			continue
		}
		col++
	}
	return Pos{Row: row, Col: col}, true
}

// OffsetFromPos converts (row, col) into a rune offset. Positions past the
// end of their row or past the last row report false.
func (b *Buffer) OffsetFromPos(p Pos) (int, bool) {
	if p.Row < 0 || p.Col < 0 {
		return 0, false
	}
	start, ok := b.lineStart(p.Row)
	if !ok {
		return 0, false
	}
	if p.Col > b.lineLen(start) {
		return 0, false
	}
	return start + p.Col, true
}

// LineCount returns the number of logical lines; empty text has one line.
func (b *Buffer) LineCount() int {
	n := 1
	for _, r := range b.text {
		if r == '\n' {
			n++
		}
	}
	return n
}

func (b *Buffer) lineStart(row int) (int, bool) {
	if row == 0 {
		return 0, true
	}
	seen := 0
	for i, r := range b.text {
		if r != '\n' {
			continue
		}
		seen++
		if seen == row {
			return i + 1, true
		}
	}
	return 0, false
}

func (b *Buffer) lineLen(start int) int {
	n := 0
	for _, r := range b.text[start:] {
		if r == '\n' {
			break
		}
		n++
	}
	return n
}
