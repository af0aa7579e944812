package buffer

import "unicode/utf8"

// Buffer holds script text and a caret offset.
type Buffer struct {
	text    []rune
	caret   int
	version uint64

	observers []observer
	nextObsID int
}

func New(text string) *Buffer {
	return &Buffer{text: []rune(text)}
}

func (b *Buffer) Text() string { return string(b.text) }

// Len returns the text length in runes.
func (b *Buffer) Len() int { return len(b.text) }

func (b *Buffer) Caret() int { return b.caret }

// Version increases on every effective text or caret change.
func (b *Buffer) Version() uint64 { return b.version }

// SetCaret moves the caret, clamping off into [0, Len()].
func (b *Buffer) SetCaret(off int) {
	next := clampInt(off, 0, len(b.text))
	if next == b.caret {
		return
	}
	b.caret = next
	b.version++
}

// SetText replaces the whole text, e.g. after the file changed on disk.
// The caret keeps its offset, clamped into the new bounds.
func (b *Buffer) SetText(text string) {
	if text == string(b.text) {
		return
	}
	b.apply(0, len(b.text), text, clampInt(b.caret, 0, runeLen(text)))
}

// Slice returns the text in [start, end), clamped into document bounds.
func (b *Buffer) Slice(start, end int) string {
	start = clampInt(start, 0, len(b.text))
	end = clampInt(end, start, len(b.text))
	return string(b.text[start:end])
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
