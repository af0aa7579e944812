package buffer

import (
	"errors"
	"fmt"
)

// ErrInvalidRange reports a replacement range outside the current text.
var ErrInvalidRange = errors.New("invalid range")

// RangeError describes a rejected replacement. It matches ErrInvalidRange
// with errors.Is.
type RangeError struct {
	Offset int
	Length int
	Len    int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("replace [%d, %d) in text of length %d: %s", e.Offset, e.Offset+e.Length, e.Len, ErrInvalidRange)
}

func (e *RangeError) Unwrap() error { return ErrInvalidRange }

// Replace removes length runes starting at offset, inserts text there and
// moves the caret to offset+len(text). It returns the new caret.
//
// Out-of-range requests are rejected with a *RangeError and leave the buffer
// untouched; they are never clamped.
func (b *Buffer) Replace(offset, length int, text string) (int, error) {
	if offset < 0 || length < 0 || length > len(b.text)-offset {
		return b.caret, &RangeError{Offset: offset, Length: length, Len: len(b.text)}
	}
	caret := offset + runeLen(text)
	b.apply(offset, length, text, caret)
	return caret, nil
}

// InsertAtCaret inserts text at the caret and moves the caret past it.
func (b *Buffer) InsertAtCaret(text string) {
	if text == "" {
		return
	}
	_, _ = b.Replace(b.caret, 0, text)
}

// DeleteBackward applies backspace semantics.
func (b *Buffer) DeleteBackward() {
	if b.caret == 0 {
		return
	}
	_, _ = b.Replace(b.caret-1, 1, "")
}

// DeleteForward applies delete-key semantics.
func (b *Buffer) DeleteForward() {
	if b.caret >= len(b.text) {
		return
	}
	_, _ = b.Replace(b.caret, 1, "")
}

// apply performs a validated replacement. Observers are notified once, after
// both the delete and the insert have landed.
func (b *Buffer) apply(offset, length int, text string, caret int) {
	deleted := string(b.text[offset : offset+length])
	if deleted == text {
		b.SetCaret(caret)
		return
	}

	inserted := []rune(text)
	next := make([]rune, 0, len(b.text)-length+len(inserted))
	next = append(next, b.text[:offset]...)
	next = append(next, inserted...)
	next = append(next, b.text[offset+length:]...)

	change := Change{
		VersionBefore: b.version,
		CaretBefore:   b.caret,
		Offset:        offset,
		Deleted:       deleted,
		Inserted:      text,
	}

	b.text = next
	b.caret = clampInt(caret, 0, len(b.text))
	b.version++

	change.VersionAfter = b.version
	change.CaretAfter = b.caret
	b.notify(change)
}
