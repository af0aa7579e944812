package buffer

import "testing"

func TestBuffer_MoveCaret(t *testing.T) {
	b := New("abcd\nx\nlonger")

	b.SetCaret(3)
	if !b.MoveCaret(Move{Unit: MoveLine, Dir: DirDown}) {
		t.Fatalf("down should move caret")
	}
	if got, want := b.Caret(), 6; got != want {
		t.Fatalf("down clamps column: caret=%d, want %d", got, want)
	}

	b.MoveCaret(Move{Unit: MoveLine, Dir: DirDown})
	if got, want := b.Caret(), 8; got != want {
		t.Fatalf("down: caret=%d, want %d", got, want)
	}

	b.MoveCaret(Move{Unit: MoveLine, Dir: DirEnd})
	if got, want := b.Caret(), 13; got != want {
		t.Fatalf("end: caret=%d, want %d", got, want)
	}

	b.MoveCaret(Move{Unit: MoveLine, Dir: DirHome})
	if got, want := b.Caret(), 7; got != want {
		t.Fatalf("home: caret=%d, want %d", got, want)
	}

	b.MoveCaret(Move{Unit: MoveRune, Dir: DirLeft})
	if got, want := b.Caret(), 6; got != want {
		t.Fatalf("left: caret=%d, want %d", got, want)
	}

	b.MoveCaret(Move{Unit: MoveLine, Dir: DirUp})
	if got, want := b.Caret(), 1; got != want {
		t.Fatalf("up: caret=%d, want %d", got, want)
	}

	b.MoveCaret(Move{Unit: MoveDoc, Dir: DirHome})
	if b.MoveCaret(Move{Unit: MoveRune, Dir: DirLeft}) {
		t.Fatalf("left at doc start should not report a move")
	}

	b.MoveCaret(Move{Unit: MoveDoc, Dir: DirEnd})
	if got, want := b.Caret(), b.Len(); got != want {
		t.Fatalf("doc end: caret=%d, want %d", got, want)
	}
}
