package completion

import "unicode/utf8"

// IsBeginningOfExpression reports whether the caret already sits at a
// beginning-of-expression position, or would once next is written at the
// caret and the caret advances past it. Both checks run because the decision
// is made before next reaches the buffer.
func IsBeginningOfExpression(src Source, text string, caret int, next rune) bool {
	if src == nil {
		return false
	}
	caret = clampCaret(text, caret)
	if src.IsBeginningOfExpression(text, caret) {
		return true
	}
	return src.IsBeginningOfExpression(insertRune(text, caret, next), caret+1)
}

// IsEndOfExpressionDelimiter reports whether writing ch ends the expression
// in progress.
func IsEndOfExpressionDelimiter(src Source, ch rune) bool {
	if src == nil {
		return false
	}
	return src.IsEndOfExpressionDelimiter(ch)
}

// Policy is one of the fixed trigger rules driving the Controller.
type Policy uint8

const (
	// OpenOnBeginning refreshes before a write that begins an expression.
	OpenOnBeginning Policy = iota
	// CloseOnSteppingOut closes when navigation leaves an expression.
	CloseOnSteppingOut
	// CloseOnDelimiter closes before a write that ends an expression.
	CloseOnDelimiter
)

func (p Policy) String() string {
	switch p {
	case OpenOnBeginning:
		return "open-on-beginning"
	case CloseOnSteppingOut:
		return "close-on-stepping-out"
	case CloseOnDelimiter:
		return "close-on-delimiter"
	default:
		return "unknown"
	}
}

// Fires evaluates p for a caret context. next is the rune about to be
// written; CloseOnSteppingOut ignores it.
func (p Policy) Fires(src Source, text string, caret int, next rune) bool {
	if src == nil {
		return false
	}
	switch p {
	case OpenOnBeginning:
		return IsBeginningOfExpression(src, text, caret, next)
	case CloseOnSteppingOut:
		return !src.IsBeginningOfExpression(text, clampCaret(text, caret))
	case CloseOnDelimiter:
		return IsEndOfExpressionDelimiter(src, next)
	default:
		return false
	}
}

func clampCaret(text string, caret int) int {
	n := utf8.RuneCountInString(text)
	if caret < 0 {
		return 0
	}
	if caret > n {
		return n
	}
	return caret
}

func insertRune(text string, caret int, r rune) string {
	rs := []rune(text)
	out := make([]rune, 0, len(rs)+1)
	out = append(out, rs[:caret]...)
	out = append(out, r)
	out = append(out, rs[caret:]...)
	return string(out)
}
