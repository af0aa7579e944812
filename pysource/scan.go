package pysource

import "unicode"

// expression is the member-access chain ending at the caret, e.g.
// "keyboard.getK" gives path ["keyboard"] and token "getK".
type expression struct {
	path  []string
	token string
	// start is the rune offset of token.
	start int
}

func (e expression) empty() bool {
	return e.token == "" && len(e.path) == 0
}

// expressionAt scans back from caret over identifiers and dots. It fails
// for chains that cannot be resolved by name, like "f().x" or "1.5".
func expressionAt(rs []rune, caret int) (expression, bool) {
	if caret < 0 || caret > len(rs) {
		return expression{}, false
	}

	start := identStart(rs, caret)
	e := expression{token: string(rs[start:caret]), start: start}

	pos := start
	for pos > 0 && rs[pos-1] == '.' {
		segEnd := pos - 1
		segStart := identStart(rs, segEnd)
		if segStart == segEnd {
			return expression{}, false
		}
		e.path = append([]string{string(rs[segStart:segEnd])}, e.path...)
		pos = segStart
	}

	root := e.token
	if len(e.path) > 0 {
		root = e.path[0]
	}
	if root != "" && !isIdentStart([]rune(root)[0]) {
		return expression{}, false
	}
	return e, true
}

func identStart(rs []rune, end int) int {
	i := end
	for i > 0 && isIdentRune(rs[i-1]) {
		i--
	}
	return i
}

func isIdentStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}

func isIdentRune(r rune) bool {
	return isIdentStart(r) || unicode.IsDigit(r)
}
