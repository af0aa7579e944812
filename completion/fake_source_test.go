package completion

import (
	"strings"
	"unicode"

	"github.com/iw2rmb/scriptline/buffer"
)

// fakeSource completes identifiers from a fixed word list. Tests override
// individual answers through the func fields.
type fakeSource struct {
	words []string

	suggest     func(text string, caret int) Result
	beginning   func(text string, caret int) bool
	isDelimiter func(ch rune) bool

	beginningCalls []beginningCall
}

type beginningCall struct {
	text  string
	caret int
}

func (f *fakeSource) Suggest(text string, caret int) Result {
	if f.suggest != nil {
		return f.suggest(text, caret)
	}
	rs := []rune(text)
	start := caret
	for start > 0 && isWordRune(rs[start-1]) {
		start--
	}
	token := string(rs[start:caret])
	if token == "" {
		return Result{}
	}
	res := Result{ActiveToken: token, ReplaceRange: Range{Offset: start, Length: caret - start}}
	for _, w := range f.words {
		if strings.HasPrefix(w, token) {
			res.Candidates = append(res.Candidates, ExpressionInfo{Name: w, Kind: KindFunction})
		}
	}
	return res
}

func (f *fakeSource) IsBeginningOfExpression(text string, caret int) bool {
	f.beginningCalls = append(f.beginningCalls, beginningCall{text: text, caret: caret})
	if f.beginning != nil {
		return f.beginning(text, caret)
	}
	rs := []rune(text)
	return caret > 0 && caret <= len(rs) && (isWordRune(rs[caret-1]) || rs[caret-1] == '.')
}

func (f *fakeSource) IsEndOfExpressionDelimiter(ch rune) bool {
	if f.isDelimiter != nil {
		return f.isDelimiter(ch)
	}
	return unicode.IsSpace(ch) || ch == '(' || ch == ')'
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func newTestController(text string, words ...string) (*Controller, *buffer.Buffer, *fakeSource) {
	src := &fakeSource{words: words}
	buf := buffer.New(text)
	buf.SetCaret(buf.Len())
	return NewController(src, buf, Options{}), buf, src
}

func itemLabels(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}
