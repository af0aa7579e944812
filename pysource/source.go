package pysource

import (
	"github.com/iw2rmb/scriptline/completion"
	graphemeutil "github.com/iw2rmb/scriptline/internal/grapheme"
)

// Source completes Python scripts from a Catalog. It is not safe for
// concurrent use.
type Source struct {
	catalog  Catalog
	literals *literalDetector
}

var _ completion.Source = (*Source)(nil)

func New(c Catalog) *Source {
	return &Source{catalog: c, literals: newLiteralDetector()}
}

// Suggest offers the members of the scope named by the chain before the
// caret whose names start with the active token.
func (s *Source) Suggest(text string, caret int) completion.Result {
	rs := []rune(text)
	e, ok := expressionAt(rs, caret)
	if !ok || e.empty() {
		return completion.Result{}
	}
	if s.literals.inside(text, caret) {
		return completion.Result{}
	}

	scope, ok := s.catalog.Resolve(e.path)
	if !ok {
		return completion.Result{}
	}

	matches := matching(scope, e.token)
	if len(matches) == 0 {
		return completion.Result{}
	}
	res := completion.Result{
		Candidates:   make([]completion.ExpressionInfo, 0, len(matches)),
		ActiveToken:  e.token,
		ReplaceRange: completion.Range{Offset: e.start, Length: caret - e.start},
	}
	for _, m := range matches {
		res.Candidates = append(res.Candidates, completion.ExpressionInfo{
			Name:   m.Name,
			Detail: m.Detail,
			Kind:   m.Kind,
		})
	}
	return res
}

// IsBeginningOfExpression reports whether the caret sits in an identifier
// chain or right after a member-access dot, outside comments and strings.
func (s *Source) IsBeginningOfExpression(text string, caret int) bool {
	e, ok := expressionAt([]rune(text), caret)
	if !ok || e.empty() {
		return false
	}
	return !s.literals.inside(text, caret)
}

// IsEndOfExpressionDelimiter reports whitespace, punctuation and symbols,
// except the '.' and '_' that continue a chain.
func (s *Source) IsEndOfExpressionDelimiter(ch rune) bool {
	if ch == '.' || ch == '_' {
		return false
	}
	c := string(ch)
	return graphemeutil.IsSpace(c) || graphemeutil.IsPunct(c) || graphemeutil.IsSymbol(c)
}
