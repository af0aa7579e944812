package completion

// Range is the span an accepted completion overwrites, in runes.
type Range struct {
	Offset int
	Length int
}

type Kind uint8

const (
	KindUnknown Kind = iota
	KindModule
	KindClass
	KindFunction
	KindProperty
	KindKeyword
)

func (k Kind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindProperty:
		return "property"
	case KindKeyword:
		return "keyword"
	default:
		return "unknown"
	}
}

// ExpressionInfo is one candidate offered by a Source.
type ExpressionInfo struct {
	Name string
	// InsertText defaults to Name when empty.
	InsertText string
	Detail     string
	Kind       Kind
}

// Result is the outcome of one suggestion query.
type Result struct {
	Candidates   []ExpressionInfo
	ActiveToken  string
	ReplaceRange Range
}

// Source supplies language-aware answers. Implementations must be fast and
// synchronous; an empty Result is a normal answer, not a failure.
type Source interface {
	Suggest(text string, caret int) Result
	IsBeginningOfExpression(text string, caret int) bool
	IsEndOfExpressionDelimiter(ch rune) bool
}

// Replacer applies an accepted completion. *buffer.Buffer implements it.
type Replacer interface {
	Replace(offset, length int, text string) (int, error)
}
