package pysource

import (
	"reflect"
	"testing"

	"github.com/iw2rmb/scriptline/completion"
)

func candidateNames(res completion.Result) []string {
	out := make([]string, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		out = append(out, c.Name)
	}
	return out
}

func TestSource_Suggest_MemberAccess(t *testing.T) {
	s := New(DefaultCatalog())
	text := "if keyboard.getK"

	res := s.Suggest(text, len(text))
	if got, want := candidateNames(res), []string{"getKeyDown", "getKeyUp"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}
	if got, want := res.ActiveToken, "getK"; got != want {
		t.Fatalf("token: got %q, want %q", got, want)
	}
	if got, want := res.ReplaceRange, (completion.Range{Offset: 12, Length: 4}); got != want {
		t.Fatalf("range: got %+v, want %+v", got, want)
	}
}

func TestSource_Suggest_AfterDotListsAllMembers(t *testing.T) {
	s := New(DefaultCatalog())
	text := "diagnostics."

	res := s.Suggest(text, len(text))
	if got, want := candidateNames(res), []string{"debug", "watch", "notify"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}
	if got, want := res.ReplaceRange, (completion.Range{Offset: 12, Length: 0}); got != want {
		t.Fatalf("range: got %+v, want %+v", got, want)
	}
}

func TestSource_Suggest_GlobalsAreCaseInsensitiveAndIncludeKeywords(t *testing.T) {
	s := New(DefaultCatalog())

	res := s.Suggest("x = k", 5)
	if got, want := candidateNames(res), []string{"keyboard", "Key"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}

	res = s.Suggest("wh", 2)
	if got, want := candidateNames(res), []string{"while"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("keyword candidates: got %v, want %v", got, want)
	}
}

func TestSource_Suggest_NestedPathAndCaretMidText(t *testing.T) {
	s := New(DefaultCatalog())
	text := "keyboard.getKeyDown(Key.Sp) and x"

	res := s.Suggest(text, 26)
	if got, want := candidateNames(res), []string{"Space"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}
	if got, want := res.ReplaceRange, (completion.Range{Offset: 24, Length: 2}); got != want {
		t.Fatalf("range: got %+v, want %+v", got, want)
	}
}

func TestSource_Suggest_NoCandidates(t *testing.T) {
	s := New(DefaultCatalog())

	cases := []struct {
		name  string
		text  string
		caret int
	}{
		{name: "empty text", text: "", caret: 0},
		{name: "after space", text: "x = ", caret: 4},
		{name: "unknown root", text: "foo.ba", caret: 6},
		{name: "call result", text: "len(x).re", caret: 9},
		{name: "number", text: "1.5", caret: 3},
		{name: "no match", text: "zzz", caret: 3},
		{name: "comment", text: "# keyboard.get", caret: 14},
		{name: "string", text: `print("keyboard.get")`, caret: 19},
		{name: "caret past end", text: "key", caret: 9},
		{name: "unknown member", text: "mouse.whi", caret: 9},
	}

	for _, tc := range cases {
		if res := s.Suggest(tc.text, tc.caret); len(res.Candidates) != 0 {
			t.Fatalf("%s: expected no candidates, got %v", tc.name, candidateNames(res))
		}
	}
}

func TestSource_Suggest_AfterClosingQuoteIsCode(t *testing.T) {
	s := New(DefaultCatalog())
	text := `x = "a" + mou`

	res := s.Suggest(text, len(text))
	if got, want := candidateNames(res), []string{"mouse"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("candidates: got %v, want %v", got, want)
	}
}

func TestSource_IsBeginningOfExpression(t *testing.T) {
	s := New(DefaultCatalog())

	cases := []struct {
		text  string
		caret int
		want  bool
	}{
		{text: "foo.", caret: 4, want: true},
		{text: "foo.b", caret: 5, want: true},
		{text: "x = k", caret: 5, want: true},
		{text: "x = ", caret: 4, want: false},
		{text: "", caret: 0, want: false},
		{text: "1.5", caret: 3, want: false},
		{text: "# mouse", caret: 7, want: false},
	}

	for _, tc := range cases {
		if got := s.IsBeginningOfExpression(tc.text, tc.caret); got != tc.want {
			t.Fatalf("IsBeginningOfExpression(%q, %d): got %v, want %v", tc.text, tc.caret, got, tc.want)
		}
	}
}

func TestSource_IsEndOfExpressionDelimiter(t *testing.T) {
	s := New(DefaultCatalog())

	for _, ch := range []rune{' ', '\t', '\n', '(', ')', ',', ':', '=', '+', '[', '"'} {
		if !s.IsEndOfExpressionDelimiter(ch) {
			t.Fatalf("%q should end an expression", ch)
		}
	}
	for _, ch := range []rune{'.', '_', 'a', 'Z', '7'} {
		if s.IsEndOfExpressionDelimiter(ch) {
			t.Fatalf("%q should not end an expression", ch)
		}
	}
}

func TestSource_DrivesController(t *testing.T) {
	s := New(DefaultCatalog())
	var inserted string
	rep := replacerFunc(func(offset, length int, text string) (int, error) {
		inserted = text
		return offset + len(text), nil
	})
	c := completion.NewController(s, rep, completion.Options{})

	if got := c.BeforeWrite("mouse", 5, '.'); got != completion.Open {
		t.Fatalf("writing '.' after a module should open: got %v", got)
	}
	if got := c.AfterEdit("mouse.", 6); got != completion.Open {
		t.Fatalf("after '.': got %v, want open", got)
	}
	if _, err := c.Commit(); err != nil {
		t.Fatalf("commit: %v", err)
	}
	if got, want := inserted, "deltaX"; got != want {
		t.Fatalf("inserted: got %q, want %q", got, want)
	}
}

type replacerFunc func(offset, length int, text string) (int, error)

func (f replacerFunc) Replace(offset, length int, text string) (int, error) {
	return f(offset, length, text)
}
