package editor

import (
	"testing"

	"github.com/iw2rmb/scriptline/completion"
	"github.com/iw2rmb/scriptline/document"
	"github.com/iw2rmb/scriptline/pysource"
)

func TestNormalizeConfig_Defaults(t *testing.T) {
	cfg := normalizeConfig(Config{})
	if _, ok := cfg.Source.(*pysource.Source); !ok {
		t.Fatalf("source: got %T, want *pysource.Source", cfg.Source)
	}
	if got, want := cfg.TabWidth, defaultTabWidth; got != want {
		t.Fatalf("tab width: got %d, want %d", got, want)
	}
	if got, want := cfg.CompletionMaxVisibleRows, defaultCompletionMaxVisibleRows; got != want {
		t.Fatalf("max rows: got %d, want %d", got, want)
	}
	if got, want := cfg.CompletionMaxWidth, defaultCompletionMaxWidth; got != want {
		t.Fatalf("max width: got %d, want %d", got, want)
	}
	if cfg.DocID == "" {
		t.Fatalf("doc id should default to a generated id")
	}
	if cfg.Logger == nil {
		t.Fatalf("logger should default to a discarding logger")
	}
	if got := cfg.KeyMap.Enter.Keys(); len(got) == 0 {
		t.Fatalf("keymap should default")
	}
	if got := cfg.CompletionKeyMap.Trigger.Keys(); len(got) != 1 || got[0] != "ctrl+@" {
		t.Fatalf("trigger keys: got %v, want [ctrl+@]", got)
	}
}

func TestNormalizeConfig_KeepsExplicitValues(t *testing.T) {
	src := stubSource{}
	cfg := normalizeConfig(Config{Source: src, TabWidth: 2, DocID: "doc-1", CompletionMaxWidth: 10})
	if _, ok := cfg.Source.(stubSource); !ok {
		t.Fatalf("source: got %T, want stubSource", cfg.Source)
	}
	if cfg.TabWidth != 2 || cfg.DocID != "doc-1" || cfg.CompletionMaxWidth != 10 {
		t.Fatalf("explicit values overwritten: %+v", cfg)
	}
}

func TestModel_ViewWithLineNumbersAndTabs(t *testing.T) {
	m := New(Config{
		Text:         "a\tb\nc",
		Path:         "s.py",
		ShowLineNums: true,
		TabWidth:     4,
	})
	m = m.Blur()
	m = m.SetSize(12, 4)

	assertLines(t, viewLines(m), []string{"1 a   b", "2 c", ""})
	if got, want := statusLine(m), "s.py"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}
}

func TestModel_ScrollFollowsCaret(t *testing.T) {
	m := New(Config{Text: "0\n1\n2\n3\n4", Path: "s.py"})
	m = m.Blur()
	m = m.SetSize(4, 3)
	m.Buffer().SetCaret(m.Buffer().Len())
	m = m.SetSize(4, 3)

	assertLines(t, viewLines(m), []string{"3", "4"})
}

func TestModel_UntitledEmptyDocumentIsDirty(t *testing.T) {
	counter := &document.UntitledCounter{}
	m := New(Config{UntitledCounter: counter})
	m = m.SetSize(20, 2)
	if got, want := statusLine(m), "Untitled.py [+]"; got != want {
		t.Fatalf("status: got %q, want %q", got, want)
	}

	other := New(Config{UntitledCounter: counter, UntitledExt: ".txt", Text: "x"})
	other = other.SetSize(20, 2)
	if got, want := statusLine(other), "Untitled-1.txt"; got != want {
		t.Fatalf("second status: got %q, want %q", got, want)
	}
}

func TestModel_BufferEditsReachDocument(t *testing.T) {
	m := New(Config{Text: "a", Path: "s.py"})
	if m.Document().IsDirty() {
		t.Fatalf("fresh document should be clean")
	}
	if _, err := m.Buffer().Replace(0, 1, "b"); err != nil {
		t.Fatalf("replace: %v", err)
	}
	if got, want := m.Document().Content(), "b"; got != want {
		t.Fatalf("document content: got %q, want %q", got, want)
	}
	if !m.Document().IsDirty() {
		t.Fatalf("document should be dirty after edit")
	}
	if _, err := m.Buffer().Replace(0, 1, "a"); err != nil {
		t.Fatalf("replace back: %v", err)
	}
	if m.Document().IsDirty() {
		t.Fatalf("document should be clean after reverting")
	}
}

func TestModel_OnCompletionObservesTransitions(t *testing.T) {
	var seen []completion.Status
	m := New(Config{
		Path: "s.py",
		OnCompletion: func(s completion.Snapshot) {
			seen = append(seen, s.Status)
		},
	})
	m = typeText(m, "pri")
	m = m.Blur()
	if len(seen) < 2 || seen[0] != completion.Open || seen[len(seen)-1] != completion.Closed {
		t.Fatalf("transitions: got %v, want open first and closed last", seen)
	}
}
