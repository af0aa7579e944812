package completion

import (
	"errors"
	"io"
	"log"
	"unicode/utf8"
)

// ErrUnbound is returned by Item.Insert for items not built by an Adapter.
var ErrUnbound = errors.New("completion item has no replacer")

// Item is one selectable completion. Items are rebuilt on every refresh and
// carry the range captured when they were built.
type Item struct {
	Label      string
	Detail     string
	Kind       Kind
	InsertText string
	Token      string
	Range      Range

	insert func(text string) (int, error)
}

// Insert replaces the captured Range with InsertText and returns the new
// caret. A range that no longer fits the text fails with the Replacer's
// error.
func (it Item) Insert() (int, error) {
	if it.insert == nil {
		return 0, ErrUnbound
	}
	return it.insert(it.InsertText)
}

// Batch is the adapter output for one caret context.
type Batch struct {
	Items []Item
	Token string
	Range Range
}

// Adapter turns Source results into Items bound to a Replacer.
type Adapter struct {
	src Source
	rep Replacer
	log *log.Logger
}

func NewAdapter(src Source, rep Replacer, logger *log.Logger) *Adapter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Adapter{src: src, rep: rep, log: logger}
}

// Build queries the source once. Candidate order is kept as returned.
func (a *Adapter) Build(text string, caret int) Batch {
	if a == nil || a.src == nil {
		return Batch{}
	}
	caret = clampCaret(text, caret)

	res := a.src.Suggest(text, caret)
	if len(res.Candidates) == 0 {
		return Batch{}
	}
	rng := res.ReplaceRange
	if !validReplaceRange(rng, utf8.RuneCountInString(text), caret) {
		a.log.Printf("completion: dropping %d candidates, replace range %+v invalid for caret %d", len(res.Candidates), rng, caret)
		return Batch{}
	}

	items := make([]Item, 0, len(res.Candidates))
	for _, c := range res.Candidates {
		insertText := c.InsertText
		if insertText == "" {
			insertText = c.Name
		}
		if insertText == "" {
			continue
		}
		label := c.Name
		if label == "" {
			label = insertText
		}
		items = append(items, Item{
			Label:      label,
			Detail:     c.Detail,
			Kind:       c.Kind,
			InsertText: insertText,
			Token:      res.ActiveToken,
			Range:      rng,
			insert:     a.bind(rng),
		})
	}
	if len(items) == 0 {
		return Batch{}
	}
	return Batch{Items: items, Token: res.ActiveToken, Range: rng}
}

func (a *Adapter) bind(rng Range) func(string) (int, error) {
	rep := a.rep
	return func(text string) (int, error) {
		if rep == nil {
			return 0, ErrUnbound
		}
		return rep.Replace(rng.Offset, rng.Length, text)
	}
}

// validReplaceRange checks the range lies in [0, n] and never reaches past
// the caret.
func validReplaceRange(r Range, n, caret int) bool {
	if r.Offset < 0 || r.Length < 0 || r.Offset > n || r.Offset > caret {
		return false
	}
	return r.Length <= n-r.Offset && r.Length <= caret-r.Offset
}
