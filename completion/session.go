package completion

import (
	"errors"
	"fmt"
	"io"
	"log"
)

// ErrNotOpen is returned by Commit when no session is open.
var ErrNotOpen = errors.New("completion session not open")

type Status uint8

const (
	Closed Status = iota
	Open
)

func (s Status) String() string {
	if s == Open {
		return "open"
	}
	return "closed"
}

// Snapshot is the observable session state. Items and Selected are only
// meaningful while Status is Open.
type Snapshot struct {
	Status   Status
	Items    []Item
	Selected int
	Token    string
	Range    Range

	// Generation increases with every published transition.
	Generation uint64
}

// SelectedItem returns the selected item of an open session.
func (s Snapshot) SelectedItem() (Item, bool) {
	if s.Status != Open || s.Selected < 0 || s.Selected >= len(s.Items) {
		return Item{}, false
	}
	return s.Items[s.Selected], true
}

// Observer receives every published transition.
type Observer func(Snapshot)

type Options struct {
	Logger *log.Logger
}

// Controller is the open/closed state machine behind a completion popup.
// It is single-threaded: every call runs to completion before the next
// input event and the latest call always wins.
type Controller struct {
	src     Source
	adapter *Adapter
	log     *log.Logger

	state Snapshot
	// closedByDelimiter keeps the next AfterEdit from reopening the session
	// after a delimiter write closed it.
	closedByDelimiter bool

	observers []Observer
}

func NewController(src Source, rep Replacer, opt Options) *Controller {
	logger := opt.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Controller{
		src:     src,
		adapter: NewAdapter(src, rep, logger),
		log:     logger,
	}
}

// State returns a copy of the current session state.
func (c *Controller) State() Snapshot {
	return cloneSnapshot(c.state)
}

// Subscribe registers an observer for published transitions.
func (c *Controller) Subscribe(o Observer) {
	if o != nil {
		c.observers = append(c.observers, o)
	}
}

// Refresh recomputes suggestions: a non-empty batch opens the session with
// the first item selected, an empty one closes it.
func (c *Controller) Refresh(text string, caret int) Status {
	batch := c.adapter.Build(text, caret)
	if len(batch.Items) == 0 {
		c.transition(Snapshot{Status: Closed})
		return Closed
	}
	c.transition(Snapshot{
		Status: Open,
		Items:  batch.Items,
		Token:  batch.Token,
		Range:  batch.Range,
	})
	return Open
}

// CaretMoved handles caret navigation (not typing). A caret that stepped
// out of an expression closes the session; otherwise suggestions are
// refreshed. Either way observers see a single transition.
func (c *Controller) CaretMoved(text string, caret int) Status {
	c.closedByDelimiter = false
	if CloseOnSteppingOut.Fires(c.src, text, caret, 0) {
		c.Close()
		return Closed
	}
	return c.Refresh(text, caret)
}

// BeforeWrite runs before ch lands at caret. A delimiter closes the session
// at once; otherwise a write that begins an expression refreshes early so
// the popup is already up when ch arrives.
func (c *Controller) BeforeWrite(text string, caret int, ch rune) Status {
	c.closedByDelimiter = false
	if CloseOnDelimiter.Fires(c.src, text, caret, ch) {
		c.Close()
		c.closedByDelimiter = true
		return Closed
	}
	if OpenOnBeginning.Fires(c.src, text, caret, ch) {
		return c.Refresh(text, caret)
	}
	return c.state.Status
}

// AfterEdit runs once the buffer reflects an edit. It refreshes, unless the
// edit was a delimiter write closed by BeforeWrite.
func (c *Controller) AfterEdit(text string, caret int) Status {
	if c.closedByDelimiter {
		c.closedByDelimiter = false
		return Closed
	}
	return c.Refresh(text, caret)
}

// Close discards the current items.
func (c *Controller) Close() {
	c.transition(Snapshot{Status: Closed})
}

// Select moves the selection to index i of an open session.
func (c *Controller) Select(i int) bool {
	if c.state.Status != Open || i < 0 || i >= len(c.state.Items) {
		return false
	}
	if i == c.state.Selected {
		return true
	}
	next := c.state
	next.Selected = i
	c.transition(next)
	return true
}

// SelectNext moves the selection down, wrapping to the first item.
func (c *Controller) SelectNext() bool {
	n := len(c.state.Items)
	if c.state.Status != Open || n == 0 {
		return false
	}
	return c.Select((c.state.Selected + 1) % n)
}

// SelectPrev moves the selection up, wrapping to the last item.
func (c *Controller) SelectPrev() bool {
	n := len(c.state.Items)
	if c.state.Status != Open || n == 0 {
		return false
	}
	return c.Select((c.state.Selected - 1 + n) % n)
}

// Commit applies the selected item and closes the session. The new caret is
// returned; a failed replacement is returned as an error and still closes
// the session since its items no longer match the text.
func (c *Controller) Commit() (int, error) {
	item, ok := c.state.SelectedItem()
	if !ok {
		return 0, ErrNotOpen
	}
	c.Close()

	caret, err := item.Insert()
	if err != nil {
		c.log.Printf("completion: commit %q at %+v failed: %v", item.Label, item.Range, err)
		return caret, fmt.Errorf("commit completion %q: %w", item.Label, err)
	}
	return caret, nil
}

func (c *Controller) transition(next Snapshot) {
	if next.Status == Closed && c.state.Status == Closed {
		return
	}
	if next.Status == Closed {
		next = Snapshot{Status: Closed}
	}
	next.Generation = c.state.Generation + 1
	c.state = next

	if len(c.observers) == 0 {
		return
	}
	for _, o := range c.observers {
		o(cloneSnapshot(c.state))
	}
}

func cloneSnapshot(s Snapshot) Snapshot {
	if len(s.Items) == 0 {
		s.Items = nil
		return s
	}
	s.Items = append([]Item(nil), s.Items...)
	return s
}
