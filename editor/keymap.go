package editor

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the editor key bindings.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	Home, End             key.Binding
	DocHome, DocEnd       key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		Home: key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:  key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),

		DocHome: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "script start")),
		DocEnd:  key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "script end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
	}
}

// CompletionKeyMap defines the bindings active around the completion popup.
// Next, Prev, Accept and Dismiss only apply while a session is open.
type CompletionKeyMap struct {
	Trigger key.Binding
	Accept  key.Binding

	// AcceptTab also accepts with tab while a session is open.
	AcceptTab bool

	Dismiss key.Binding
	Next    key.Binding
	Prev    key.Binding
}

func DefaultCompletionKeyMap() CompletionKeyMap {
	return CompletionKeyMap{
		// Terminals report ctrl+space as ctrl+@.
		Trigger:   key.NewBinding(key.WithKeys("ctrl+@"), key.WithHelp("ctrl+space", "trigger completion")),
		Accept:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "accept completion")),
		AcceptTab: true,
		Dismiss:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss completion")),
		Next:      key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("down", "next completion")),
		Prev:      key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("up", "prev completion")),
	}
}
