package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scriptline/buffer"
	"github.com/iw2rmb/scriptline/completion"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}

	// Paste inserts literal text; per-rune triggers would fire on every line.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if m.doc.Enabled() {
			m.ctrl.Close()
			m.buf.InsertAtCaret(normalizeNewlines(string(msg.Runes)))
		}
		return m
	}

	if m.updateCompletionKey(msg) {
		return m
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Left):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		m.move(buffer.Move{Unit: buffer.MoveRune, Dir: buffer.DirRight})
	case key.Matches(msg, km.Up):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})
	case key.Matches(msg, km.Home):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		m.move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocHome):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		m.move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		m.edit(m.buf.DeleteBackward)
	case key.Matches(msg, km.Delete):
		m.edit(m.buf.DeleteForward)
	case key.Matches(msg, km.Enter):
		m.write('\n')

	default:
		switch {
		case msg.Type == tea.KeyTab:
			m.write('\t')
		case msg.Type == tea.KeySpace:
			m.write(' ')
		case msg.Type == tea.KeyRunes && !msg.Alt:
			for _, r := range msg.Runes {
				m.write(r)
			}
		}
	}
	return m
}

// updateCompletionKey handles popup keys and reports whether msg was used.
func (m *Model) updateCompletionKey(msg tea.KeyMsg) bool {
	ckm := m.cfg.CompletionKeyMap

	if m.ctrl.State().Status == completion.Open {
		switch {
		case key.Matches(msg, ckm.Next):
			m.ctrl.SelectNext()
			return true
		case key.Matches(msg, ckm.Prev):
			m.ctrl.SelectPrev()
			return true
		case key.Matches(msg, ckm.Accept), ckm.AcceptTab && msg.Type == tea.KeyTab:
			m.commit()
			return true
		case key.Matches(msg, ckm.Dismiss):
			m.ctrl.Close()
			return true
		}
	}

	if key.Matches(msg, ckm.Trigger) {
		if m.doc.Enabled() {
			m.ctrl.Refresh(m.buf.Text(), m.buf.Caret())
		}
		return true
	}
	return false
}

// move navigates the caret. Completion stays closed while editing is
// disabled.
func (m *Model) move(mv buffer.Move) {
	if m.buf.MoveCaret(mv) && m.doc.Enabled() {
		m.ctrl.CaretMoved(m.buf.Text(), m.buf.Caret())
	}
}

// write runs one typed rune through the completion triggers around the
// buffer insert.
func (m *Model) write(r rune) {
	if !m.doc.Enabled() {
		return
	}
	m.ctrl.BeforeWrite(m.buf.Text(), m.buf.Caret(), r)
	m.buf.InsertAtCaret(string(r))
	m.ctrl.AfterEdit(m.buf.Text(), m.buf.Caret())
}

func (m *Model) edit(fn func()) {
	if !m.doc.Enabled() {
		return
	}
	v := m.buf.Version()
	fn()
	if m.buf.Version() != v {
		m.ctrl.AfterEdit(m.buf.Text(), m.buf.Caret())
	}
}

func (m *Model) commit() {
	if !m.doc.Enabled() {
		m.ctrl.Close()
		return
	}
	if _, err := m.ctrl.Commit(); err != nil {
		m.cfg.Logger.Printf("editor %s: %v", m.cfg.DocID, err)
		m.err = err
	}
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
