package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scriptline/buffer"
	"github.com/iw2rmb/scriptline/completion"
	"github.com/iw2rmb/scriptline/document"
)

// Model is a Bubble Tea component editing one script.
type Model struct {
	cfg  Config
	buf  *buffer.Buffer
	doc  *document.Document
	ctrl *completion.Controller

	focused bool

	width    int
	viewport viewport.Model

	err error
}

func New(cfg Config) Model {
	cfg = normalizeConfig(cfg)

	buf := buffer.New(cfg.Text)
	doc := document.New(cfg.Path,
		document.WithUntitledCounter(cfg.UntitledCounter),
		document.WithExtension(cfg.UntitledExt),
	)
	doc.LoadFileContent(cfg.Text)
	buf.Subscribe(func(buffer.Change) { doc.SetContent(buf.Text()) })

	ctrl := completion.NewController(cfg.Source, buf, completion.Options{Logger: cfg.Logger})
	if cfg.OnCompletion != nil {
		ctrl.Subscribe(cfg.OnCompletion)
	}

	m := Model{
		cfg:      cfg,
		buf:      buf,
		doc:      doc,
		ctrl:     ctrl,
		focused:  true,
		viewport: viewport.New(0, 0),
	}
	m.rebuildContent()
	return m
}

func (m Model) Buffer() *buffer.Buffer { return m.buf }

func (m Model) Document() *document.Document { return m.doc }

// Completion returns the current completion session.
func (m Model) Completion() completion.Snapshot { return m.ctrl.State() }

// Err returns the last failure shown on the status line.
func (m Model) Err() error { return m.err }

func (m Model) DocID() string { return m.cfg.DocID }

func (m Model) Init() tea.Cmd { return nil }

// SetSize sets the outer size; the last row holds the status line.
func (m Model) SetSize(width, height int) Model {
	if width < 0 {
		width = 0
	}
	if height < 1 {
		height = 1
	}
	m.width = width
	m.viewport.Width = width
	m.viewport.Height = height - 1
	m.refreshView()
	return m
}

func (m Model) Focus() Model {
	m.focused = true
	m.rebuildContent()
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	m.ctrl.Close()
	m.rebuildContent()
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m = m.updateKey(msg)
	case ScriptStateMsg:
		m.doc.HandleScriptState(document.ScriptStateChanged{Running: msg.Running})
		if msg.Running {
			m.ctrl.Close()
		}
	case SavedMsg:
		if msg.Path != "" {
			m.doc.SetFilePath(msg.Path)
		}
		m.doc.Saved()
		m.err = nil
	case ReloadMsg:
		m.reload(msg.Content)
	case ErrorMsg:
		m.err = msg.Err
	default:
		return m, nil
	}

	m.refreshView()
	return m, nil
}

func (m Model) View() string {
	return m.viewport.View() + "\n" + m.renderStatus()
}

func (m *Model) reload(content string) {
	if content == m.buf.Text() {
		m.doc.LoadFileContent(content)
		return
	}
	if m.doc.IsDirty() && m.doc.Content() != "" {
		m.cfg.Logger.Printf("editor %s: keeping local changes over external update of %s", m.cfg.DocID, m.doc.ContentID())
		return
	}
	m.ctrl.Close()
	m.buf.SetText(content)
	m.doc.LoadFileContent(content)
}

// refreshView renders, scrolls the caret into view and renders again so
// the popup placement sees the final scroll offset.
func (m *Model) refreshView() {
	m.rebuildContent()
	m.followCaret()
	m.rebuildContent()
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCaret() {
	pos, ok := m.buf.PosFromOffset(m.buf.Caret())
	if !ok {
		return
	}
	h := m.viewport.Height
	if h <= 0 {
		return
	}
	y := m.viewport.YOffset
	if pos.Row < y {
		m.viewport.SetYOffset(pos.Row)
		return
	}
	if pos.Row >= y+h {
		m.viewport.SetYOffset(pos.Row - h + 1)
	}
}
