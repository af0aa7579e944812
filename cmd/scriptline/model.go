package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scriptline/editor"
	"github.com/iw2rmb/scriptline/internal/config"
)

// errUnsaved is shown when F5 is pressed with changes not on disk.
var errUnsaved = errors.New("save the script before running it (ctrl+s)")

type model struct {
	ctx    context.Context
	editor editor.Model
	runner runner
	log    *log.Logger

	running bool
}

func newModel(ctx context.Context, cfg config.Config, path, text string, logger *log.Logger) model {
	ed := editor.New(editor.Config{
		Text:                     text,
		Path:                     path,
		ShowLineNums:             cfg.Editor.ShowLineNumbers,
		Style:                    editor.DefaultStyle(),
		TabWidth:                 cfg.Editor.TabWidth,
		CompletionMaxVisibleRows: cfg.Editor.CompletionMaxRows,
		CompletionMaxWidth:       cfg.Editor.CompletionMaxWidth,
		Logger:                   logger,
	})
	return model{
		ctx:    ctx,
		editor: ed,
		runner: runner{interpreter: cfg.Runner.Interpreter, args: cfg.Runner.Args, log: logger},
		log:    logger,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+s":
			return m, m.save()
		case "f5":
			return m.start()
		}
	case scriptExitedMsg:
		m.running = false
		m.editor, _ = m.editor.Update(editor.ScriptStateMsg{Running: false})
		if msg.Err != nil {
			m.editor, _ = m.editor.Update(editor.ErrorMsg{Err: msg.Err})
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.editor.View() }

// save writes the buffer to its file. Untitled scripts are written to the
// working directory under their display name.
func (m model) save() tea.Cmd {
	doc := m.editor.Document()
	path := doc.FilePath()
	if path == "" {
		path = filepath.Join(".", doc.Filename())
	}
	content := m.editor.Buffer().Text()
	return func() tea.Msg {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return editor.ErrorMsg{Err: fmt.Errorf("save %s: %w", path, err)}
		}
		if abs, err := filepath.Abs(path); err == nil {
			path = abs
		}
		return editor.SavedMsg{Path: path}
	}
}

func (m model) start() (tea.Model, tea.Cmd) {
	if m.running {
		return m, nil
	}
	doc := m.editor.Document()
	if doc.FilePath() == "" || doc.IsDirty() {
		m.editor, _ = m.editor.Update(editor.ErrorMsg{Err: errUnsaved})
		return m, nil
	}
	m.running = true
	m.editor, _ = m.editor.Update(editor.ScriptStateMsg{Running: true})
	m.log.Printf("running %s with %s", doc.FilePath(), m.runner.interpreter)
	return m, m.runner.run(m.ctx, doc.FilePath())
}
