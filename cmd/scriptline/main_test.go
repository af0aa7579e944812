package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scriptline/editor"
	"github.com/iw2rmb/scriptline/internal/config"
)

func newTestModel(t *testing.T, cfg config.Config, text string) (model, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "script.py")
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	return newModel(context.Background(), cfg, path, text, log.New(io.Discard, "", 0)), path
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(model), cmd
}

func TestSaveWritesBufferAndClearsDirty(t *testing.T) {
	m, path := newTestModel(t, config.Default(), "x")

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	if !m.editor.Document().IsDirty() {
		t.Fatalf("document should be dirty after typing")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlS})
	if cmd == nil {
		t.Fatalf("ctrl+s should return a save command")
	}
	msg := cmd()
	if _, ok := msg.(editor.SavedMsg); !ok {
		t.Fatalf("save result: got %T (%v), want editor.SavedMsg", msg, msg)
	}
	m, _ = update(t, m, msg)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, want := string(data), "yx"; got != want {
		t.Fatalf("file: got %q, want %q", got, want)
	}
	if m.editor.Document().IsDirty() {
		t.Fatalf("document should be clean after save")
	}
}

func TestRunRefusesUnsavedChanges(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), "x")
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyF5})
	if cmd != nil || m.running {
		t.Fatalf("run should not start with unsaved changes")
	}
	if !errors.Is(m.editor.Err(), errUnsaved) {
		t.Fatalf("error: got %v, want %v", m.editor.Err(), errUnsaved)
	}
}

func TestRunDisablesEditingUntilExit(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	cfg := config.Default()
	cfg.Runner.Interpreter = "sh"

	cases := []struct {
		name    string
		script  string
		wantErr bool
	}{
		{name: "success", script: "exit 0\n"},
		{name: "failure", script: "exit 3\n", wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m, _ := newTestModel(t, cfg, tc.script)

			m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyF5})
			if cmd == nil || !m.running {
				t.Fatalf("run should start")
			}
			if m.editor.Document().Enabled() {
				t.Fatalf("editing should be disabled while running")
			}

			m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
			if got := m.editor.Buffer().Text(); got != tc.script {
				t.Fatalf("text while running: got %q, want %q", got, tc.script)
			}

			m, _ = update(t, m, cmd())
			if m.running || !m.editor.Document().Enabled() {
				t.Fatalf("editing should be enabled after exit")
			}
			if got := m.editor.Err() != nil; got != tc.wantErr {
				t.Fatalf("error: got %v, want error %v", m.editor.Err(), tc.wantErr)
			}
		})
	}
}

func TestCtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), "")
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("ctrl+c should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("ctrl+c should return tea.Quit")
	}
}

func TestReloadFromWatcherAppliesWhenClean(t *testing.T) {
	m, _ := newTestModel(t, config.Default(), "a = 1\n")
	m, _ = update(t, m, editor.ReloadMsg{Content: "a = 2\n"})
	if got, want := m.editor.Buffer().Text(), "a = 2\n"; got != want {
		t.Fatalf("text after reload: got %q, want %q", got, want)
	}
}
