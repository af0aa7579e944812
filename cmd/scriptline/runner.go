package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

// scriptExitedMsg reports the end of a run started with F5.
type scriptExitedMsg struct {
	Err error
}

// runner starts scripts with an external interpreter. Output goes to the
// log since the terminal belongs to the editor.
type runner struct {
	interpreter string
	args        []string
	log         *log.Logger
}

func (r runner) command(ctx context.Context, path string) *exec.Cmd {
	args := append(append([]string(nil), r.args...), path)
	return exec.CommandContext(ctx, r.interpreter, args...)
}

func (r runner) run(ctx context.Context, path string) tea.Cmd {
	return func() tea.Msg {
		var out bytes.Buffer
		cmd := r.command(ctx, path)
		cmd.Stdout = &out
		cmd.Stderr = &out
		err := cmd.Run()
		if out.Len() > 0 {
			r.log.Printf("%s output:\n%s", path, out.String())
		}
		if err != nil {
			return scriptExitedMsg{Err: fmt.Errorf("run %s: %w", path, err)}
		}
		return scriptExitedMsg{}
	}
}
