package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/scriptline"
	"github.com/iw2rmb/scriptline/editor"
	"github.com/iw2rmb/scriptline/internal/config"
	"github.com/iw2rmb/scriptline/internal/watch"
)

func main() {
	if err := run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a TOML config file")
	showVersion := flag.Bool("version", false, "print the version and exit")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: scriptline [-config file.toml] [script.py]\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	if *showVersion {
		fmt.Println("scriptline", scriptline.VersionTag())
		return nil
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "scriptline")
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	path := flag.Arg(0)
	text := ""
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return fmt.Errorf("open script: %w", err)
		default:
			text = string(data)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := newModel(ctx, cfg, path, text, logger)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	if path != "" {
		go func() {
			w := watch.File{Path: path, Logger: logger}
			if err := w.Run(ctx, func(content string) { p.Send(editor.ReloadMsg{Content: content}) }); err != nil {
				logger.Printf("watch disabled: %v", err)
			}
		}()
	}

	_, err = p.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
