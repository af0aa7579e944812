// Package watch reports external changes to a single file.
package watch

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultDebounce = 75 * time.Millisecond

// File watches Path. The parent directory is watched so that editors that
// save through a rename are still seen.
type File struct {
	Path     string
	Debounce time.Duration
	Logger   *log.Logger
}

// Run calls onChange with the file content after each burst of changes,
// until ctx is done. It fails only if the watch cannot be set up.
func (f File) Run(ctx context.Context, onChange func(content string)) error {
	logger := f.Logger
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	debounce := f.Debounce
	if debounce <= 0 {
		debounce = defaultDebounce
	}
	path, err := filepath.Abs(f.Path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", f.Path, err)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()
	if err := w.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			timer.Reset(debounce)
		case <-timer.C:
			data, err := os.ReadFile(path)
			if err != nil {
				logger.Printf("[watch] read %s: %v", path, err)
				continue
			}
			onChange(string(data))
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Printf("[watch] error: %v", err)
		}
	}
}
