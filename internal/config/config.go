// Package config loads the scriptline program configuration from TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	Editor Editor `toml:"editor"`
	Runner Runner `toml:"runner"`
	Log    Log    `toml:"log"`
}

type Editor struct {
	ShowLineNumbers    bool `toml:"show_line_numbers"`
	TabWidth           int  `toml:"tab_width"`
	CompletionMaxRows  int  `toml:"completion_max_rows"`
	CompletionMaxWidth int  `toml:"completion_max_width"`
}

// Runner is the command F5 starts; the script path is appended to Args.
type Runner struct {
	Interpreter string   `toml:"interpreter"`
	Args        []string `toml:"args"`
}

type Log struct {
	// File receives debug logs. Empty disables logging.
	File string `toml:"file"`
}

func Default() Config {
	return Config{
		Editor: Editor{
			ShowLineNumbers:    true,
			TabWidth:           4,
			CompletionMaxRows:  8,
			CompletionMaxWidth: 60,
		},
		Runner: Runner{Interpreter: "python3"},
	}
}

// ParseError represents a TOML decode failure.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse config %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads path over the defaults. An empty path or a missing file gives
// the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, path, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Decode unmarshals data into cfg. Keys missing from data keep the values
// already in cfg.
func Decode(data []byte, path string, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		var decodeErr *toml.DecodeError
		if errors.As(err, &decodeErr) {
			return &ParseError{Path: path, Err: decodeErr}
		}
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	cfg.Runner.Interpreter = strings.TrimSpace(cfg.Runner.Interpreter)
	cfg.Log.File = strings.TrimSpace(cfg.Log.File)
	return nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var result *multierror.Error
	if c.Editor.TabWidth < 1 || c.Editor.TabWidth > 16 {
		result = multierror.Append(result, fmt.Errorf("editor.tab_width: %d out of range [1, 16]", c.Editor.TabWidth))
	}
	if c.Editor.CompletionMaxRows < 1 {
		result = multierror.Append(result, fmt.Errorf("editor.completion_max_rows: must be positive, got %d", c.Editor.CompletionMaxRows))
	}
	if c.Editor.CompletionMaxWidth < 8 {
		result = multierror.Append(result, fmt.Errorf("editor.completion_max_width: must be at least 8, got %d", c.Editor.CompletionMaxWidth))
	}
	if c.Runner.Interpreter == "" {
		result = multierror.Append(result, errors.New("runner.interpreter: must not be empty"))
	}
	return result.ErrorOrNil()
}
