package editor

import (
	"io"
	"log"
	"reflect"

	"github.com/google/uuid"

	"github.com/iw2rmb/scriptline/completion"
	"github.com/iw2rmb/scriptline/document"
	"github.com/iw2rmb/scriptline/pysource"
)

const (
	defaultCompletionMaxVisibleRows = 8
	defaultCompletionMaxWidth       = 60
	defaultTabWidth                 = 4
)

// Config configures the editor Model. Zero values select defaults.
type Config struct {
	// Initial text, loaded as the clean baseline.
	Text string
	// Path of the backing file; empty for an untitled script.
	Path string

	// Source answers completion queries. Defaults to the Python catalog
	// source.
	Source completion.Source

	// Rendering options.
	ShowLineNums bool
	Style        Style
	TabWidth     int

	KeyMap           KeyMap
	CompletionKeyMap CompletionKeyMap

	CompletionMaxVisibleRows int
	CompletionMaxWidth       int

	// Untitled naming; see document.WithExtension and
	// document.WithUntitledCounter.
	UntitledExt     string
	UntitledCounter *document.UntitledCounter

	// DocID identifies the editor session in logs. Defaults to a random
	// UUID.
	DocID string

	Logger *log.Logger

	// OnCompletion observes every completion session transition.
	OnCompletion completion.Observer
}

func normalizeConfig(cfg Config) Config {
	if cfg.Source == nil {
		cfg.Source = pysource.New(pysource.DefaultCatalog())
	}
	if cfg.TabWidth <= 0 {
		cfg.TabWidth = defaultTabWidth
	}
	if reflect.DeepEqual(cfg.KeyMap, KeyMap{}) {
		cfg.KeyMap = DefaultKeyMap()
	}
	if reflect.DeepEqual(cfg.CompletionKeyMap, CompletionKeyMap{}) {
		cfg.CompletionKeyMap = DefaultCompletionKeyMap()
	}
	if cfg.CompletionMaxVisibleRows <= 0 {
		cfg.CompletionMaxVisibleRows = defaultCompletionMaxVisibleRows
	}
	if cfg.CompletionMaxWidth <= 0 {
		cfg.CompletionMaxWidth = defaultCompletionMaxWidth
	}
	if cfg.DocID == "" {
		cfg.DocID = uuid.NewString()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard, "", 0)
	}
	return cfg
}
