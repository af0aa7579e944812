package document

import (
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

const defaultExtension = ".py"

// Document is the host-side identity and dirty state of one script.
type Document struct {
	path    string
	content string
	// baseline is the content hash at the last load or save.
	baseline uint64

	ext        string
	counter    *UntitledCounter
	untitledID int
	hasID      bool

	enabled bool
}

type Option func(*Document)

// WithUntitledCounter replaces DefaultUntitledCounter.
func WithUntitledCounter(c *UntitledCounter) Option {
	return func(d *Document) {
		if c != nil {
			d.counter = c
		}
	}
}

// WithExtension sets the extension of untitled names (default ".py").
func WithExtension(ext string) Option {
	return func(d *Document) {
		if ext != "" {
			d.ext = ext
		}
	}
}

// New creates a document for path. An empty path makes an untitled document
// and consumes the next untitled number immediately.
func New(path string, opts ...Option) *Document {
	d := &Document{
		path:     path,
		ext:      defaultExtension,
		counter:  DefaultUntitledCounter,
		enabled:  true,
		baseline: hash(""),
	}
	for _, opt := range opts {
		opt(d)
	}
	if path == "" {
		d.assignUntitledID()
	}
	return d
}

// LoadFileContent replaces the content and makes it the clean baseline.
func (d *Document) LoadFileContent(content string) {
	d.content = content
	d.resetDirty()
}

// SetContent records the current buffer text.
func (d *Document) SetContent(content string) { d.content = content }

func (d *Document) Content() string { return d.content }

// Saved makes the current content the clean baseline.
func (d *Document) Saved() { d.resetDirty() }

// IsDirty reports unsaved changes. Empty content is always dirty, so blank
// buffers are always offered for saving.
func (d *Document) IsDirty() bool {
	return d.content == "" || hash(d.content) != d.baseline
}

func (d *Document) resetDirty() {
	d.baseline = hash(d.content)
}

func (d *Document) FilePath() string { return d.path }

// SetFilePath attaches (or detaches) a backing file. An untitled number,
// once assigned, stays with the document.
func (d *Document) SetFilePath(path string) { d.path = path }

// IsFileContent is always true: scripts are file-backed content.
func (d *Document) IsFileContent() bool { return true }

// Filename is the base name of the backing file, or "Untitled<ext>" with a
// "-N" suffix for every untitled document after the first. A document
// created with a path takes its untitled number from the counter on the
// first call made after the path is cleared.
func (d *Document) Filename() string {
	if d.path != "" {
		return filepath.Base(d.path)
	}
	id := d.assignUntitledID()
	if id > 0 {
		return fmt.Sprintf("Untitled-%d%s", id, d.ext)
	}
	return "Untitled" + d.ext
}

func (d *Document) Title() string { return d.Filename() }

func (d *Document) ToolTip() string {
	if d.path != "" {
		return d.path
	}
	return d.Filename()
}

// ContentID identifies the document for deduplicating open sessions.
func (d *Document) ContentID() string {
	if d.path != "" {
		return d.path
	}
	return d.Filename()
}

func (d *Document) assignUntitledID() int {
	if !d.hasID {
		d.untitledID = d.counter.Next()
		d.hasID = true
	}
	return d.untitledID
}

func hash(s string) uint64 { return xxhash.Sum64String(s) }
