package editor

// ScriptStateMsg reports that the script started or stopped running.
// Editing is disabled while it runs.
type ScriptStateMsg struct {
	Running bool
}

// SavedMsg reports that the host wrote the buffer to Path. A non-empty Path
// also becomes the document's backing file.
type SavedMsg struct {
	Path string
}

// ReloadMsg carries file content changed outside the editor. It is applied
// only when the buffer has no unsaved changes.
type ReloadMsg struct {
	Content string
}

// ErrorMsg surfaces a host failure on the status line.
type ErrorMsg struct {
	Err error
}
