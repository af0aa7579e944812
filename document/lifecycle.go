package document

// ScriptStateChanged reports that the script started or stopped running.
type ScriptStateChanged struct {
	Running bool
}

// HandleScriptState disables editing while a script runs.
func (d *Document) HandleScriptState(ev ScriptStateChanged) {
	d.enabled = !ev.Running
}

// Enabled reports whether the host should accept edits.
func (d *Document) Enabled() bool { return d.enabled }
