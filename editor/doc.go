// Package editor provides a Bubble Tea script editor component that hosts
// the completion engine.
//
// The model routes keystrokes through the completion controller before and
// after they reach the buffer, renders the popup next to the replace range
// and keeps the document's dirty state in step with the buffer.
package editor
