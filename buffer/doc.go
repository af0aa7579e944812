// Package buffer implements the script text model observed by the completion
// engine.
//
// Offsets are 0-based and counted in runes. The caret always satisfies
// 0 <= caret <= Len(). Text only changes through Replace (and the helpers
// built on it) or through SetText for external reloads.
package buffer
