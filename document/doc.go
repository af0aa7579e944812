// Package document tracks whether a script buffer has unsaved changes and
// derives the names a host shows for it.
package document
