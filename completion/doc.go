// Package completion decides when a completion popup opens or closes,
// builds the candidate list for the caret context and applies an accepted
// candidate back into the text.
//
// The package owns no visual state. Hosts feed it text and caret offsets,
// observe Snapshot transitions and call Commit when the user accepts.
package completion
