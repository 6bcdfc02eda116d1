// Package editor provides a Bubble Tea text editor component backed by the
// buffer package.
//
// The package is responsible for input handling, viewport behavior, line
// number rendering, and change events. Hosts may also drive edits by
// mutating the buffer directly; the model picks the mutation up on the next
// Update.
package editor
