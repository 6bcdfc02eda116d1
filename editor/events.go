package editor

import "github.com/iw2rmb/tailpad/buffer"

// ChangeEvent describes a text mutation observed by the editor.
type ChangeEvent struct {
	TextVersion uint64
	Cursor      buffer.Pos

	// Simplest payload; hosts can diff if they need to.
	Text string
}

func buildChangeEvent(b *buffer.Buffer) ChangeEvent {
	return ChangeEvent{
		TextVersion: b.TextVersion(),
		Cursor:      b.Cursor(),
		Text:        b.Text(),
	}
}
