package tailkeep

import (
	"context"
	"path/filepath"
	"strings"
)

// Document identifies a file the host has open. The zero value means "no
// document".
type Document struct {
	Path string
}

func (d Document) IsZero() bool { return d.Path == "" }

// Ext returns the document's lowercased extension, including the dot.
func (d Document) Ext() string { return strings.ToLower(filepath.Ext(d.Path)) }

// Surface is the live editing surface the host exposes for the active
// document. InsertAt must insert in place rather than replacing the whole
// buffer, so cursor position and undo history survive padding.
type Surface interface {
	Text() string
	LineCount() int
	InsertAt(row, col int, text string)
}

// Storage owns a document's persisted text.
type Storage interface {
	Read(ctx context.Context, doc Document) (string, error)
	Write(ctx context.Context, doc Document, text string) error
}

// WarnFunc receives warning-level messages for soft failures.
type WarnFunc func(format string, args ...any)
