package main

import (
	"context"
	"os"

	"github.com/iw2rmb/tailpad/tailkeep"
)

// diskStorage persists documents as plain files.
type diskStorage struct{}

func (diskStorage) Read(_ context.Context, doc tailkeep.Document) (string, error) {
	data, err := os.ReadFile(doc.Path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (diskStorage) Write(_ context.Context, doc tailkeep.Document, text string) error {
	return os.WriteFile(doc.Path, []byte(text), 0o644)
}
