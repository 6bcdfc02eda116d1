package tailkeep

import (
	"context"
	"fmt"
)

// Tracker is the document-switch state machine. It remembers which document
// is active for cleanup purposes, strips the previous document on storage
// when focus moves away, and pads the newly active one.
//
// At most one document is tracked at a time, and the tracked reference is
// updated synchronously on every switch. Tracker is not safe for concurrent
// use; the host delivers all events on its single update loop.
type Tracker struct {
	storage Storage
	filter  *Filter
	target  int

	active        Document
	activeSurface Surface
}

func NewTracker(storage Storage, filter *Filter, target int) *Tracker {
	return &Tracker{
		storage: storage,
		filter:  filter,
		target:  target,
	}
}

// Active returns the currently tracked document, if any.
func (t *Tracker) Active() (Document, bool) {
	return t.active, !t.active.IsZero()
}

// Activate processes a "document became active" notification. doc may be
// the zero Document when no document is active; surface is the live editing
// surface for doc, or nil when the host does not expose one.
//
// Identity is compared by path on every event: a notification for the
// document that is already active is a content edit, not a switch, and
// mutates nothing. On a real switch the previous document is stripped
// before the tracked reference moves, and padding runs only after it has
// moved.
//
// A strip failure is returned after the tracked reference has already
// moved; the previous file just keeps its padding on disk.
func (t *Tracker) Activate(ctx context.Context, doc Document, surface Surface) error {
	if !doc.IsZero() && doc.Path == t.active.Path {
		t.activeSurface = surface
		return nil
	}

	var stripErr error
	if !t.active.IsZero() {
		stripErr = t.strip(ctx, t.active)
	}

	t.active = doc
	t.activeSurface = surface
	t.pad()
	return stripErr
}

// SetTarget updates the target trailing blank line count and immediately
// re-pads the active document, without waiting for the next switch.
func (t *Tracker) SetTarget(target int) {
	t.target = target
	t.pad()
}

// Shutdown strips the tracked document one final time and clears the
// tracker. No further transitions happen after it returns.
func (t *Tracker) Shutdown(ctx context.Context) error {
	if t.active.IsZero() {
		return nil
	}
	err := t.strip(ctx, t.active)
	t.active = Document{}
	t.activeSurface = nil
	return err
}

func (t *Tracker) pad() {
	if t.active.IsZero() || t.activeSurface == nil {
		return
	}
	if !t.filter.Eligible(t.active, t.activeSurface.Text()) {
		return
	}
	Pad(t.activeSurface, t.target)
}

// strip cleans doc on storage, writing only when the stripped text differs
// from what is already persisted.
func (t *Tracker) strip(ctx context.Context, doc Document) error {
	if !t.filter.SupportedType(doc) {
		return nil
	}

	text, err := t.storage.Read(ctx, doc)
	if err != nil {
		return fmt.Errorf("read %s: %w", doc.Path, err)
	}
	if !t.filter.Eligible(doc, text) {
		return nil
	}

	clean := Strip(text)
	if clean == text {
		return nil
	}
	if err := t.storage.Write(ctx, doc, clean); err != nil {
		return fmt.Errorf("write %s: %w", doc.Path, err)
	}
	return nil
}
