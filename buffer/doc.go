// Package buffer implements the pure in-memory document model for tailpad.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open spans in document coordinates: [Start, End).
package buffer
