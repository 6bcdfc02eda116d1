// Package tailkeep keeps a configurable number of trailing blank lines at
// the end of the actively edited document, and strips them again when the
// user navigates away so persisted files stay clean.
//
// The package is pure bookkeeping over three host-provided collaborators: a
// Storage for on-disk text, a Surface for the live editing buffer, and a
// warn sink for soft failures. The Tracker ties them together: on every
// document switch it strips the previous document on storage, moves the
// tracked reference, and pads the new document's surface.
package tailkeep
