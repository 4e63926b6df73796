// Package store persists named collections as whole JSON documents.
// Whole-collection replace is the only write primitive; each replace is
// guarded by a version counter so interleaved read-modify-write cycles from
// independent writers cannot silently drop an update.
package store

import "errors"

// ErrVersionConflict means the collection changed between Load and Replace.
// Callers retry by re-reading; Collection.Update does this automatically.
var ErrVersionConflict = errors.New("store: version conflict")

// Store maps a collection name to its serialized value plus a version.
type Store interface {
	// Load returns the raw document and its current version.
	// ok is false when the collection has never been written.
	Load(name string) (data []byte, version int64, ok bool, err error)

	// Replace overwrites the document iff the stored version still equals
	// version; the first write for a name must pass version 0. Returns
	// ErrVersionConflict otherwise. The swap is atomic: readers never see
	// a partially written document.
	Replace(name string, data []byte, version int64) error
}
