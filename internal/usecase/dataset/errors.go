// Package dataset implements the entity normalization pipeline: it loads the
// line-delimited JSON dataset, normalizes every record into the canonical
// entity shape, and exposes the resulting in-memory collection.
package dataset

import "errors"

// Sentinel errors for dataset operations.
var (
	// ErrDatasetUnavailable indicates the dataset file could not be opened
	// or fully read. Incomplete loads carry it so they are never cached;
	// LoadAll callers still receive an empty collection, degrading the
	// single request rather than the process.
	ErrDatasetUnavailable = errors.New("dataset unavailable")

	// ErrDocumentNotFound indicates no document with the requested
	// reference exists anywhere in the loaded collection.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrEntityNotFound indicates no entity matched the requested slug.
	ErrEntityNotFound = errors.New("entity not found")
)
