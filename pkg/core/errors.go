package core

import "errors"

// Common errors.
var (
	// ErrEmptySource is returned when annotation text contains no header line.
	ErrEmptySource = errors.New("source is empty")

	// ErrNotFound is returned by id/key lookups with no matching record.
	// An empty search result is not an error.
	ErrNotFound = errors.New("not found")

	// ErrUnknownColumn is returned when a lookup names a column the header lacks.
	ErrUnknownColumn = errors.New("unknown column")
)
