package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the input has no rows or only empty rows.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrBadThreshold indicates a negative eviction threshold.
	ErrBadThreshold = errors.New("gridgraph: eviction threshold must be non-negative")
)
