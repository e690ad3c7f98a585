package intervals

import "errors"

var (
	// ErrInvertedRange indicates an interval whose low bound exceeds its high bound.
	ErrInvertedRange = errors.New("intervals: low bound exceeds high bound")
	// ErrBadToken indicates text that does not parse as "<low>-<high>".
	ErrBadToken = errors.New("intervals: malformed interval token")
)
