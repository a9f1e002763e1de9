package sift

import "errors"

// Validation failures reject the whole call before any record is examined;
// no partial result accompanies either error. Callers branch with errors.Is.
var (
	// ErrInvalidKind reports a requested variant kind outside the
	// recognized set.
	ErrInvalidKind = errors.New("invalid record kind")

	// ErrInvalidField reports a criteria key that is not a legal field of
	// the requested variant.
	ErrInvalidField = errors.New("invalid criteria field")
)
