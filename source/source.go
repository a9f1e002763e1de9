// Package source supplies record collections to the filter: literal lists,
// files, generated rosters, and the built-in samples. Loading and input
// sanitization happen here; the filter itself only sees materialized
// records.
package source

import "github.com/liamcoop/sift"

// Source supplies a finite ordered record collection. Implementations
// return a fresh slice on every call so callers never observe shared
// state through a result.
type Source interface {
	Records() ([]sift.Record, error)
}

// Static serves a fixed record list.
type Static struct {
	records []sift.Record
}

// NewStatic copies records into a new static source.
func NewStatic(records []sift.Record) *Static {
	rs := make([]sift.Record, len(records))
	copy(rs, records)
	return &Static{records: rs}
}

// Records returns a copy of the record list in its original order.
func (s *Static) Records() ([]sift.Record, error) {
	rs := make([]sift.Record, len(s.records))
	copy(rs, s.records)
	return rs, nil
}
