package source

import (
	_ "embed"
	"fmt"

	"github.com/liamcoop/sift"
)

//go:embed samples/records.json
var sampleRecordsBytes []byte

// Samples serves the embedded demo roster, so the tool works out of the
// box without an input file.
type Samples struct{}

// NewSamples creates a source backed by the embedded roster.
func NewSamples() *Samples {
	return &Samples{}
}

// Records decodes the embedded roster.
func (*Samples) Records() ([]sift.Record, error) {
	records, err := sift.UnmarshalRecords(sampleRecordsBytes)
	if err != nil {
		return nil, fmt.Errorf("decode embedded samples: %w", err)
	}
	return records, nil
}
