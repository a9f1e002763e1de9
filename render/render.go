// Package render formats filtered record collections for output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/liamcoop/sift"
)

// Renderer writes a record collection to an output stream.
type Renderer interface {
	Render(w io.Writer, records []sift.Record) error
}

// JSON renders records as an indented JSON array. An empty collection
// renders as [], never null.
type JSON struct{}

// NewJSON creates a JSON renderer.
func NewJSON() *JSON {
	return &JSON{}
}

// Render encodes records to w.
func (*JSON) Render(w io.Writer, records []sift.Record) error {
	if records == nil {
		records = []sift.Record{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encode records: %w", err)
	}
	return nil
}

// Table renders records as an aligned text table. The DETAIL column
// carries the variant-specific field, occupation for users and role for
// admins.
type Table struct{}

// NewTable creates a table renderer.
func NewTable() *Table {
	return &Table{}
}

// Render writes the table to w.
func (*Table) Render(w io.Writer, records []sift.Record) error {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"KIND", "NAME", "AGE", "DETAIL"})

	for _, r := range records {
		switch v := r.(type) {
		case sift.User:
			table.Append([]string{string(v.Kind()), v.Name, strconv.Itoa(v.Age), v.Occupation})
		case sift.Admin:
			table.Append([]string{string(v.Kind()), v.Name, strconv.Itoa(v.Age), v.Role})
		}
	}

	table.Render()
	return nil
}
