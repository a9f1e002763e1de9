package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/liamcoop/sift"
)

// File loads records from a JSON or YAML document on disk. The document
// is validated against the record schema before decoding, so a malformed
// file is rejected as a whole rather than producing partial records.
type File struct {
	path string
}

// NewFile creates a source reading from path. The format is chosen by
// extension: .json, .yaml, or .yml.
func NewFile(path string) *File {
	return &File{path: path}
}

// Records reads, validates, and decodes the file. Every call re-reads
// the file, so callers see edits made between calls.
func (f *File) Records() ([]sift.Record, error) {
	content, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read records file: %w", err)
	}

	data, err := normalize(f.path, content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	if err := ValidateRecords(data); err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}

	records, err := sift.UnmarshalRecords(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.path, err)
	}
	return records, nil
}

// normalize converts raw file content to a JSON document. YAML content
// is decoded and re-encoded as JSON so one schema covers both formats.
func normalize(path string, content []byte) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return content, nil
	case ".yaml", ".yml":
		var doc any
		if err := yaml.Unmarshal(content, &doc); err != nil {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
		data, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("convert yaml to json: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported records file extension %q (use .json, .yaml, or .yml)", filepath.Ext(path))
	}
}
