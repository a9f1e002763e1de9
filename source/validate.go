package source

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/records.schema.json
var recordSchemaBytes []byte

const recordSchemaURL = "https://github.com/liamcoop/sift/source/schema/records.schema.json"

var (
	recordSchemaOnce sync.Once
	recordSchema     *jsonschema.Schema
	recordSchemaErr  error
)

// RecordSchema returns the JSON Schema document that records files are
// validated against.
func RecordSchema() []byte {
	return recordSchemaBytes
}

func compiledRecordSchema() (*jsonschema.Schema, error) {
	recordSchemaOnce.Do(func() {
		var doc any
		if err := json.Unmarshal(recordSchemaBytes, &doc); err != nil {
			recordSchemaErr = fmt.Errorf("parse embedded record schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(recordSchemaURL, doc); err != nil {
			recordSchemaErr = fmt.Errorf("add record schema resource: %w", err)
			return
		}

		recordSchema, recordSchemaErr = compiler.Compile(recordSchemaURL)
	})
	return recordSchema, recordSchemaErr
}

// ValidateRecords checks a JSON records document against the record
// schema. The document must be an array of record objects; any violation
// rejects the whole document.
func ValidateRecords(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("parse records document: %w", err)
	}

	schema, err := compiledRecordSchema()
	if err != nil {
		return err
	}

	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("records document does not match the record schema: %w", err)
	}
	return nil
}
