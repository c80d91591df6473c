package legislation

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const recordSchemaURL = "https://legtrack.local/schema/record.schema.json"

//go:embed schema/record.schema.json
var recordSchemaJSON []byte

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaErr      error
)

func recordSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		c := jsonschema.NewCompiler()
		c.Draft = jsonschema.Draft2020
		if err := c.AddResource(recordSchemaURL, bytes.NewReader(recordSchemaJSON)); err != nil {
			schemaErr = fmt.Errorf("load record schema: %w", err)
			return
		}
		compiledSchema, schemaErr = c.Compile(recordSchemaURL)
		if schemaErr != nil {
			schemaErr = fmt.Errorf("compile record schema: %w", schemaErr)
		}
	})
	return compiledSchema, schemaErr
}

// Validate checks every record against the record schema and reports
// duplicate ids. All problems are joined into one error; nil means the set is
// clean.
func Validate(records []Record) error {
	schema, err := recordSchema()
	if err != nil {
		return err
	}

	var errs []error
	seen := make(map[string]int, len(records))
	for i, r := range records {
		if first, dup := seen[r.ID]; dup && r.ID != "" {
			errs = append(errs, fmt.Errorf("record %d (%s): duplicate id, first seen at record %d", i, r.ID, first))
		} else {
			seen[r.ID] = i
		}

		doc, err := asDocument(r)
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d (%s): %w", i, r.ID, err))
			continue
		}
		if err := schema.Validate(doc); err != nil {
			errs = append(errs, fmt.Errorf("record %d (%s): %w", i, r.ID, err))
		}
	}
	return errors.Join(errs...)
}

// asDocument converts a record to the generic form the schema validator walks.
func asDocument(r Record) (any, error) {
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return doc, nil
}
