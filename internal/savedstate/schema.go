package savedstate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const schemaURL = "wellness-state.schema.json"

// bundleSchema describes the on-disk bundle. Values are non-negative integers
// keyed by dotted identifiers.
const bundleSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["schema_version", "values"],
  "additionalProperties": false,
  "properties": {
    "schema_version": {"const": 1},
    "saved_at": {"type": "string", "format": "date-time"},
    "values": {
      "type": "object",
      "propertyNames": {"pattern": "^[a-z][a-z0-9_]*(\\.[a-z][a-z0-9_]*)*$"},
      "additionalProperties": {"type": "integer", "minimum": 0}
    }
  }
}`

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

func schema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020
		compiler.AssertFormat = true
		if err := compiler.AddResource(schemaURL, strings.NewReader(bundleSchema)); err != nil {
			compileErr = fmt.Errorf("add bundle schema: %w", err)
			return
		}
		compiledSchema, compileErr = compiler.Compile(schemaURL)
	})
	return compiledSchema, compileErr
}

// Validate checks a bundle against the bundle schema.
// The first schema violation is returned as a *ValidationError.
func Validate(b *Bundle) error {
	if b == nil {
		return &ValidationError{Err: errors.New("bundle is nil")}
	}
	data, err := json.Marshal(b)
	if err != nil {
		return fmt.Errorf("marshal bundle for validation: %w", err)
	}
	return validateRaw(data)
}

// validateRaw validates raw JSON bytes against the schema.
func validateRaw(data []byte) error {
	s, err := schema()
	if err != nil {
		return err
	}
	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ValidationError{Err: fmt.Errorf("parse bundle: %w", err)}
	}
	if err := s.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return firstCause(ve)
		}
		return err
	}
	return nil
}

func firstCause(ve *jsonschema.ValidationError) error {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return &ValidationError{
		Path: jsonPointerToPath(ve.InstanceLocation),
		Err:  errors.New(ve.Message),
	}
}

// jsonPointerToPath converts "/values/water_counter.count" to
// "values.water_counter.count" and "/a/0" to "a[0]".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
