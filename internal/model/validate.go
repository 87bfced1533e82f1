package model

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaJSON []byte

var schemaLoader = gojsonschema.NewBytesLoader(schemaJSON)

// SchemaBytes exposes the document schema, e.g. for generation prompts.
func SchemaBytes() []byte { return schemaJSON }

// ValidateMap validates a generic map against the embedded résumé schema.
func ValidateMap(m map[string]interface{}) error {
	return validate(gojsonschema.NewGoLoader(m))
}

// ValidateJSON validates raw JSON against the embedded résumé schema.
func ValidateJSON(b []byte) error {
	return validate(gojsonschema.NewBytesLoader(b))
}

// Validate checks a typed document against the schema.
func Validate(r Resume) error {
	b, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return ValidateJSON(b)
}

func validate(doc gojsonschema.JSONLoader) error {
	res, err := gojsonschema.Validate(schemaLoader, doc)
	if err != nil {
		return err
	}
	if res.Valid() {
		return nil
	}
	msgs := make([]string, 0, len(res.Errors()))
	for _, e := range res.Errors() {
		msgs = append(msgs, e.String())
	}
	return fmt.Errorf("schema validation failed: %s", strings.Join(msgs, "; "))
}
