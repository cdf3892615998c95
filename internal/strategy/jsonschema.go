package strategy

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"github.com/tidwall/gjson"
)

const (
	jsonSchemaID           = "JSON_SCHEMA"
	jsonSchemaFriendlyName = "JSON Schema"
	jsonSchemaResource     = "schema://input.json"
)

// JSONSchemaStrategy detects self-describing JSON: documents that declare a
// $schema dialect and compile as a JSON Schema. It specialises JSONStrategy.
type JSONSchemaStrategy struct{}

// ID returns the strategy id
func (s *JSONSchemaStrategy) ID() string {
	return jsonSchemaID
}

// ChildOf returns the plain JSON strategy id
func (s *JSONSchemaStrategy) ChildOf() (string, bool) {
	return jsonID, true
}

// Family returns JSON, schemas render like any other JSON document
func (s *JSONSchemaStrategy) Family() Family {
	return JSON
}

// Parse returns full confidence when the input compiles as a schema
func (s *JSONSchemaStrategy) Parse(input string) Record {
	if s.compiles(input) {
		return NewRecord(1.0, jsonSchemaFriendlyName, s.Family())
	}
	return NewRecord(0.0, jsonSchemaFriendlyName, s.Family())
}

func (s *JSONSchemaStrategy) compiles(input string) bool {
	if !gjson.Valid(input) {
		return false
	}

	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(input))
	if err != nil {
		return false
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return false
	}
	if _, ok := obj["$schema"].(string); !ok {
		return false
	}

	// Only the built-in metaschemas are reachable; remote $schema URLs fail to load
	c := jsonschema.NewCompiler()
	if err := c.AddResource(jsonSchemaResource, doc); err != nil {
		return false
	}
	_, err = c.Compile(jsonSchemaResource)
	return err == nil
}
