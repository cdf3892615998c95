package strategy

import (
	"github.com/tidwall/gjson"
)

const (
	jsonID           = "JSON_ONLY"
	jsonFriendlyName = "JSON"
)

// JSONStrategy detects complete JSON documents
type JSONStrategy struct{}

// ID returns the strategy id
func (s *JSONStrategy) ID() string {
	return jsonID
}

// ChildOf returns false, JSON is a top-level format
func (s *JSONStrategy) ChildOf() (string, bool) {
	return "", false
}

// Family returns JSON
func (s *JSONStrategy) Family() Family {
	return JSON
}

// Parse returns full confidence when the whole input is valid JSON
func (s *JSONStrategy) Parse(input string) Record {
	if gjson.Valid(input) {
		return NewRecord(1.0, jsonFriendlyName, s.Family())
	}
	return NewRecord(0.0, jsonFriendlyName, s.Family())
}
