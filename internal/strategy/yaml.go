package strategy

import (
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	yamlID           = "YAML_ONLY"
	yamlFriendlyName = "YAML"

	// YAML is a superset of JSON and most prose is a valid YAML scalar,
	// so a structured document only earns partial confidence.
	yamlStructuredConfidence = 0.5
)

var yamlErrorLine = regexp.MustCompile(`^yaml: line (\d+): (.+)$`)

// YAMLStrategy detects YAML documents whose root is a mapping or sequence
type YAMLStrategy struct{}

// ID returns the strategy id
func (s *YAMLStrategy) ID() string {
	return yamlID
}

// ChildOf returns false, YAML is a top-level format
func (s *YAMLStrategy) ChildOf() (string, bool) {
	return "", false
}

// Family returns YAML
func (s *YAMLStrategy) Family() Family {
	return YAML
}

// Parse scores the input, reporting parser diagnostics as known errors
func (s *YAMLStrategy) Parse(input string) (rec Record) {
	// Parse must stay total
	defer func() {
		if r := recover(); r != nil {
			rec = NewRecord(0.0, yamlFriendlyName, s.Family())
		}
	}()

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil {
		return NewRecordWithErrors(0.0, yamlFriendlyName, s.Family(), yamlParseErrors(err))
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return NewRecord(0.0, yamlFriendlyName, s.Family())
	}

	switch doc.Content[0].Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		return NewRecord(yamlStructuredConfidence, yamlFriendlyName, s.Family())
	default:
		return NewRecord(0.0, yamlFriendlyName, s.Family())
	}
}

// yamlParseErrors converts a yaml.v3 error into ParseErrors.
// Messages look like "yaml: line 3: could not find expected ':'".
func yamlParseErrors(err error) []ParseError {
	var errs []ParseError
	for _, msg := range strings.Split(err.Error(), "\n") {
		msg = strings.TrimSpace(msg)
		if msg == "" {
			continue
		}

		if m := yamlErrorLine.FindStringSubmatch(msg); m != nil {
			line, _ := strconv.Atoi(m[1])
			errs = append(errs, NewParseError(m[2], line, 0))
			continue
		}
		errs = append(errs, NewParseError(strings.TrimPrefix(msg, "yaml: "), 0, 0))
	}
	return errs
}
