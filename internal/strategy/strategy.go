package strategy

// Family represents the format family a strategy detects
type Family int

const (
	// Unstructured is for input with no recognised structure
	Unstructured Family = iota
	// JSON is for JSON documents
	JSON
	// Base64 is for text in the standard padded Base64 alphabet
	Base64
	// YAML is for YAML documents with a mapping or sequence root
	YAML
	// Markdown is for text carrying Markdown structure
	Markdown
)

func (f Family) String() string {
	switch f {
	case Unstructured:
		return "unstructured"
	case JSON:
		return "json"
	case Base64:
		return "base64"
	case YAML:
		return "yaml"
	case Markdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler
func (f Family) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// ParseError is a structural problem a strategy found in the input
type ParseError struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
}

// NewParseError creates a new ParseError
func NewParseError(message string, line, column int) ParseError {
	return ParseError{Message: message, Line: line, Column: column}
}

// Record is one strategy's opinion about one input.
// Records are values; nothing in this module modifies one after it is built.
type Record struct {
	// Confidence is in [0, 1]. Built-in strategies other than YAML and
	// Markdown only produce 0 or 1.
	Confidence  float64      `json:"confidence"`
	DisplayName string       `json:"display_name"`
	Family      Family       `json:"family"`
	KnownErrors []ParseError `json:"known_errors"`
}

// NewRecord creates a Record with no known errors
func NewRecord(confidence float64, displayName string, family Family) Record {
	return NewRecordWithErrors(confidence, displayName, family, nil)
}

// NewRecordWithErrors creates a Record carrying structural errors
func NewRecordWithErrors(confidence float64, displayName string, family Family, errs []ParseError) Record {
	if errs == nil {
		errs = []ParseError{}
	}
	return Record{
		Confidence:  confidence,
		DisplayName: displayName,
		Family:      family,
		KnownErrors: errs,
	}
}

// Strategy detects a single data format
type Strategy interface {
	// ID returns the unique identifier for this strategy
	ID() string

	// ChildOf returns the id of the strategy this one specialises, if any
	ChildOf() (string, bool)

	// Family returns the format family used to pick a rendering path
	Family() Family

	// Parse scores the input. It must not panic for any input; a
	// non-match is a zero confidence, never an error.
	Parse(input string) Record
}
