package strategy

import (
	"regexp"
	"strings"
)

const (
	base64ID           = "B64_ONLY"
	base64FriendlyName = "Base64"
)

var base64Pattern = regexp.MustCompile(`^([A-Za-z0-9+/]{4})*([A-Za-z0-9+/]{4}|[A-Za-z0-9+/]{3}=|[A-Za-z0-9+/]{2}==)$`)

// Base64Strategy detects text shaped like standard padded Base64.
// The check is lexical only, the bytes are never decoded.
type Base64Strategy struct{}

// ID returns the strategy id
func (s *Base64Strategy) ID() string {
	return base64ID
}

// ChildOf returns false, Base64 is a top-level format
func (s *Base64Strategy) ChildOf() (string, bool) {
	return "", false
}

// Family returns Base64
func (s *Base64Strategy) Family() Family {
	return Base64
}

// Parse returns full confidence when the trimmed input matches the alphabet grammar
func (s *Base64Strategy) Parse(input string) Record {
	if base64Pattern.MatchString(strings.TrimSpace(input)) {
		return NewRecord(1.0, base64FriendlyName, s.Family())
	}
	return NewRecord(0.0, base64FriendlyName, s.Family())
}
