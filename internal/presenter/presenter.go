package presenter

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/pthm/scrutey/internal/strategy"
	"github.com/pthm/scrutey/internal/ui"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

const (
	toolName     = "Scrutey"
	nonsenseName = "nonsense"
)

// Header returns the line introducing a rendered body
func Header(name string) string {
	return headerLine(name) + "\n\n"
}

func headerLine(name string) string {
	return fmt.Sprintf("%s thinks this is %s:", toolName, name)
}

// Present renders input according to the top record without any styling.
// A nil record renders as nonsense.
func Present(input string, top *strategy.Record) string {
	return (&Presenter{}).Present(input, top)
}

// Presenter renders classified input. The zero value renders plain text.
type Presenter struct {
	// Highlight enables JSON syntax colouring and a styled header
	Highlight bool
	// Styles are used for the header when Highlight is set
	Styles *ui.Styles
}

// Present renders input according to the top record. It never fails: any
// format-specific problem falls back to the verbatim input.
func (p *Presenter) Present(input string, top *strategy.Record) string {
	if top == nil {
		return p.response(nonsenseName, input)
	}

	switch top.Family {
	case strategy.JSON:
		body, ok := prettyJSON(input)
		if !ok {
			return p.response(top.DisplayName, input)
		}
		if p.Highlight {
			body = string(pretty.Color([]byte(body), nil))
		}
		return p.response(top.DisplayName, body)
	case strategy.Base64:
		return p.response(top.DisplayName, decodeBase64(input))
	case strategy.YAML:
		return p.response(top.DisplayName, reindentYAML(input))
	case strategy.Markdown:
		return p.response(top.DisplayName, input)
	default:
		return p.response(nonsenseName, input)
	}
}

func (p *Presenter) response(name, body string) string {
	if p.Highlight && p.Styles != nil {
		return p.Styles.Header.Render(headerLine(name)) + "\n\n" + body
	}
	return Header(name) + body
}

// prettyJSON re-indents a JSON document with two spaces and sorted keys,
// keeping number literals as written
func prettyJSON(input string) (string, bool) {
	dec := json.NewDecoder(strings.NewReader(input))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	if _, err := dec.Token(); err != io.EOF {
		return "", false
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return "", false
	}
	return strings.TrimSuffix(buf.String(), "\n"), true
}

// decodeBase64 decodes standard padded Base64, replacing invalid UTF-8.
// Undecodable input is returned as is.
func decodeBase64(input string) string {
	decoded, err := base64.StdEncoding.DecodeString(strings.TrimSpace(input))
	if err != nil {
		return input
	}
	return lossyUTF8(decoded)
}

// lossyUTF8 converts b to a string, writing one U+FFFD for each maximal
// invalid subpart. A truncated multi-byte sequence counts as one subpart.
func lossyUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}

	var sb strings.Builder
	sb.Grow(len(b) + 8)
	for len(b) > 0 {
		r, size := utf8.DecodeRune(b)
		if r == utf8.RuneError && size <= 1 {
			sb.WriteRune(utf8.RuneError)
			b = b[invalidPrefixLen(b):]
			continue
		}
		sb.Write(b[:size])
		b = b[size:]
	}
	return sb.String()
}

// invalidPrefixLen returns how many bytes of the invalid sequence at the
// start of b belong together: the lead byte plus every continuation byte
// that is still allowed after it.
func invalidPrefixLen(b []byte) int {
	lo, hi := byte(0x80), byte(0xBF)
	var need int
	switch lead := b[0]; {
	case lead >= 0xC2 && lead <= 0xDF:
		need = 1
	case lead == 0xE0:
		need, lo = 2, 0xA0
	case lead == 0xED:
		need, hi = 2, 0x9F
	case lead >= 0xE1 && lead <= 0xEF:
		need = 2
	case lead == 0xF0:
		need, lo = 3, 0x90
	case lead == 0xF4:
		need, hi = 3, 0x8F
	case lead >= 0xF1 && lead <= 0xF3:
		need = 3
	default:
		return 1
	}

	n := 1
	for n <= need && n < len(b) {
		if c := b[n]; c < lo || c > hi {
			break
		}
		lo, hi = 0x80, 0xBF
		n++
	}
	return n
}

// reindentYAML re-encodes a YAML document with two-space indentation,
// keeping comments. Unparseable input is returned as is.
func reindentYAML(input string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = input
		}
	}()

	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(input), &doc); err != nil || doc.Kind == 0 {
		return input
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return input
	}
	if err := enc.Close(); err != nil {
		return input
	}
	return strings.TrimSuffix(buf.String(), "\n")
}
