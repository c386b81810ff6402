package token

import (
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/signadot/yamled-format/go-yamled/ir"
)

// ParseScalar decodes raw scalar text with the same YAML parser that
// produces the authoritative document value, so that the aligner and
// the encoder compare like with like. Undecodable text stays a plain
// string.
func ParseScalar(s string) ir.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return ir.Null()
	}
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(s), &v, yaml.UseOrderedMap()); err != nil {
		return ir.FromString(s)
	}
	return ir.FromNative(v)
}

// ScalarEqual reports whether raw scalar text denotes the same value
// as v. This is the single equality discipline shared by alignment
// and rendering.
func ScalarEqual(raw string, v ir.Value) bool {
	return ParseScalar(raw).Equal(v)
}

// FormatScalar renders a value in the default style used when the
// original text cannot be reused: bare booleans and numbers, the
// null literal, single-quoted strings when quoting is required.
func FormatScalar(v ir.Value) string {
	switch v.Type {
	case ir.NullType, ir.NoType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.NumberType:
		if v.Int64 != nil {
			return strconv.FormatInt(*v.Int64, 10)
		}
		if v.Float64 != nil {
			s := strconv.FormatFloat(*v.Float64, 'f', -1, 64)
			if s == "0" || s == "-0" {
				s = "0.0"
			}
			return s
		}
		return "0"
	case ir.StringType:
		if NeedsQuote(v.String) {
			return Quote(v.String)
		}
		return v.String
	case ir.CompositeType:
		d, err := yaml.MarshalWithOptions(v.Composite, yaml.Flow(true))
		if err != nil {
			return Quote("")
		}
		return strings.TrimSpace(string(d))
	default:
		return ""
	}
}

// NeedsQuote reports whether a string cannot be written bare without
// changing its meaning on re-parse.
func NeedsQuote(s string) bool {
	if s == "" {
		return true
	}
	if strings.TrimSpace(s) != s {
		return true
	}
	if strings.ContainsAny(s, "\n") {
		return true
	}
	switch s[0] {
	case '#', '&', '*', '!', '|', '>', '%', '@', '`', '"', '\'', '{', '[', ',', '?':
		return true
	case '-':
		if s == "-" || strings.HasPrefix(s, "- ") {
			return true
		}
	case ':':
		return true
	}
	if strings.Contains(s, ": ") || strings.HasSuffix(s, ":") {
		return true
	}
	if strings.Contains(s, " #") {
		return true
	}
	// bare text that denotes a bool, number, null, or flow value
	v := ParseScalar(s)
	return v.Type != ir.StringType || v.String != s
}

// Quote single-quotes a string, doubling embedded quotes.
func Quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// RawKeyValue extracts the value portion of a raw `key: value` line.
func RawKeyValue(raw string) (string, bool) {
	_, rest, ok := splitKey(strings.TrimSpace(raw))
	if !ok {
		return "", false
	}
	return rest, true
}

// RawItemValue extracts the value portion of a raw `- value` line.
func RawItemValue(raw string) (string, bool) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "-" {
		return "", true
	}
	if !strings.HasPrefix(trimmed, "- ") {
		return "", false
	}
	return strings.TrimSpace(trimmed[2:]), true
}
