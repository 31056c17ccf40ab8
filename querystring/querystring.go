// Package querystring encodes ordered key/value parameter lists into query
// strings and decodes them back.
//
// Values are escaped like JavaScript's encodeURIComponent, optionally
// tightened to RFC 3986 and optionally rendering spaces as '+'. The escaping
// order is significant: space substitution happens strictly after
// percent-encoding, so a literal '+' in a value is always sent as %2B.
package querystring

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dedene/urlcoder/internal/pctenc"
)

// ErrMalformedValue is returned when a value is not valid UTF-8 and cannot be
// percent-encoded.
var ErrMalformedValue = errors.New("malformed parameter value")

// ErrMalformedEscape is returned when a query string holds an invalid
// percent-escape.
var ErrMalformedEscape = errors.New("malformed percent-escape")

// Standard selects which characters are escaped in parameter values.
type Standard int

const (
	// RFC3986 additionally escapes ! ' ( ) * which are sub-delimiters.
	RFC3986 Standard = iota
	// Legacy leaves ! ' ( ) * untouched, like encodeURIComponent.
	Legacy
)

// SpaceEncoding selects how an encoded space is rendered.
type SpaceEncoding int

const (
	// Percent20 renders spaces as %20.
	Percent20 SpaceEncoding = iota
	// Plus renders spaces as '+' (application/x-www-form-urlencoded).
	Plus
)

// Options controls value encoding.
type Options struct {
	Standard Standard
	Space    SpaceEncoding
}

// Param is a single key/value pair.
type Param struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// Params is an ordered parameter list. Keys need not be unique.
type Params []Param

// componentSafe reports whether encodeURIComponent leaves b unescaped.
func componentSafe(b byte) bool {
	if pctenc.Alnum(b) {
		return true
	}

	switch b {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}

	return false
}

// EscapeComponent percent-encodes s the way encodeURIComponent does.
func EscapeComponent(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: %q", ErrMalformedValue, s)
	}

	return pctenc.Escape(s, componentSafe), nil
}

// strictReplacer applies the RFC 3986 extra escapes. The hex is lower-case.
var strictReplacer = strings.NewReplacer(
	"!", "%21",
	"'", "%27",
	"(", "%28",
	")", "%29",
	"*", "%2a",
)

// EncodeValue percent-encodes a single parameter value.
//
// The order matters:
//  1. Component escaping (encodeURIComponent rules).
//  2. RFC 3986 sub-delimiters, when opts.Standard is RFC3986.
//  3. %20 becomes '+', when opts.Space is Plus.
func EncodeValue(value string, opts Options) (string, error) {
	encoded, err := EscapeComponent(value)
	if err != nil {
		return "", err
	}

	if opts.Standard == RFC3986 {
		encoded = strictReplacer.Replace(encoded)
	}

	if opts.Space == Plus {
		encoded = strings.ReplaceAll(encoded, "%20", "+")
	}

	return encoded, nil
}

// Encode renders params as key=value pairs joined with '&', in order.
// Keys are written verbatim; only values are escaped.
func Encode(params Params, opts Options) (string, error) {
	parts := make([]string, 0, len(params))

	for _, p := range params {
		v, err := EncodeValue(p.Value, opts)
		if err != nil {
			return "", fmt.Errorf("encoding value of %q: %w", p.Key, err)
		}

		parts = append(parts, p.Key+"="+v)
	}

	return strings.Join(parts, "&"), nil
}

// Decode parses a raw query string (without the leading '?') into an
// ordered parameter list.
//
// Empty segments are skipped and pairs whose key and value are both empty
// are dropped. In values '+' means space; '+' in keys is kept literally.
func Decode(query string) (Params, error) {
	params := Params{}

	for _, segment := range strings.Split(query, "&") {
		if segment == "" {
			continue
		}

		rawKey, rawValue, _ := strings.Cut(segment, "=")
		if rawKey == "" && rawValue == "" {
			continue
		}

		key, err := Unescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("decoding key in %q: %w", segment, err)
		}

		value, err := Unescape(strings.ReplaceAll(rawValue, "+", " "))
		if err != nil {
			return nil, fmt.Errorf("decoding value in %q: %w", segment, err)
		}

		params = append(params, Param{Key: key, Value: value})
	}

	return params, nil
}

// Unescape reverses percent-encoding. Hex digits may be either case; '+' is
// left alone. The result must be valid UTF-8.
func Unescape(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	out := make([]byte, 0, len(s))

	for i := 0; i < len(s); i++ {
		if s[i] != '%' {
			out = append(out, s[i])
			continue
		}

		c, ok := pctenc.HexByte(s, i)
		if !ok {
			return "", fmt.Errorf("%w at offset %d", ErrMalformedEscape, i)
		}

		out = append(out, c)
		i += 2
	}

	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: invalid UTF-8 sequence", ErrMalformedEscape)
	}

	return string(out), nil
}
