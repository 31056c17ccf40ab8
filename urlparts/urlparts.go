// Package urlparts joins an encoded base URL with an encoded query string
// and splits a full URL back into its base and decoded parameters.
//
// Neither direction fails outright: a part that cannot be encoded or decoded
// degrades to empty and, when a logger is configured, a warning is emitted.
package urlparts

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/dedene/urlcoder/querystring"
)

// Options configures assembly and splitting.
type Options struct {
	Query            querystring.Options
	AutoQuestionMark bool
	// Logger receives diagnostics for degraded parts. Nil disables them.
	Logger *slog.Logger
}

func (o Options) warn(msg string, args ...any) {
	if o.Logger != nil {
		o.Logger.Warn(msg, args...)
	}
}

// ErrNoScheme is reported when a URL to split has no scheme, as in the
// protocol-relative "//host/path". Such URLs carry no query.
var ErrNoScheme = errors.New("URL has no scheme")

// DecodedURL is a URL split into its base and ordered parameters.
type DecodedURL struct {
	BaseURL string             `json:"baseURL" yaml:"baseURL"`
	Query   querystring.Params `json:"queryString" yaml:"queryString"`
}

// Assemble encodes baseURL and params and joins them. The query string is
// only attached when both parts are non-empty; otherwise the encoded base is
// returned alone.
func Assemble(baseURL string, params querystring.Params, opts Options) string {
	base := ""
	if baseURL != "" {
		encoded, err := EncodeURI(baseURL)
		if err != nil {
			opts.warn("encoding base URL", "error", err)
		} else {
			base = encoded
		}
	}

	query, err := querystring.Encode(params, opts.Query)
	if err != nil {
		opts.warn("encoding query string", "error", err)
		query = ""
	}

	if base == "" || query == "" {
		return base
	}

	if opts.AutoQuestionMark {
		return base + "?" + query
	}

	return base + query
}

// Split separates rawURL into its base (everything before the first '?',
// URI-decoded) and its decoded query parameters. The query runs from the
// first '?' up to the fragment; a '?' inside the fragment does not start one.
func Split(rawURL string, opts Options) DecodedURL {
	out := DecodedURL{Query: querystring.Params{}}
	if rawURL == "" {
		return out
	}

	if decoded, err := DecodeURI(rawURL); err != nil {
		opts.warn("decoding base URL", "error", err)
	} else {
		out.BaseURL, _, _ = strings.Cut(decoded, "?")
	}

	query, err := rawQuery(rawURL)
	if err != nil {
		opts.warn("extracting query string", "error", err)

		return out
	}

	params, err := querystring.Decode(query)
	if err != nil {
		opts.warn("decoding query string", "error", err)

		return out
	}

	out.Query = params

	return out
}

// rawQuery returns the still-encoded query of rawURL, or "" when it has
// none. Only absolute URLs have a query.
func rawQuery(rawURL string) (string, error) {
	if !hasScheme(rawURL) {
		return "", ErrNoScheme
	}

	rest, _, _ := strings.Cut(rawURL, "#")
	_, query, _ := strings.Cut(rest, "?")

	return query, nil
}

// hasScheme reports whether s starts with ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) ":".
func hasScheme(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		case i > 0 && c == ':':
			return true
		default:
			return false
		}
	}

	return false
}
