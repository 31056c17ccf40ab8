package urlcoder

import (
	"slices"

	"github.com/dedene/urlcoder/querystring"
)

// DefaultURLPattern matches absolute http, https and ftp URLs with a domain
// name or a public IPv4 address, an optional port and an optional
// path/query/fragment tail. Private and loopback IPv4 ranges are rejected.
//
// The pattern uses lookaheads and \u escapes and is evaluated with regexp2.
const DefaultURLPattern = `^(?:(?:(?:https?|ftp):)?\/\/)(?:\S+(?::\S*)?@)?(?:(?!(?:10|127)(?:\.\d{1,3}){3})(?!(?:169\.254|192\.168)` +
	`(?:\.\d{1,3}){2})(?!172\.(?:1[6-9]|2\d|3[0-1])(?:\.\d{1,3}){2})(?:[1-9]\d?|1\d\d|2[01]\d|22[0-3])` +
	`(?:\.(?:1?\d{1,2}|2[0-4]\d|25[0-5])){2}(?:\.(?:[1-9]\d?|1\d\d|2[0-4]\d|25[0-4]))|(?:(?:[a-z0-9\u00a1-\uffff][a-z0-9\u00a1-\uffff_-]{0,62}` +
	`)?[a-z0-9\u00a1-\uffff]\.)+(?:[a-z\u00a1-\uffff]{2,}\.?))(?::\d{2,5})?(?:[/?#]\S*)?$`

// DefaultParamKeyPattern accepts alphanumeric keys (including the empty key).
const DefaultParamKeyPattern = `^[a-zA-Z0-9]*$`

// DefaultReservedChars returns the substrings a base URL must not contain.
func DefaultReservedChars() []string {
	return []string{"&", "=", "?", "+"}
}

// Config is the encoding and validation policy applied to a call.
type Config struct {
	// Standard selects whether ! ' ( ) * are escaped in values.
	Standard querystring.Standard
	// Space selects %20 or '+' for spaces in values.
	Space querystring.SpaceEncoding
	// AutoQuestionMark inserts '?' between the base URL and the query.
	AutoQuestionMark bool
	// URLPattern validates the base URL on encode and the full URL on decode.
	URLPattern string
	// ReservedChars lists literal substrings rejected in a base URL.
	ReservedChars []string
	// ParamKeyPattern must match at least one parameter key on encode.
	ParamKeyPattern string
	// Debug logs a warning through slog for every rejected call and every
	// degraded part.
	Debug bool
}

// DefaultConfig returns the default policy: RFC 3986 escaping, %20 spaces,
// automatic '?', DefaultURLPattern, DefaultReservedChars and
// DefaultParamKeyPattern. Debug is off.
func DefaultConfig() Config {
	return Config{
		Standard:         querystring.RFC3986,
		Space:            querystring.Percent20,
		AutoQuestionMark: true,
		URLPattern:       DefaultURLPattern,
		ReservedChars:    DefaultReservedChars(),
		ParamKeyPattern:  DefaultParamKeyPattern,
	}
}

// Option overrides a single Config field.
type Option func(*Config)

// With returns a copy of cfg with opts applied. cfg is not modified.
func (cfg Config) With(opts ...Option) Config {
	out := cfg
	out.ReservedChars = slices.Clone(cfg.ReservedChars)

	for _, opt := range opts {
		opt(&out)
	}

	return out
}

// WithStandard sets the value escaping standard.
func WithStandard(s querystring.Standard) Option {
	return func(c *Config) { c.Standard = s }
}

// WithSpaceEncoding sets how spaces are rendered.
func WithSpaceEncoding(s querystring.SpaceEncoding) Option {
	return func(c *Config) { c.Space = s }
}

// WithAutoQuestionMark toggles the '?' separator.
func WithAutoQuestionMark(on bool) Option {
	return func(c *Config) { c.AutoQuestionMark = on }
}

// WithURLPattern replaces the URL validation pattern.
func WithURLPattern(pattern string) Option {
	return func(c *Config) { c.URLPattern = pattern }
}

// WithReservedChars replaces the reserved substrings.
func WithReservedChars(chars ...string) Option {
	return func(c *Config) { c.ReservedChars = slices.Clone(chars) }
}

// WithParamKeyPattern replaces the parameter key pattern.
func WithParamKeyPattern(pattern string) Option {
	return func(c *Config) { c.ParamKeyPattern = pattern }
}

// WithDebug toggles diagnostic logging.
func WithDebug(on bool) Option {
	return func(c *Config) { c.Debug = on }
}

func (cfg Config) queryOptions() querystring.Options {
	return querystring.Options{Standard: cfg.Standard, Space: cfg.Space}
}
