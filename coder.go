// Package urlcoder builds URLs from a base URL and an ordered parameter list
// and splits URLs back into those parts, under a configurable encoding and
// validation policy.
//
// Every Encode call is gated by three checks: the base URL must match
// Config.URLPattern, must not contain any of Config.ReservedChars, and at
// least one parameter key must match Config.ParamKeyPattern. Decode only
// checks the URL pattern.
//
//	u, err := urlcoder.Encode(urlcoder.DefaultConfig(), "https://www.google.com/search",
//		urlcoder.Params{{Key: "q", Value: "lisandro francesco"}})
//	// u == "https://www.google.com/search?q=lisandro%20francesco"
package urlcoder

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dedene/urlcoder/querystring"
	"github.com/dedene/urlcoder/urlparts"
)

type (
	// Param is a single key/value pair.
	Param = querystring.Param
	// Params is an ordered parameter list.
	Params = querystring.Params
	// DecodedURL is the result of Decode.
	DecodedURL = urlparts.DecodedURL
)

// Encode validates baseURL and params against cfg and returns the assembled
// URL.
//
// The key check passes when any key matches, not all of them: a list mixing
// valid and invalid keys is accepted, an empty list is rejected.
func Encode(cfg Config, baseURL string, params Params) (string, error) {
	if err := validateBase(cfg, baseURL); err != nil {
		return "", cfg.reject("rejected base URL", err, "url", baseURL)
	}

	if err := validateKeys(cfg, params); err != nil {
		return "", cfg.reject("rejected parameter keys", err, "count", len(params))
	}

	return urlparts.Assemble(baseURL, params, cfg.partsOptions()), nil
}

// Decode validates rawURL against cfg and splits it into its base URL and
// parameters. Parts that cannot be decoded come back empty.
func Decode(cfg Config, rawURL string) (*DecodedURL, error) {
	ok, err := matches(cfg.URLPattern, rawURL)
	if err != nil {
		return nil, cfg.reject("rejected URL", err, "url", rawURL)
	}

	if !ok {
		return nil, cfg.reject("rejected URL", ErrInvalidURL, "url", rawURL)
	}

	out := urlparts.Split(rawURL, cfg.partsOptions())

	return &out, nil
}

func validateBase(cfg Config, baseURL string) error {
	ok, err := matches(cfg.URLPattern, baseURL)
	if err != nil {
		return err
	}

	if !ok {
		return ErrInvalidURL
	}

	for _, c := range cfg.ReservedChars {
		if strings.Contains(baseURL, c) {
			return fmt.Errorf("%w: %q", ErrReservedChars, c)
		}
	}

	return nil
}

func validateKeys(cfg Config, params Params) error {
	re, err := CompilePattern(cfg.ParamKeyPattern)
	if err != nil {
		return err
	}

	for _, p := range params {
		ok, err := re.MatchString(p.Key)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrPatternTimeout, err)
		}

		if ok {
			return nil
		}
	}

	return ErrInvalidParamKeys
}

// reject logs err when debugging is enabled and returns it unchanged.
func (cfg Config) reject(msg string, err error, args ...any) error {
	if cfg.Debug {
		slog.Warn(msg, append(args, "error", err)...)
	}

	return err
}

func (cfg Config) partsOptions() urlparts.Options {
	opts := urlparts.Options{
		Query:            cfg.queryOptions(),
		AutoQuestionMark: cfg.AutoQuestionMark,
	}

	if cfg.Debug {
		opts.Logger = slog.Default()
	}

	return opts
}

// Coder applies a mutable Config to successive calls.
//
// Config may be read and written directly between calls. A Coder is not
// safe for concurrent use while its Config is being changed; share a Config
// value with the package-level functions instead.
type Coder struct {
	Config Config
}

// New returns a Coder with DefaultConfig overridden by opts.
func New(opts ...Option) *Coder {
	return &Coder{Config: DefaultConfig().With(opts...)}
}

// Encode is Encode with the Coder's current Config.
func (c *Coder) Encode(baseURL string, params Params) (string, error) {
	return Encode(c.Config, baseURL, params)
}

// Decode is Decode with the Coder's current Config.
func (c *Coder) Decode(rawURL string) (*DecodedURL, error) {
	return Decode(c.Config, rawURL)
}

// Reset restores DefaultConfig. The Debug flag is kept as is.
func (c *Coder) Reset() {
	debug := c.Config.Debug
	c.Config = DefaultConfig()
	c.Config.Debug = debug
}
