package cmd

import (
	"context"
	"fmt"

	"github.com/dedene/urlcoder"
	"github.com/dedene/urlcoder/internal/config"
	"github.com/dedene/urlcoder/querystring"
)

// PolicyFlags override the encoding and validation policy for one run.
// Unset flags fall back to the config file, then to urlcoder.DefaultConfig.
type PolicyFlags struct {
	Standard     string  `help:"Encoding standard (rfc3986, legacy)" name:"standard"`
	Space        string  `help:"Space encoding (percent20, plus)" name:"space"`
	QuestionMark *bool   `help:"Join base URL and query with '?'" name:"question-mark" negatable:""`
	URLPattern   string  `help:"Pattern the base URL must match" name:"url-pattern"`
	Reserved     *string `help:"Comma separated substrings forbidden in the base URL (empty for none)" name:"reserved"`
	KeyPattern   string  `help:"Pattern at least one parameter key must match" name:"key-pattern"`
}

func (p *PolicyFlags) options() ([]urlcoder.Option, error) {
	var opts []urlcoder.Option

	if p.Standard != "" {
		s, err := querystring.ParseStandard(p.Standard)
		if err != nil {
			return nil, fmt.Errorf("--standard: %w", err)
		}

		opts = append(opts, urlcoder.WithStandard(s))
	}

	if p.Space != "" {
		s, err := querystring.ParseSpaceEncoding(p.Space)
		if err != nil {
			return nil, fmt.Errorf("--space: %w", err)
		}

		opts = append(opts, urlcoder.WithSpaceEncoding(s))
	}

	if p.QuestionMark != nil {
		opts = append(opts, urlcoder.WithAutoQuestionMark(*p.QuestionMark))
	}

	urlOpt, err := urlPatternOption(p.URLPattern)
	if err != nil {
		return nil, err
	}

	if urlOpt != nil {
		opts = append(opts, urlOpt)
	}

	if p.Reserved != nil {
		opts = append(opts, urlcoder.WithReservedChars(config.SplitList(*p.Reserved)...))
	}

	if p.KeyPattern != "" {
		if _, err := urlcoder.CompilePattern(p.KeyPattern); err != nil {
			return nil, fmt.Errorf("--key-pattern: %w", err)
		}

		opts = append(opts, urlcoder.WithParamKeyPattern(p.KeyPattern))
	}

	return opts, nil
}

func urlPatternOption(pattern string) (urlcoder.Option, error) {
	if pattern == "" {
		return nil, nil
	}

	if _, err := urlcoder.CompilePattern(pattern); err != nil {
		return nil, fmt.Errorf("--url-pattern: %w", err)
	}

	return urlcoder.WithURLPattern(pattern), nil
}

// effectiveConfig resolves the policy: flag options > config file >
// urlcoder.DefaultConfig. --verbose turns on debug logging.
func effectiveConfig(ctx context.Context, root *RootFlags, opts ...urlcoder.Option) (urlcoder.Config, error) {
	cfg := urlcoder.DefaultConfig()

	if fileCfg := config.FromContext(ctx); fileCfg != nil {
		var err error
		if cfg, err = fileCfg.Apply(cfg); err != nil {
			return cfg, fmt.Errorf("applying config: %w", err)
		}
	}

	if root != nil && root.Verbose {
		opts = append(opts, urlcoder.WithDebug(true))
	}

	return cfg.With(opts...), nil
}
