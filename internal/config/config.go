package config

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/titanous/json5"

	"github.com/dedene/urlcoder"
	"github.com/dedene/urlcoder/querystring"
)

// Config holds user preferences. Unset fields fall back to
// urlcoder.DefaultConfig.
type Config struct {
	EncodingStandard string    `json:"encoding_standard,omitempty" validate:"omitempty,oneof=rfc3986 legacy"`
	SpaceEncoding    string    `json:"space_encoding,omitempty" validate:"omitempty,oneof=percent20 plus"`
	AutoQuestionMark *bool     `json:"auto_question_mark,omitempty"`
	URLPattern       string    `json:"url_pattern,omitempty"`
	ReservedChars    *[]string `json:"reserved_chars,omitempty" validate:"omitempty,dive,required"`
	ParamKeyPattern  string    `json:"param_key_pattern,omitempty"`
	Debug            *bool     `json:"debug,omitempty"`
}

var validate = validator.New()

// knownKey describes a config key and its optional validator.
type knownKey struct {
	validate func(string) error
}

var knownKeys = map[string]knownKey{
	"encoding_standard":  {validate: validateEnum("rfc3986", "legacy")},
	"space_encoding":     {validate: validateEnum("percent20", "plus")},
	"auto_question_mark": {validate: validateBool},
	"url_pattern":        {validate: validatePattern},
	"reserved_chars":     {validate: nil},
	"param_key_pattern":  {validate: validatePattern},
	"debug":              {validate: validateBool},
}

func validateEnum(allowed ...string) func(string) error {
	tag := "oneof=" + strings.Join(allowed, " ")

	return func(val string) error {
		if err := validate.Var(val, tag); err != nil {
			return fmt.Errorf("must be one of: %s", strings.Join(allowed, ", "))
		}

		return nil
	}
}

func validateBool(val string) error {
	if err := validate.Var(val, "oneof=true false"); err != nil {
		return fmt.Errorf("must be true or false")
	}

	return nil
}

func validatePattern(val string) error {
	if _, err := urlcoder.CompilePattern(val); err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	return nil
}

// Validate checks the whole config, as loaded from a hand-edited file.
func (cfg *Config) Validate() error {
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for key, pattern := range map[string]string{
		"url_pattern":       cfg.URLPattern,
		"param_key_pattern": cfg.ParamKeyPattern,
	} {
		if pattern == "" {
			continue
		}

		if err := validatePattern(pattern); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	return nil
}

// Apply layers the set fields of cfg over base.
func (cfg *Config) Apply(base urlcoder.Config) (urlcoder.Config, error) {
	var opts []urlcoder.Option

	if cfg.EncodingStandard != "" {
		s, err := querystring.ParseStandard(cfg.EncodingStandard)
		if err != nil {
			return base, err
		}

		opts = append(opts, urlcoder.WithStandard(s))
	}

	if cfg.SpaceEncoding != "" {
		s, err := querystring.ParseSpaceEncoding(cfg.SpaceEncoding)
		if err != nil {
			return base, err
		}

		opts = append(opts, urlcoder.WithSpaceEncoding(s))
	}

	if cfg.AutoQuestionMark != nil {
		opts = append(opts, urlcoder.WithAutoQuestionMark(*cfg.AutoQuestionMark))
	}

	if cfg.URLPattern != "" {
		opts = append(opts, urlcoder.WithURLPattern(cfg.URLPattern))
	}

	if cfg.ReservedChars != nil {
		opts = append(opts, urlcoder.WithReservedChars(*cfg.ReservedChars...))
	}

	if cfg.ParamKeyPattern != "" {
		opts = append(opts, urlcoder.WithParamKeyPattern(cfg.ParamKeyPattern))
	}

	if cfg.Debug != nil {
		opts = append(opts, urlcoder.WithDebug(*cfg.Debug))
	}

	return base.With(opts...), nil
}

// Load reads config from the JSON5 file at path.
// Returns an empty Config if the file does not exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := json5.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Save writes config as pretty-printed JSON atomically.
func Save(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	data = append(data, '\n')

	return atomicWrite(path, data)
}

// atomicWrite writes data to path via temp-file + rename.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}

	tmpPath := tmp.Name()

	defer func() {
		if tmpPath != "" {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()

		return fmt.Errorf("writing temp file: %w", err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming temp file: %w", err)
	}

	tmpPath = "" // prevent deferred cleanup

	return nil
}

func formatBool(b *bool) (string, bool) {
	if b == nil {
		return "", false
	}

	return fmt.Sprintf("%t", *b), true
}

// Get returns the string value for a config key and whether it is set.
// reserved_chars is rendered comma separated.
func (cfg *Config) Get(key string) (string, bool) {
	switch key {
	case "encoding_standard":
		return cfg.EncodingStandard, cfg.EncodingStandard != ""
	case "space_encoding":
		return cfg.SpaceEncoding, cfg.SpaceEncoding != ""
	case "auto_question_mark":
		return formatBool(cfg.AutoQuestionMark)
	case "url_pattern":
		return cfg.URLPattern, cfg.URLPattern != ""
	case "reserved_chars":
		if cfg.ReservedChars == nil {
			return "", false
		}

		return strings.Join(*cfg.ReservedChars, ","), true
	case "param_key_pattern":
		return cfg.ParamKeyPattern, cfg.ParamKeyPattern != ""
	case "debug":
		return formatBool(cfg.Debug)
	default:
		return "", false
	}
}

// Set sets a config key to a value after validation. reserved_chars takes a
// comma separated list; an empty value means no reserved characters.
func (cfg *Config) Set(key, value string) error {
	kk, ok := knownKeys[key]
	if !ok {
		return fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(KnownKeys(), ", "))
	}

	if kk.validate != nil {
		if err := kk.validate(value); err != nil {
			return fmt.Errorf("invalid value for %s: %w", key, err)
		}
	}

	switch key {
	case "encoding_standard":
		cfg.EncodingStandard = value
	case "space_encoding":
		cfg.SpaceEncoding = value
	case "auto_question_mark":
		b := value == "true"
		cfg.AutoQuestionMark = &b
	case "url_pattern":
		cfg.URLPattern = value
	case "reserved_chars":
		chars := SplitList(value)
		cfg.ReservedChars = &chars
	case "param_key_pattern":
		cfg.ParamKeyPattern = value
	case "debug":
		b := value == "true"
		cfg.Debug = &b
	}

	return nil
}

// Unset removes a config key (resets to zero/nil).
func (cfg *Config) Unset(key string) error {
	if _, ok := knownKeys[key]; !ok {
		return fmt.Errorf("unknown config key: %s (valid keys: %s)", key, strings.Join(KnownKeys(), ", "))
	}

	switch key {
	case "encoding_standard":
		cfg.EncodingStandard = ""
	case "space_encoding":
		cfg.SpaceEncoding = ""
	case "auto_question_mark":
		cfg.AutoQuestionMark = nil
	case "url_pattern":
		cfg.URLPattern = ""
	case "reserved_chars":
		cfg.ReservedChars = nil
	case "param_key_pattern":
		cfg.ParamKeyPattern = ""
	case "debug":
		cfg.Debug = nil
	}

	return nil
}

// SplitList splits a comma separated list, dropping empty items.
func SplitList(s string) []string {
	out := []string{}

	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}

	return out
}

// KnownKeys returns a sorted list of valid config key names.
func KnownKeys() []string {
	keys := make([]string, 0, len(knownKeys))
	for k := range knownKeys {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// --- Context helpers ---

type ctxKey struct{}

// WithConfig stores a Config in the context.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the Config from the context.
func FromContext(ctx context.Context) *Config {
	if v := ctx.Value(ctxKey{}); v != nil {
		if cfg, ok := v.(*Config); ok {
			return cfg
		}
	}

	return nil
}
