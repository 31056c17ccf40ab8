package urlcoder

import "errors"

var (
	// ErrInvalidURL is returned when the URL does not match Config.URLPattern.
	ErrInvalidURL = errors.New("not a URL")

	// ErrReservedChars is returned when a base URL contains a reserved substring.
	ErrReservedChars = errors.New("base URL contains reserved characters")

	// ErrInvalidParamKeys is returned when no parameter key matches
	// Config.ParamKeyPattern.
	ErrInvalidParamKeys = errors.New("no parameter key matches the key pattern")

	// ErrInvalidPattern is returned when a configured pattern does not compile.
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrPatternTimeout is returned when a pattern takes longer than
	// MatchTimeout to evaluate.
	ErrPatternTimeout = errors.New("pattern match timed out")
)
