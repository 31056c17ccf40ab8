package urlcoder

import (
	"fmt"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single pattern evaluation. The default URL pattern
// backtracks on long userinfo-like input.
var MatchTimeout = time.Second

// CompilePattern compiles a validation pattern with JavaScript semantics
// (lookaheads, \uXXXX escapes, ASCII \d).
func CompilePattern(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.ECMAScript)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidPattern, pattern, err)
	}

	re.MatchTimeout = MatchTimeout

	return re, nil
}

// matches reports whether pattern matches anywhere in s.
func matches(pattern, s string) (bool, error) {
	re, err := CompilePattern(pattern)
	if err != nil {
		return false, err
	}

	ok, err := re.MatchString(s)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrPatternTimeout, err)
	}

	return ok, nil
}
