package querystring

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedPair is returned by ParsePair when the input has no "=".
var ErrMalformedPair = errors.New("expected key=value")

// ParsePair splits a literal "key=value" at the first "=". Neither side is
// unescaped; the value may itself contain "=".
func ParsePair(s string) (Param, error) {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return Param{}, fmt.Errorf("%w: %q", ErrMalformedPair, s)
	}

	return Param{Key: key, Value: value}, nil
}

// ParsePairs applies ParsePair to each argument in order.
func ParsePairs(args []string) (Params, error) {
	out := make(Params, 0, len(args))

	for _, arg := range args {
		p, err := ParsePair(arg)
		if err != nil {
			return nil, err
		}

		out = append(out, p)
	}

	return out, nil
}
