package urlparts

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dedene/urlcoder/internal/pctenc"
)

// ErrMalformedURI is returned when a URL cannot be percent-encoded or
// percent-decoded as a whole.
var ErrMalformedURI = errors.New("malformed URI")

// uriSafe reports whether encodeURI leaves b unescaped: unreserved marks plus
// the reserved URL syntax characters.
func uriSafe(b byte) bool {
	return pctenc.Alnum(b) || strings.IndexByte("-_.!~*'();,/?:@&=+$#", b) >= 0
}

// uriReserved holds the characters decodeURI refuses to unescape.
const uriReserved = ";/?:@&=+$,#"

// EncodeURI percent-encodes the characters that cannot appear in a URL while
// leaving reserved syntax (: / ? # & = ...) intact. An existing '%' is
// escaped too, so the input is assumed not to be encoded yet.
func EncodeURI(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: invalid UTF-8", ErrMalformedURI)
	}

	return pctenc.Escape(s, uriSafe), nil
}

// DecodeURI reverses EncodeURI. Escapes that decode to a reserved character
// (for example %2F or %3F) are kept as-is so the URL structure does not
// change.
func DecodeURI(s string) (string, error) {
	if !strings.Contains(s, "%") {
		return s, nil
	}

	out := make([]byte, 0, len(s))

	for k := 0; k < len(s); k++ {
		if s[k] != '%' {
			out = append(out, s[k])
			continue
		}

		lead, ok := pctenc.HexByte(s, k)
		if !ok {
			return "", fmt.Errorf("%w: bad escape at offset %d", ErrMalformedURI, k)
		}

		if lead < utf8.RuneSelf {
			if strings.IndexByte(uriReserved, lead) >= 0 {
				out = append(out, s[k:k+3]...)
			} else {
				out = append(out, lead)
			}

			k += 2

			continue
		}

		n := sequenceLen(lead)
		if n == 0 {
			return "", fmt.Errorf("%w: bad UTF-8 lead byte at offset %d", ErrMalformedURI, k)
		}

		seq := make([]byte, 0, n)
		seq = append(seq, lead)
		start := k

		for j := 1; j < n; j++ {
			k += 3
			if k >= len(s) || s[k] != '%' {
				return "", fmt.Errorf("%w: truncated UTF-8 sequence at offset %d", ErrMalformedURI, start)
			}

			cont, ok := pctenc.HexByte(s, k)
			if !ok || cont&0xC0 != 0x80 {
				return "", fmt.Errorf("%w: bad UTF-8 continuation at offset %d", ErrMalformedURI, k)
			}

			seq = append(seq, cont)
		}

		if !utf8.Valid(seq) {
			return "", fmt.Errorf("%w: invalid UTF-8 sequence at offset %d", ErrMalformedURI, start)
		}

		out = append(out, seq...)
		k += 2
	}

	return string(out), nil
}

// sequenceLen returns the UTF-8 sequence length announced by a lead byte,
// or 0 when b cannot start a multi-byte sequence.
func sequenceLen(b byte) int {
	switch {
	case b&0xE0 == 0xC0:
		return 2
	case b&0xF0 == 0xE0:
		return 3
	case b&0xF8 == 0xF0:
		return 4
	}

	return 0
}
