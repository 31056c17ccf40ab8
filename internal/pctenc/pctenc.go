// Package pctenc holds the byte-level percent-encoding primitives shared by
// the query-string and URI codecs.
package pctenc

import "strings"

const upperHex = "0123456789ABCDEF"

// Alnum reports whether b is an ASCII letter or digit.
func Alnum(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z' || '0' <= b && b <= '9'
}

// Escape writes every byte of s for which safe returns false as %XX with
// upper-case hex. Callers validate UTF-8 first.
func Escape(s string, safe func(byte) bool) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if safe(c) {
			b.WriteByte(c)
			continue
		}

		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&15])
	}

	return b.String()
}

// HexByte decodes the escape "%XX" starting at s[k]. Hex digits may be
// either case.
func HexByte(s string, k int) (byte, bool) {
	if k+2 >= len(s) || s[k] != '%' {
		return 0, false
	}

	hi, ok1 := unhex(s[k+1])
	lo, ok2 := unhex(s[k+2])

	return hi<<4 | lo, ok1 && ok2
}

func unhex(c byte) (byte, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}

	return 0, false
}
