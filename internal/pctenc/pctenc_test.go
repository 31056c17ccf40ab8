package pctenc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		safe func(byte) bool
		want string
	}{
		{"alnum kept", "abcXYZ019", Alnum, "abcXYZ019"},
		{"upper-case hex", "a b/ü", Alnum, "a%20b%2F%C3%BC"},
		{"custom safe set", "a/b c", func(b byte) bool { return Alnum(b) || b == '/' }, "a/b%20c"},
		{"empty", "", Alnum, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Escape(tt.in, tt.safe))
		})
	}
}

func TestHexByte(t *testing.T) {
	tests := []struct {
		in   string
		k    int
		want byte
		ok   bool
	}{
		{"%2F", 0, '/', true},
		{"%2f", 0, '/', true},
		{"a%C3", 1, 0xC3, true},
		{"%zz", 0, 0, false},
		{"%2", 0, 0, false},
		{"x2F", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := HexByte(tt.in, tt.k)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
