// Package outfmt provides context-based output mode selection (JSON, YAML or
// human).
package outfmt

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// Mode controls output formatting.
type Mode struct {
	JSON bool
	YAML bool
}

type ctxKey struct{}

// WithMode stores the output mode in the context.
func WithMode(ctx context.Context, mode Mode) context.Context {
	return context.WithValue(ctx, ctxKey{}, mode)
}

func fromContext(ctx context.Context) Mode {
	if v := ctx.Value(ctxKey{}); v != nil {
		if m, ok := v.(Mode); ok {
			return m
		}
	}

	return Mode{}
}

// IsJSON returns true if the context has JSON output mode enabled.
func IsJSON(ctx context.Context) bool {
	return fromContext(ctx).JSON
}

// IsYAML returns true if the context has YAML output mode enabled.
func IsYAML(ctx context.Context) bool {
	return fromContext(ctx).YAML
}

// IsStructured returns true for any machine-readable mode.
func IsStructured(ctx context.Context) bool {
	m := fromContext(ctx)

	return m.JSON || m.YAML
}

// Write renders v in the context's structured mode, JSON taking precedence.
func Write(ctx context.Context, w io.Writer, v any) error {
	if IsYAML(ctx) && !IsJSON(ctx) {
		return WriteYAML(w, v)
	}

	return WriteJSON(w, v)
}

// WriteJSON writes v as pretty-printed JSON to w.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// WriteYAML writes v as a YAML document to w.
func WriteYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing YAML: %w", err)
	}

	return nil
}
