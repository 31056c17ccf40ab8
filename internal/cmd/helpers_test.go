package cmd

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dedene/urlcoder/internal/actions"
	"github.com/dedene/urlcoder/internal/config"
	"github.com/dedene/urlcoder/internal/outfmt"
)

// testCtx returns a context with the given output mode and config.
func testCtx(t *testing.T, mode outfmt.Mode, cfg *config.Config) context.Context {
	t.Helper()

	if cfg == nil {
		cfg = &config.Config{}
	}

	ctx := context.Background()
	ctx = outfmt.WithMode(ctx, mode)
	ctx = config.WithConfig(ctx, cfg)

	return ctx
}

// captureStdout runs fn while capturing os.Stdout and returns the output.
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	origStdout := os.Stdout
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	buf, _ := io.ReadAll(r)
	_ = r.Close()

	return string(buf)
}

// captureStderr runs fn while capturing os.Stderr and returns the output.
func captureStderr(t *testing.T, fn func()) string {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	origStderr := os.Stderr
	os.Stderr = w

	fn()

	_ = w.Close()
	os.Stderr = origStderr

	buf, _ := io.ReadAll(r)
	_ = r.Close()

	return string(buf)
}

// stubActions replaces clipboard and browser hooks for the test duration and
// records what they received.
func stubActions(t *testing.T) (copied, opened *string) {
	t.Helper()

	origWrite := actions.ClipboardWrite
	origUnsupported := actions.ClipboardUnsupported
	origOpen := actions.BrowserOpen
	t.Cleanup(func() {
		actions.ClipboardWrite = origWrite
		actions.ClipboardUnsupported = origUnsupported
		actions.BrowserOpen = origOpen
	})

	copied = new(string)
	opened = new(string)

	actions.ClipboardUnsupported = false
	actions.ClipboardWrite = func(text string) error {
		*copied = text
		return nil
	}
	actions.BrowserOpen = func(u string) error {
		*opened = u
		return nil
	}

	return copied, opened
}

func boolPtr(b bool) *bool { return &b }

func strPtr(s string) *string { return &s }

func actionsUnsupported(t *testing.T) {
	t.Helper()

	orig := actions.ClipboardUnsupported
	t.Cleanup(func() { actions.ClipboardUnsupported = orig })
	actions.ClipboardUnsupported = true
}

// captureLog swaps the default slog logger for a buffered text logger.
func captureLog(t *testing.T, fn func()) string {
	t.Helper()

	orig := slog.Default()
	t.Cleanup(func() { slog.SetDefault(orig) })

	var buf bytes.Buffer
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	fn()

	return buf.String()
}
