package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/dedene/urlcoder"
	"github.com/dedene/urlcoder/internal/tui"
	"github.com/dedene/urlcoder/querystring"
)

// ErrNotInteractive is returned by build when no terminal is available.
var ErrNotInteractive = errors.New("build needs an interactive terminal; use 'urlcoder encode' instead")

// BuildCmd assembles a URL through an interactive form.
type BuildCmd struct {
	PolicyFlags `embed:""`

	Copy bool `help:"Copy URL to clipboard" name:"copy" short:"c"`
	Open bool `help:"Open URL in browser" name:"open" short:"o"`
}

// isInteractive is swappable in tests.
var isInteractive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stderr.Fd())
}

// Run launches the bubbletea builder, then encodes and prints the result.
func (c *BuildCmd) Run(ctx context.Context, root *RootFlags) error {
	if (root != nil && root.NoInput) || !isInteractive() {
		return ErrNotInteractive
	}

	opts, err := c.PolicyFlags.options()
	if err != nil {
		return err
	}

	cfg, err := effectiveConfig(ctx, root, opts...)
	if err != nil {
		return err
	}

	// Rejection logs would draw over the form; errors are shown inline.
	preview := cfg.With(urlcoder.WithDebug(false))
	m := tui.NewBuilder(func(base string, params querystring.Params) (string, error) {
		return urlcoder.Encode(preview, base, params)
	})

	p := tea.NewProgram(m, tea.WithOutput(os.Stderr), tea.WithInputTTY())

	result, err := p.Run()
	if err != nil {
		return fmt.Errorf("interactive builder: %w", err)
	}

	builder, ok := result.(tui.Builder)
	if !ok {
		return errors.New("unexpected builder result type")
	}

	if builder.Cancelled() {
		return nil
	}

	return c.finish(ctx, cfg, builder.BaseURL(), builder.Params())
}

func (c *BuildCmd) finish(ctx context.Context, cfg urlcoder.Config, base string, params querystring.Params) error {
	u, err := urlcoder.Encode(cfg, base, params)
	if err != nil {
		return validationExit(fmt.Errorf("encoding %s: %w", base, err))
	}

	return emitURL(ctx, u, c.Copy, c.Open)
}
