package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/dedene/urlcoder"
	"github.com/dedene/urlcoder/internal/outfmt"
	"github.com/dedene/urlcoder/internal/ui"
)

// DecodeCmd splits a URL into its base URL and parameters.
type DecodeCmd struct {
	URL        string `arg:"" help:"URL to decode"`
	URLPattern string `help:"Pattern the URL must match" name:"url-pattern"`
}

// Run prints the decoded base URL and a parameter table, or the decoded
// record in JSON/YAML mode.
func (c *DecodeCmd) Run(ctx context.Context, root *RootFlags) error {
	var opts []urlcoder.Option

	urlOpt, err := urlPatternOption(c.URLPattern)
	if err != nil {
		return err
	}

	if urlOpt != nil {
		opts = append(opts, urlOpt)
	}

	cfg, err := effectiveConfig(ctx, root, opts...)
	if err != nil {
		return err
	}

	decoded, err := urlcoder.Decode(cfg, c.URL)
	if err != nil {
		return validationExit(fmt.Errorf("decoding %s: %w", c.URL, err))
	}

	if outfmt.IsStructured(ctx) {
		return outfmt.Write(ctx, os.Stdout, decoded)
	}

	out := printers(ctx).Out
	out.Field("Base URL", decoded.BaseURL)

	if len(decoded.Query) == 0 {
		out.Println("No parameters.")
		return nil
	}

	out.Println(ui.RenderParams(decoded.Query, out.ColorEnabled()))

	return nil
}
