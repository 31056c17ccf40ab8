package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/dedene/urlcoder/internal/config"
	"github.com/dedene/urlcoder/internal/outfmt"
	"github.com/dedene/urlcoder/internal/ui"
)

// RootFlags are global flags available to all commands.
type RootFlags struct {
	Color   string `help:"Color output: auto|always|never" default:"auto" enum:"auto,always,never"`
	JSON    bool   `help:"JSON output" default:"false" xor:"format"`
	YAML    bool   `help:"YAML output" default:"false" xor:"format"`
	Verbose bool   `help:"Verbose logging; also enables debug logging of rejected input" default:"false"`
	NoInput bool   `help:"Never prompt; fail instead" name:"no-input" default:"false"`
}

// CLI is the top-level Kong command struct.
type CLI struct {
	RootFlags `embed:""`

	Version    kong.VersionFlag `help:"Print version and exit"`
	VersionCmd VersionCmd       `cmd:"" name:"version" help:"Print version info"`
	Encode     EncodeCmd        `cmd:"" name:"encode" aliases:"enc,e" help:"Build a URL from a base URL and key=value parameters"`
	Decode     DecodeCmd        `cmd:"" name:"decode" aliases:"dec,d" help:"Split a URL into its base URL and parameters"`
	Build      BuildCmd         `cmd:"" name:"build" help:"Build a URL interactively"`
	Config     ConfigCmd        `cmd:"" name:"config" help:"Manage configuration"`
}

// Execute parses CLI args, sets up context, and runs the matched command.
func Execute(args []string) (err error) {
	cli := &CLI{}
	parser, err := kong.New(
		cli,
		kong.Name("urlcoder"),
		kong.Description("Encode and decode URLs with query parameters"),
		kong.ConfigureHelp(helpOptions()),
		kong.Help(helpPrinter),
		kong.Vars{"version": VersionString()},
		kong.Writers(os.Stdout, os.Stderr),
		kong.Exit(func(code int) { panic(exitPanic{code: code}) }),
	)
	if err != nil {
		return err
	}

	defer func() {
		if r := recover(); r != nil {
			if ep, ok := r.(exitPanic); ok {
				if ep.code == 0 {
					err = nil
					return
				}
				err = &ExitError{Code: ep.code, Err: errors.New("exited")}
				return
			}
			panic(r)
		}
	}()

	kctx, err := parser.Parse(args)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		return &ExitError{Code: ExitUsage, Err: err}
	}

	// Verbose logging
	logLevel := slog.LevelWarn
	if cli.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	// Output mode
	mode := outfmt.Mode{JSON: cli.JSON, YAML: cli.YAML}
	ctx := context.Background()
	ctx = outfmt.WithMode(ctx, mode)

	// UI printer -- force no color in structured mode
	colorMode := ui.ColorMode(cli.Color)
	if outfmt.IsStructured(ctx) {
		colorMode = ui.ColorNever
	}
	ctx = ui.NewContext(ctx, ui.New(os.Stdout, os.Stderr, colorMode))

	// Config
	cfgPath, _ := config.ConfigPath()
	cfg, cfgErr := config.Load(cfgPath)
	if cfgErr != nil {
		slog.Warn("loading config", "path", cfgPath, "error", cfgErr)
		cfg = &config.Config{}
	}
	ctx = config.WithConfig(ctx, cfg)

	// Bind context + root flags to Kong
	kctx.BindTo(ctx, (*context.Context)(nil))
	kctx.Bind(&cli.RootFlags)

	return kctx.Run()
}

// printers returns the context UI, or an uncolored one on the process
// streams when none was set up.
func printers(ctx context.Context) *ui.UI {
	if u := ui.FromContext(ctx); u != nil {
		return u
	}

	return ui.New(nil, nil, ui.ColorNever)
}

// warnf prints a non-fatal warning to stderr.
func warnf(ctx context.Context, format string, args ...any) {
	printers(ctx).Err.Warnf(format, args...)
}
