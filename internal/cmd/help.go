package cmd

import (
	"fmt"

	"github.com/alecthomas/kong"
)

const helpExamples = `
Examples:
  urlcoder encode https://www.google.com/search q="lisandro francesco"
  urlcoder encode --space plus https://example.com/ q="a b" lang=en
  urlcoder decode 'https://example.com/?q=a%20b&lang=en'
  urlcoder --json decode 'https://example.com/?q=a%20b'
  urlcoder config set space_encoding plus
`

func helpOptions() kong.HelpOptions {
	return kong.HelpOptions{
		Compact:             true,
		Summary:             true,
		NoExpandSubcommands: true,
	}
}

// helpPrinter prints kong's default help and appends usage examples on the
// top-level page.
func helpPrinter(options kong.HelpOptions, ctx *kong.Context) error {
	if err := kong.DefaultHelpPrinter(options, ctx); err != nil {
		return err
	}

	if ctx.Selected() == nil {
		if _, err := fmt.Fprint(ctx.Stdout, helpExamples); err != nil {
			return fmt.Errorf("writing help: %w", err)
		}
	}

	return nil
}
