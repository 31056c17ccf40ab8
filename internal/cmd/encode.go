package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/titanous/json5"

	"github.com/dedene/urlcoder"
	"github.com/dedene/urlcoder/internal/actions"
	"github.com/dedene/urlcoder/internal/outfmt"
	"github.com/dedene/urlcoder/querystring"
)

// EncodeCmd builds a URL from a base URL and key=value arguments.
type EncodeCmd struct {
	Base   string   `arg:"" help:"Base URL"`
	Params []string `arg:"" optional:"" help:"Parameters as key=value (split at the first '=')" sep:"none"`

	ParamsFile string `help:"JSON5 file holding an array of {key, value} objects, applied before positional parameters" name:"params-file" type:"existingfile"`

	PolicyFlags `embed:""`

	// Output action flags.
	Copy bool `help:"Copy URL to clipboard" name:"copy" short:"c"`
	Open bool `help:"Open URL in browser" name:"open" short:"o"`
}

// ErrIncompleteParam is returned for a --params-file entry that lacks its
// key or its value.
var ErrIncompleteParam = errors.New("params file entry needs both key and value")

// paramsFileEntry is one element of a --params-file array. Pointers tell a
// missing field apart from an empty one.
type paramsFileEntry struct {
	Key   *string `json:"key" validate:"required"`
	Value *string `json:"value" validate:"required"`
}

var validate = validator.New()

type encodeResult struct {
	URL string `json:"url" yaml:"url"`
}

// Run validates the input, prints the encoded URL and fires output actions.
func (c *EncodeCmd) Run(ctx context.Context, root *RootFlags) error {
	params, err := c.collectParams()
	if err != nil {
		return err
	}

	opts, err := c.PolicyFlags.options()
	if err != nil {
		return err
	}

	cfg, err := effectiveConfig(ctx, root, opts...)
	if err != nil {
		return err
	}

	u, err := urlcoder.Encode(cfg, c.Base, params)
	if err != nil {
		return validationExit(fmt.Errorf("encoding %s: %w", c.Base, err))
	}

	return emitURL(ctx, u, c.Copy, c.Open)
}

func (c *EncodeCmd) collectParams() (querystring.Params, error) {
	params := querystring.Params{}

	if c.ParamsFile != "" {
		fromFile, err := readParamsFile(c.ParamsFile)
		if err != nil {
			return nil, err
		}

		params = append(params, fromFile...)
	}

	fromArgs, err := querystring.ParsePairs(c.Params)
	if err != nil {
		return nil, fmt.Errorf("parsing parameters: %w", err)
	}

	return append(params, fromArgs...), nil
}

func readParamsFile(path string) (querystring.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading params file: %w", err)
	}

	var entries []paramsFileEntry
	if err := json5.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing params file %s: %w", path, err)
	}

	params := make(querystring.Params, 0, len(entries))

	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, fmt.Errorf("params file %s: entry %d: %w", path, i+1, missingFields(err))
		}

		params = append(params, querystring.Param{Key: *e.Key, Value: *e.Value})
	}

	return params, nil
}

// missingFields turns validator output into ErrIncompleteParam naming the
// absent fields.
func missingFields(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	names := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		names = append(names, strings.ToLower(fe.Field()))
	}

	return fmt.Errorf("%w: missing %s", ErrIncompleteParam, strings.Join(names, " and "))
}

// emitURL prints u, as {"url": ...} in structured mode, then fires the
// requested output actions.
func emitURL(ctx context.Context, u string, copyURL, openURL bool) error {
	if outfmt.IsStructured(ctx) {
		if err := outfmt.Write(ctx, os.Stdout, encodeResult{URL: u}); err != nil {
			return err
		}
	} else {
		printers(ctx).Out.URL(u)
	}

	runActions(ctx, u, copyURL, openURL)

	return nil
}

// runActions fires post-encode actions (clipboard, browser).
// Errors are non-fatal warnings to stderr.
func runActions(ctx context.Context, u string, copyURL, openURL bool) {
	if copyURL {
		if err := actions.CopyToClipboard(u); err != nil {
			warnf(ctx, "clipboard: %v", err)
		}
	}

	if openURL {
		if err := actions.OpenInBrowser(u); err != nil {
			warnf(ctx, "browser: %v", err)
		}
	}
}
