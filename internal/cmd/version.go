package cmd

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/dedene/urlcoder/internal/outfmt"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// VersionString returns a human-readable version string.
func VersionString() string {
	v := strings.TrimSpace(version)
	if v == "" {
		v = "dev"
	}
	c := strings.TrimSpace(commit)
	d := strings.TrimSpace(date)
	switch {
	case c == "" && d == "":
		return v
	case c == "":
		return fmt.Sprintf("%s (%s)", v, d)
	case d == "":
		return fmt.Sprintf("%s (%s)", v, c)
	}
	return fmt.Sprintf("%s (%s %s)", v, c, d)
}

// VersionCmd prints version information.
type VersionCmd struct{}

type versionInfo struct {
	Version string `json:"version" yaml:"version"`
	Commit  string `json:"commit" yaml:"commit"`
	Date    string `json:"date" yaml:"date"`
	Go      string `json:"go" yaml:"go"`
}

// Run executes the version command.
func (c *VersionCmd) Run(ctx context.Context) error {
	if outfmt.IsStructured(ctx) {
		return outfmt.Write(ctx, os.Stdout, versionInfo{
			Version: strings.TrimSpace(version),
			Commit:  strings.TrimSpace(commit),
			Date:    strings.TrimSpace(date),
			Go:      runtime.Version(),
		})
	}

	fmt.Fprintf(os.Stdout, "urlcoder %s\n", VersionString())
	if c := strings.TrimSpace(commit); c != "" {
		fmt.Fprintf(os.Stdout, "  commit: %s\n", c)
	}
	if d := strings.TrimSpace(date); d != "" {
		fmt.Fprintf(os.Stdout, "  date:   %s\n", d)
	}
	fmt.Fprintf(os.Stdout, "  go:     %s\n", runtime.Version())
	return nil
}
