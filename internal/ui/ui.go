// Package ui renders the human-readable side of urlcoder: URLs, decoded
// fields and parameter tables on stdout, warnings and confirmations on
// stderr.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/muesli/termenv"
)

// ColorMode is the value of the --color flag.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const (
	urlColor     = "#0ea5e9"
	warnColor    = "#f59e0b"
	successColor = "#22c55e"
)

// UI pairs the stdout and stderr printers.
type UI struct {
	Out *Printer
	Err *Printer
}

// New builds both printers. Nil writers mean the process streams as they are
// at call time.
func New(stdout, stderr io.Writer, mode ColorMode) *UI {
	if stdout == nil {
		stdout = os.Stdout
	}

	if stderr == nil {
		stderr = os.Stderr
	}

	return &UI{Out: NewPrinter(stdout, mode), Err: NewPrinter(stderr, mode)}
}

// Printer writes whole lines to one stream.
type Printer struct {
	w       io.Writer
	profile termenv.Profile
}

// NewPrinter resolves the color profile for w. Auto follows the terminal and
// NO_COLOR; always forces true color unless NO_COLOR is set; any other mode
// is plain text.
func NewPrinter(w io.Writer, mode ColorMode) *Printer {
	p := &Printer{w: w, profile: termenv.Ascii}

	switch mode {
	case ColorAuto:
		p.profile = termenv.NewOutput(w).EnvColorProfile()
	case ColorAlways:
		if !termenv.EnvNoColor() {
			p.profile = termenv.TrueColor
		}
	}

	return p
}

// ColorEnabled reports whether output is styled.
func (p *Printer) ColorEnabled() bool { return p.profile != termenv.Ascii }

func (p *Printer) line(s string) {
	_, _ = io.WriteString(p.w, s+"\n")
}

func (p *Printer) colored(s, hex string) termenv.Style {
	return termenv.String(s).Foreground(p.profile.Color(hex))
}

// Println writes msg and a newline.
func (p *Printer) Println(msg string) { p.line(msg) }

// URL writes u on its own line, underlined in color mode. The text is never
// altered so it stays copy-pasteable.
func (p *Printer) URL(u string) {
	if !p.ColorEnabled() {
		p.line(u)
		return
	}

	p.line(p.colored(u, urlColor).Underline().String())
}

// Field writes "label: value" with a bold label.
func (p *Printer) Field(label, value string) {
	l := label + ":"
	if p.ColorEnabled() {
		l = termenv.String(l).Bold().String()
	}

	p.line(l + " " + value)
}

// Warnf writes "warning: " and the formatted message.
func (p *Printer) Warnf(format string, args ...any) {
	p.tinted(warnColor, "warning: "+format, args...)
}

// Successf writes the formatted message in green.
func (p *Printer) Successf(format string, args ...any) {
	p.tinted(successColor, format, args...)
}

func (p *Printer) tinted(hex, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if p.ColorEnabled() {
		msg = p.colored(msg, hex).String()
	}

	p.line(msg)
}

type ctxKey struct{}

// NewContext returns ctx carrying u.
func NewContext(ctx context.Context, u *UI) context.Context {
	return context.WithValue(ctx, ctxKey{}, u)
}

// FromContext returns the UI stored by NewContext, or nil.
func FromContext(ctx context.Context) *UI {
	u, _ := ctx.Value(ctxKey{}).(*UI)
	return u
}
