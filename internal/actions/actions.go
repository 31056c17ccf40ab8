// Package actions provides post-encode output actions: clipboard copy and
// browser open.
package actions

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/pkg/browser"
)

// ErrClipboardUnsupported indicates the platform has no clipboard support.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this platform")

// ErrEmptyURL is returned when there is nothing to copy or open.
var ErrEmptyURL = errors.New("empty URL")

// ClipboardWrite is a function variable for clipboard writes (swappable in tests).
var ClipboardWrite = clipboard.WriteAll

// ClipboardUnsupported mirrors clipboard.Unsupported (swappable in tests).
var ClipboardUnsupported = clipboard.Unsupported

// BrowserOpen is a function variable for opening URLs (swappable in tests).
var BrowserOpen = browser.OpenURL

// CopyToClipboard copies text to the system clipboard.
func CopyToClipboard(text string) error {
	if text == "" {
		return ErrEmptyURL
	}

	if ClipboardUnsupported {
		return ErrClipboardUnsupported
	}

	if err := ClipboardWrite(text); err != nil {
		return fmt.Errorf("copying to clipboard: %w", err)
	}

	return nil
}

// OpenInBrowser opens the given URL in the default browser.
func OpenInBrowser(rawURL string) error {
	if rawURL == "" {
		return ErrEmptyURL
	}

	if err := BrowserOpen(rawURL); err != nil {
		return fmt.Errorf("opening %s: %w", rawURL, err)
	}

	return nil
}
