package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCopyToClipboard(t *testing.T) {
	origWrite := ClipboardWrite
	origUnsupported := ClipboardUnsupported
	defer func() {
		ClipboardWrite = origWrite
		ClipboardUnsupported = origUnsupported
	}()

	ClipboardUnsupported = false

	var captured string
	ClipboardWrite = func(text string) error {
		captured = text
		return nil
	}

	err := CopyToClipboard("https://example.com/?q=a%20b")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/?q=a%20b", captured)
}

func TestCopyToClipboard_Unsupported(t *testing.T) {
	origUnsupported := ClipboardUnsupported
	defer func() { ClipboardUnsupported = origUnsupported }()

	ClipboardUnsupported = true

	err := CopyToClipboard("https://example.com/")
	assert.ErrorIs(t, err, ErrClipboardUnsupported)
}

func TestCopyToClipboard_WriteError(t *testing.T) {
	origWrite := ClipboardWrite
	origUnsupported := ClipboardUnsupported
	defer func() {
		ClipboardWrite = origWrite
		ClipboardUnsupported = origUnsupported
	}()

	ClipboardUnsupported = false
	boom := errors.New("no xclip")
	ClipboardWrite = func(string) error { return boom }

	err := CopyToClipboard("https://example.com/")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "copying to clipboard")
}

func TestOpenInBrowser(t *testing.T) {
	original := BrowserOpen
	defer func() { BrowserOpen = original }()

	var captured string
	BrowserOpen = func(url string) error {
		captured = url
		return nil
	}

	err := OpenInBrowser("https://example.com/?a=1")
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/?a=1", captured)
}

func TestEmptyURL(t *testing.T) {
	original := BrowserOpen
	defer func() { BrowserOpen = original }()

	called := false
	BrowserOpen = func(string) error {
		called = true
		return nil
	}

	assert.ErrorIs(t, OpenInBrowser(""), ErrEmptyURL)
	assert.ErrorIs(t, CopyToClipboard(""), ErrEmptyURL)
	assert.False(t, called)
}
