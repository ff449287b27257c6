// Package clip wraps the system clipboard.
package clip

import (
	"fmt"

	"github.com/atotto/clipboard"
)

var (
	writeClipboard = clipboard.WriteAll
	readClipboard  = clipboard.ReadAll
	unsupported    = func() bool { return clipboard.Unsupported }
)

// Write copies text to the clipboard.
func Write(text string) error {
	if unsupported() {
		return fmt.Errorf("no clipboard utility available")
	}
	if err := writeClipboard(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Read returns the clipboard's text.
func Read() (string, error) {
	value, err := readClipboard()
	if err != nil {
		return "", fmt.Errorf("read clipboard: %w", err)
	}
	return value, nil
}

// Stub replaces the clipboard with an in-memory buffer and returns a func
// that restores it. For tests.
func Stub(buf *string) (restore func()) {
	prevWrite, prevRead, prevUnsupported := writeClipboard, readClipboard, unsupported
	unsupported = func() bool { return false }
	writeClipboard = func(s string) error {
		*buf = s
		return nil
	}
	readClipboard = func() (string, error) {
		return *buf, nil
	}
	return func() {
		writeClipboard, readClipboard, unsupported = prevWrite, prevRead, prevUnsupported
	}
}
