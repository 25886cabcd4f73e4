// Package clipboard places rendered trees on the system clipboard.
package clipboard

import (
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

const errorUnsupportedFormat = "clipboard is not available on this system: %w"

// Copier copies text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// CopierFunc adapts a function to the Copier interface.
type CopierFunc func(text string) error

// Copy calls the wrapped function.
func (copier CopierFunc) Copy(text string) error {
	return copier(text)
}

// System writes to the operating system clipboard through pbcopy, xclip, xsel or the Windows API.
type System struct{}

// NewSystem returns the operating system clipboard.
func NewSystem() System {
	return System{}
}

// Copy writes text to the clipboard.
func (System) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf(errorUnsupportedFormat, errUnsupported)
	}
	return clipboard.WriteAll(text)
}

var errUnsupported = errors.New("no clipboard utility found")

var (
	_ Copier = System{}
	_ Copier = CopierFunc(nil)
)
