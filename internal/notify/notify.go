// ABOUTME: Notifier interface for user-facing success/error/info messages
// ABOUTME: Terminal implementation renders notifications with color, like UI toasts

package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
)

// Notifier delivers user-facing notifications. Every terminal outcome of an
// operation surfaces through exactly one call on this interface.
type Notifier interface {
	Success(msg string)
	Error(msg string)
	Info(msg string)
}

// Terminal writes notifications to a writer with color markers.
type Terminal struct {
	mu  sync.Mutex
	out io.Writer
}

// NewTerminal creates a Terminal notifier writing to w.
// A nil writer defaults to stderr so notifications never mix with data output.
func NewTerminal(w io.Writer) *Terminal {
	if w == nil {
		w = os.Stderr
	}
	return &Terminal{out: w}
}

// Success prints a green check line.
func (t *Terminal) Success(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", color.GreenString("✓"), msg)
}

// Error prints a red cross line.
func (t *Terminal) Error(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", color.RedString("✗"), msg)
}

// Info prints a cyan info line.
func (t *Terminal) Info(msg string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fmt.Fprintf(t.out, "%s %s\n", color.CyanString("•"), msg)
}
