// Package clipboard provides access to the system clipboard as a
// t2e.TextSource and t2e.TextSink.
package clipboard

import (
	"context"
	"fmt"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
	"github.com/atotto/clipboard"
)

// Ensure Clipboard implements the t2e text interfaces at compile time.
var (
	_ t2e.TextSource = (*Clipboard)(nil)
	_ t2e.TextSink   = (*Clipboard)(nil)
)

// Clipboard reads and writes the system clipboard as UTF-8 text.
type Clipboard struct {
	unsupported bool
	readAll     func() (string, error)
	writeAll    func(string) error
}

// Option configures a Clipboard.
type Option func(*Clipboard)

// WithBackend replaces the system clipboard calls, e.g. for tests or for
// a headless environment with its own buffer.
func WithBackend(read func() (string, error), write func(string) error) Option {
	return func(c *Clipboard) {
		c.unsupported = false
		c.readAll = read
		c.writeAll = write
	}
}

// NewClipboard creates a Clipboard backed by the system clipboard.
func NewClipboard(opts ...Option) *Clipboard {
	c := &Clipboard{
		unsupported: clipboard.Unsupported,
		readAll:     clipboard.ReadAll,
		writeAll:    clipboard.WriteAll,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ReadText returns the current clipboard content.
// Returns EUNAVAILABLE if no clipboard utility is available.
func (c *Clipboard) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.unsupported {
		return "", t2e.Errorf(t2e.EUNAVAILABLE, "no clipboard utility available")
	}

	s, err := c.readAll()
	if err != nil {
		return "", fmt.Errorf("reading clipboard: %w", err)
	}
	return s, nil
}

// WriteText replaces the clipboard content with s.
// Returns EUNAVAILABLE if no clipboard utility is available.
func (c *Clipboard) WriteText(ctx context.Context, s string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.unsupported {
		return t2e.Errorf(t2e.EUNAVAILABLE, "no clipboard utility available")
	}

	if err := c.writeAll(s); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
