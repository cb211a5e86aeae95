package fs

import (
	"context"
	"fmt"
	"io"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
)

// Ensure StreamSource and StreamSink implement the t2e text interfaces at compile time.
var (
	_ t2e.TextSource = (*StreamSource)(nil)
	_ t2e.TextSink   = (*StreamSink)(nil)
)

// StreamSource reads text from a stream such as stdin.
type StreamSource struct {
	r io.Reader
}

// NewStreamSource creates a StreamSource reading from r.
func NewStreamSource(r io.Reader) *StreamSource {
	return &StreamSource{r: r}
}

// ReadText reads r to EOF.
func (s *StreamSource) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := io.ReadAll(s.r)
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return string(b), nil
}

// StreamSink writes text to a stream such as stdout.
type StreamSink struct {
	w io.Writer
}

// NewStreamSink creates a StreamSink writing to w.
func NewStreamSink(w io.Writer) *StreamSink {
	return &StreamSink{w: w}
}

// WriteText writes s followed by a newline.
func (s *StreamSink) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(s.w, text)
	return err
}
