package mock

import (
	"context"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
)

var (
	_ t2e.TextSource = (*TextSource)(nil)
	_ t2e.TextSink   = (*TextSink)(nil)
)

// TextSource is a mock implementation of t2e.TextSource.
type TextSource struct {
	ReadTextFn func(ctx context.Context) (string, error)
}

func (s *TextSource) ReadText(ctx context.Context) (string, error) {
	return s.ReadTextFn(ctx)
}

// TextSink is a mock implementation of t2e.TextSink.
type TextSink struct {
	WriteTextFn func(ctx context.Context, s string) error
}

func (s *TextSink) WriteText(ctx context.Context, text string) error {
	return s.WriteTextFn(ctx, text)
}
