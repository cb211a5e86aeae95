package t2e

import "context"

// TextSource supplies the raw input, usually the system clipboard.
type TextSource interface {
	// ReadText returns the whole content of the source.
	ReadText(ctx context.Context) (string, error)
}

// TextSink consumes the formatted output, usually the system clipboard.
type TextSink interface {
	// WriteText replaces the content of the sink with s.
	WriteText(ctx context.Context, s string) error
}
