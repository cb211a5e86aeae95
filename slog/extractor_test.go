package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
	"github.com/0x7FFFFFFFFFFFFFFF/t2e/mock"
	t2eslog "github.com/0x7FFFFFFFFFFFFFFF/t2e/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction with mode, count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(input string) ([]string, error) {
				return []string{"a", "b", "c"}, nil
			},
		}

		ext := t2eslog.NewLoggingExtractor(inner, t2e.ModeLines, logger)
		items, err := ext.Extract("a\nb\nc")

		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b", "c"}, items)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "mode=lines")
		assert.Contains(t, output, "bytes=5")
		assert.Contains(t, output, "count=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error code and offset on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(input string) ([]string, error) {
				return nil, t2e.OffsetErrorf(t2e.EMALFORMED, 12, "malformed XML at position 12: unexpected EOF")
			},
		}

		ext := t2eslog.NewLoggingExtractor(inner, t2e.ModeTemplates, logger)
		_, err := ext.Extract("<template nam")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "mode=templates")
		assert.Contains(t, output, "code=malformed_xml")
		assert.Contains(t, output, "offset=12")
		assert.Contains(t, output, "unexpected EOF")
	})
}
