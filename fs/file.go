// Package fs provides file and stream based text sources and sinks, used
// instead of the clipboard when reading template files from disk or when
// running in a pipeline.
package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
)

// Ensure FileSource and FileSink implement the t2e text interfaces at compile time.
var (
	_ t2e.TextSource = (*FileSource)(nil)
	_ t2e.TextSink   = (*FileSink)(nil)
)

// FileSource reads the whole content of a file, e.g. an IDE template-set
// XML file.
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource reading path.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// ReadText returns the content of the file.
// Returns ENOTFOUND if the file does not exist.
func (s *FileSource) ReadText(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	b, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", t2e.Errorf(t2e.ENOTFOUND, "input file %q not found", s.path)
	} else if err != nil {
		return "", err
	}
	return string(b), nil
}

// FileSink writes the output to a file, replacing its content.
type FileSink struct {
	path string
}

// NewFileSink creates a FileSink writing to path.
func NewFileSink(path string) *FileSink {
	return &FileSink{path: path}
}

// WriteText writes s followed by a newline, creating parent directories.
func (s *FileSink) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	// Create parent directories
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	return os.WriteFile(s.path, []byte(text+"\n"), 0644)
}
