package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
	"github.com/0x7FFFFFFFFFFFFFFF/t2e/clipboard"
	"github.com/0x7FFFFFFFFFFFFFFF/t2e/fs"
	t2eslog "github.com/0x7FFFFFFFFFFFFFFF/t2e/slog"
	"github.com/0x7FFFFFFFFFFFFFFF/t2e/xml"
	"github.com/alecthomas/kong"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Clipboard used when input or output is "clipboard".
	// Set before calling Run() to replace the system clipboard.
	Clipboard Clipboard
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Clipboard: clipboard.NewClipboard(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("t2e"),
		kong.Description("Convert live templates or lines on the clipboard to an enum(...) expression"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(cli.LogLevel)); err != nil {
		return t2e.Errorf(t2e.EINVALID, "invalid log level %q", cli.LogLevel)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	deps.Source = t2eslog.NewLoggingSource(m.source(cli.In, stdin), cli.In, logger)
	deps.Sink = t2eslog.NewLoggingSink(m.sink(cli.Out, stdout), cli.Out, logger)
	deps.Transformer = &t2e.Transformer{
		Templates: t2eslog.NewLoggingExtractor(templateExtractor(cli.In), t2e.ModeTemplates, logger),
		Lines:     t2eslog.NewLoggingExtractor(t2e.LineExtractor{}, t2e.ModeLines, logger),
	}

	mode, err := t2e.ParseMode(cli.Mode)
	if err != nil {
		return err
	}
	if cli.FromLines {
		mode = t2e.ModeLines
	}

	cmd := &ConvertCmd{
		Mode:  mode,
		Print: cli.Print && cli.Out != streamTarget,
	}

	return cmd.Run(deps)
}

// source resolves the --in flag.
func (m *Main) source(in string, stdin io.Reader) t2e.TextSource {
	switch in {
	case clipboardTarget:
		return m.Clipboard
	case streamTarget:
		return fs.NewStreamSource(stdin)
	default:
		return fs.NewFileSource(in)
	}
}

// templateExtractor returns the XML extractor for the --in flag. Only file
// content is raw bytes whose XML declaration names their encoding; clipboard
// and stdin text is already UTF-8.
func templateExtractor(in string) t2e.Extractor {
	if in == clipboardTarget || in == streamTarget {
		return xml.NewTemplateExtractor()
	}
	return xml.NewTemplateExtractor(xml.WithDeclaredEncoding())
}

// sink resolves the --out flag.
func (m *Main) sink(out string, stdout io.Writer) t2e.TextSink {
	switch out {
	case clipboardTarget:
		return m.Clipboard
	case streamTarget:
		return fs.NewStreamSink(stdout)
	default:
		return fs.NewFileSink(out)
	}
}

const (
	clipboardTarget = "clipboard"
	streamTarget    = "-"
)
