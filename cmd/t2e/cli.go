package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/0x7FFFFFFFFFFFFFFF/t2e"
)

// Clipboard is a text store that is both read and written.
type Clipboard interface {
	t2e.TextSource
	t2e.TextSink
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx         context.Context
	Stdout      io.Writer
	Stderr      io.Writer
	Logger      *slog.Logger
	Source      t2e.TextSource
	Sink        t2e.TextSink
	Transformer *t2e.Transformer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	FromLines bool   `short:"l" name:"from-lines" env:"T2E_FROM_LINES" help:"Treat input as plain text with one choice per line (same as --mode=lines)"`
	Mode      string `short:"m" default:"templates" enum:"templates,lines" env:"T2E_MODE" help:"Input mode: ${enum}"`
	In        string `short:"i" default:"clipboard" env:"T2E_IN" help:"Input: clipboard, - for stdin, or a file path"`
	Out       string `short:"o" default:"clipboard" env:"T2E_OUT" help:"Output: clipboard, - for stdout, or a file path"`
	Print     bool   `short:"p" help:"Also print the result to stdout"`
	LogLevel  string `name:"log-level" default:"warn" env:"T2E_LOG" help:"Log level (debug, info, warn, error)"`
}
