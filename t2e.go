// Package t2e turns clipboard content into an IDE live-template
// enum("a", "b", ...) literal. The content is either a live-template XML
// document, in which case every <template> name is listed, or plain text,
// in which case every line is listed.
//
// This package contains domain types, interfaces and the pure transforms.
// Implementations live in subdirectories named after their primary
// dependency (e.g., xml/, clipboard/, slog/).
package t2e
