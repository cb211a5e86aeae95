package t2e

import "strings"

// Mode selects how the input is read.
type Mode int

const (
	// ModeTemplates reads the input as live-template XML and lists the
	// template names.
	ModeTemplates Mode = iota

	// ModeLines reads the input as plain text and lists its lines.
	ModeLines
)

// String returns the name of the mode as accepted by ParseMode.
func (m Mode) String() string {
	switch m {
	case ModeTemplates:
		return "templates"
	case ModeLines:
		return "lines"
	default:
		return "unknown"
	}
}

// ParseMode parses a mode name. Matching is case-insensitive.
// Returns EINVALID for unknown names.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "templates", "template":
		return ModeTemplates, nil
	case "lines", "line":
		return ModeLines, nil
	default:
		return 0, Errorf(EINVALID, "unknown mode %q", s)
	}
}
