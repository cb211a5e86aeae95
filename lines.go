package t2e

import "strings"

// Ensure LineExtractor implements Extractor.
var _ Extractor = LineExtractor{}

// ExtractLines splits text into its lines.
//
// Lines are terminated by "\n" or "\r\n". A "\r" not followed by "\n"
// is ordinary content. Empty lines are kept, including a leading one, but a
// final terminator does not produce a trailing empty line. The empty string
// is a single empty line.
func ExtractLines(text string) []string {
	terminated := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if i < len(lines)-1 || terminated {
			lines[i] = strings.TrimSuffix(line, "\r")
		}
	}
	return lines
}

// LineExtractor treats the input as plain text, one item per line.
type LineExtractor struct{}

// Extract returns the lines of input. It never fails.
func (LineExtractor) Extract(input string) ([]string, error) {
	return ExtractLines(input), nil
}
