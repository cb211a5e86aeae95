package t2e

import "strings"

// EscapeQuotes backslash-escapes every double quote in s.
// Nothing else is escaped, so an existing backslash stays as it is.
func EscapeQuotes(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// FormatEnum formats items as a live-template enum literal:
//
//	enum("a", "b", "c")
//
// Items keep their order. An empty list yields enum("").
func FormatEnum(items []string) string {
	escaped := make([]string, 0, len(items))
	for _, item := range items {
		escaped = append(escaped, EscapeQuotes(item))
	}

	var b strings.Builder
	b.WriteString(`enum("`)
	b.WriteString(strings.Join(escaped, `", "`))
	b.WriteString(`")`)
	return b.String()
}
