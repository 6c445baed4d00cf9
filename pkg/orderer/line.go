package orderer

import (
	"strings"
	"unicode"
)

// Line is one physical line of a source file. Removed marks a line that was
// blank inside the import block and must not survive the rewrite. The original
// text is never overwritten, so no input text can collide with the removal
// state.
type Line struct {
	Text    string
	Removed bool
}

// NewLines wraps raw line texts into kept lines.
func NewLines(texts []string) []Line {
	lines := make([]Line, len(texts))
	for i, text := range texts {
		lines[i] = Line{Text: text}
	}
	return lines
}

// stripSpaces returns s with every whitespace character removed.
func stripSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// stripComment returns s truncated at the first line-comment marker.
func stripComment(s string) string {
	if i := strings.Index(s, "//"); i >= 0 {
		return s[:i]
	}
	return s
}

// isBlank reports whether s is empty or whitespace-only.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
