package pipeline

import "strings"

// Normalize collapses every run of whitespace to a single space and trims
// both ends. Normalize(Normalize(s)) == Normalize(s).
func Normalize(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// JoinLines normalizes each line on its own and joins the non-empty
// results with single spaces.
func JoinLines(lines []string) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		if n := Normalize(line); n != "" {
			parts = append(parts, n)
		}
	}
	return strings.Join(parts, " ")
}
