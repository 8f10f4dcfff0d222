package cv

import "strings"

// Lines splits raw text into lines with edge whitespace trimmed.
// Leading and trailing blank lines of the whole text are dropped; interior
// blank lines are kept as empty strings so line numbers stay meaningful.
func Lines(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return lines
}
