package pipeline

import (
	"regexp"
	"strings"
)

var (
	boldPattern   = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	italicPattern = regexp.MustCompile(`\*([^*]+)\*`)
)

// StripEmphasis replaces **bold** and then *italic* wrappers with their
// inner text. Asterisks that are not part of a matched pair are kept.
func StripEmphasis(text string) string {
	text = boldPattern.ReplaceAllString(text, "${1}")
	return italicPattern.ReplaceAllString(text, "${1}")
}

// SplitLead cuts text at its first colon. The colon itself belongs to
// neither part; rest keeps any leading space. ok is false when text has no colon.
func SplitLead(text string) (lead, rest string, ok bool) {
	return strings.Cut(text, ":")
}
