package analysis

import (
	"regexp"
	"strings"
)

var (
	nonEssentialPattern = regexp.MustCompile(`[^a-z\s']`)
	whitespacePattern   = regexp.MustCompile(`\s+`)
)

// Normalize lowercases text, replaces anything that is not a letter,
// whitespace or apostrophe with a space and collapses whitespace runs.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonEssentialPattern.ReplaceAllString(text, " ")
	text = whitespacePattern.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
