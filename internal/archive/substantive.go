package archive

import (
	"regexp"
	"strings"
)

// noContentPhrases mark entries that are only editorial apparatus, not
// proverb text.
var noContentPhrases = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\d+\s*lines?\s*unclear`),
	regexp.MustCompile(`(?i)\d+\s*lines?\s*fragmentary`),
	regexp.MustCompile(`(?i)unknown\s+no\.?\s*of\s*lines?\s*missing`),
	regexp.MustCompile(`(?i)approx\.?\s*\d+\s*lines?\s*missing`),
	regexp.MustCompile(`(?i)^\d+\s*lines?\s*missing\s*$`),
}

var dotsAndSpace = regexp.MustCompile(`[.\s…]+`)

// IsSubstantive reports whether text is real proverb content rather than
// editorial noise like "3 lines unclear". After removing known noise phrases
// and dot runs, substantial text must remain.
func IsSubstantive(text string) bool {
	t := strings.TrimSpace(text)
	if len(t) < 15 {
		return false
	}

	reduced := t
	for _, pat := range noContentPhrases {
		reduced = pat.ReplaceAllString(reduced, " ")
	}
	reduced = strings.TrimSpace(dotsAndSpace.ReplaceAllString(reduced, " "))
	return len(reduced) >= 20
}
