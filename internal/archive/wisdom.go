package archive

import "strings"

// contrastWords earn one bonus point between them; a proverb that turns on
// itself reads as wiser.
var contrastWords = []string{" not ", " but ", " though ", " yet ", " or "}

// WisdomScore computes a deterministic 1-10 wisdom score from proverb text.
// The same text always scores the same; the score is stored at ingestion.
func WisdomScore(text string) int {
	words := strings.Fields(text)
	n := len(words)

	score := 4 // base
	if strings.Contains(text, "?") {
		score++ // a question suggests reflection
	}
	if n >= 8 && n <= 25 {
		score++ // moderate length
	}
	if strings.ContainsAny(text, ",;") {
		score++ // structured, multiple clauses
	}
	lower := strings.ToLower(text)
	for _, contrast := range contrastWords {
		if strings.Contains(lower, contrast) {
			score++
			break
		}
	}
	if strings.Contains(text, `"`) {
		score++ // cited speech or dialogue
	}

	if score < 1 {
		return 1
	}
	if score > 10 {
		return 10
	}
	return score
}
