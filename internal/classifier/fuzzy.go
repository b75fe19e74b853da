package classifier

import (
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"courseaudit/internal/textnorm"
)

// FuzzyMatcher scores normalized text against a curated phrase list using
// partial-ratio similarity. It is a recall backstop for typos and small
// variations, OR'd into the tiered result by the row classifier.
type FuzzyMatcher struct {
	phrases []string
}

// NewFuzzyMatcher builds a matcher from the given phrases. Phrases are
// normalized once at construction.
func NewFuzzyMatcher(phrases []string) *FuzzyMatcher {
	normalized := make([]string, 0, len(phrases))
	for _, phrase := range phrases {
		normalized = append(normalized, textnorm.Normalize(phrase))
	}

	return &FuzzyMatcher{phrases: normalized}
}

// Score returns the maximum partial-ratio score in [0,100] across all
// phrases. Empty text scores 0.
func (m *FuzzyMatcher) Score(textNorm string) int {
	score, _ := m.BestMatch(textNorm)

	return score
}

// BestMatch returns the maximum partial-ratio score and the phrase that
// produced it. Empty text scores 0 with no phrase.
func (m *FuzzyMatcher) BestMatch(textNorm string) (int, string) {
	if textNorm == "" || len(m.phrases) == 0 {
		return 0, ""
	}

	bestScore := -1
	bestPhrase := ""

	for _, phrase := range m.phrases {
		score := fuzzy.PartialRatio(textNorm, phrase)
		if score > bestScore {
			bestScore = score
			bestPhrase = phrase
		}
	}

	return bestScore, bestPhrase
}
