// Package ethics classifies course text as ethics-related. It runs
// independently of the AI classifier and is consumed as an opaque boolean
// function of title and description.
package ethics

import (
	"courseaudit/internal/textnorm"
)

// Matcher flags ethics-related course text by matching curated single words
// and two-word phrases against the segmented, normalized text.
type Matcher struct {
	unigrams map[string]bool
	bigrams  map[string]bool
}

// NewMatcher builds a matcher with the curated ethics term lists.
func NewMatcher() *Matcher {
	unigrams := []string{
		"ethics",
		"ethical",
		"bioethics",
		"morality",
	}

	bigrams := []string{
		"moral responsibility",
		"moral reasoning",
		"moral philosophy",
		"professional responsibility",
		"social responsibility",
		"responsible ai",
		"responsible computing",
		"academic integrity",
		"research integrity",
	}

	m := &Matcher{
		unigrams: make(map[string]bool, len(unigrams)),
		bigrams:  make(map[string]bool, len(bigrams)),
	}

	for _, w := range unigrams {
		m.unigrams[w] = true
	}

	for _, p := range bigrams {
		m.bigrams[p] = true
	}

	return m
}

// IsMatch reports whether the title or description is ethics-related.
// It is a total function: empty or missing text never matches and never
// fails.
func (m *Matcher) IsMatch(title, description string) bool {
	tokens := textnorm.Words(textnorm.Normalize(textnorm.JoinFields(title, description)))

	for i, token := range tokens {
		if m.unigrams[token] {
			return true
		}

		if i+1 < len(tokens) && m.bigrams[token+" "+tokens[i+1]] {
			return true
		}
	}

	return false
}
