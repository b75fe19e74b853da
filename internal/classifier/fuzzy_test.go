package classifier

import (
	"testing"

	"courseaudit/internal/textnorm"
)

func TestFuzzyScoreEmptyText(t *testing.T) {
	m := NewFuzzyMatcher(AIFuzzyPhrases())

	if score := m.Score(""); score != 0 {
		t.Errorf("Score(\"\") = %d, want 0", score)
	}
}

func TestFuzzyScoreNoPhrases(t *testing.T) {
	m := NewFuzzyMatcher(nil)

	if score := m.Score("machine learning"); score != 0 {
		t.Errorf("Score with no phrases = %d, want 0", score)
	}
}

func TestFuzzyExactPhraseScoresFull(t *testing.T) {
	m := NewFuzzyMatcher(AIFuzzyPhrases())

	score, phrase := m.BestMatch(textnorm.Normalize("Introduction to Machine Learning"))
	if score != 100 {
		t.Errorf("exact phrase score = %d, want 100", score)
	}

	if phrase != "machine learning" {
		t.Errorf("best phrase = %q, want %q", phrase, "machine learning")
	}
}

func TestFuzzyToleratesTypos(t *testing.T) {
	m := NewFuzzyMatcher(AIFuzzyPhrases())

	// Typo'd phrase: no exact pattern would hit this.
	score, phrase := m.BestMatch(textnorm.Normalize("machne learnign fundamentals"))

	if score < 85 {
		t.Errorf("typo'd phrase score = %d, want >= 85", score)
	}

	if score >= 95 {
		t.Errorf("typo'd phrase score = %d, want < 95 (should not pass the precise threshold)", score)
	}

	if phrase != "machine learning" {
		t.Errorf("best phrase = %q, want %q", phrase, "machine learning")
	}
}

func TestFuzzyPhrasesAreNormalizedOnce(t *testing.T) {
	m := NewFuzzyMatcher([]string{"  Machine-Learning  "})

	score, phrase := m.BestMatch("intro to machine learning")
	if score != 100 {
		t.Errorf("score with unnormalized phrase input = %d, want 100", score)
	}

	if phrase != "machine learning" {
		t.Errorf("stored phrase = %q, want normalized form", phrase)
	}
}
