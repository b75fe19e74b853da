package classifier

import (
	"courseaudit/internal/models"
	"courseaudit/internal/textnorm"
)

// EthicsClassifier flags ethics-related course text. The row classifier
// treats it as an opaque total function of title and description with no
// side effects.
type EthicsClassifier interface {
	IsMatch(title, description string) bool
}

// RowClassifier combines the tiered pattern engine, the fuzzy backstop, and
// the ethics collaborator into per-row classification flags.
type RowClassifier struct {
	classifier     *Classifier
	fuzzy          *FuzzyMatcher
	ethics         EthicsClassifier
	fuzzyThreshold int
	fuzzyEnabled   bool
}

// NewRowClassifier wires a row classifier. The ethics classifier may be nil,
// in which case the ethics flag is always false.
func NewRowClassifier(rules RuleSet, fuzzyPhrases []string, ethics EthicsClassifier, fuzzyThreshold int, fuzzyEnabled bool) *RowClassifier {
	return &RowClassifier{
		classifier:     New(rules),
		fuzzy:          NewFuzzyMatcher(fuzzyPhrases),
		ethics:         ethics,
		fuzzyThreshold: fuzzyThreshold,
		fuzzyEnabled:   fuzzyEnabled,
	}
}

// ClassifyRow classifies one course row. The joint text is normalized once
// and reused for every rule and for fuzzy scoring. Absent or garbled text
// degrades to false flags; classification never fails.
func (rc *RowClassifier) ClassifyRow(title, description string) models.ClassificationResult {
	textNorm := textnorm.Normalize(textnorm.JoinFields(title, description))

	result := models.ClassificationResult{
		MatchReasons: rc.classifier.MatchLabels(textNorm),
	}

	matched := rc.classifier.Match(textNorm)

	if rc.fuzzyEnabled {
		score, phrase := rc.fuzzy.BestMatch(textNorm)
		result.FuzzyScore = score

		if score >= rc.fuzzyThreshold {
			result.FuzzyPhrase = phrase
			matched = true
		}
	}

	result.AIRelated = matched

	if rc.ethics != nil {
		result.EthicsRelated = rc.ethics.IsMatch(title, description)
	}

	return result
}
