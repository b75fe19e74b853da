package models

// ClassificationResult holds the per-row classification flags.
// It is computed once per row and never mutated afterwards.
type ClassificationResult struct {
	AIRelated     bool
	EthicsRelated bool
	// MatchReasons lists the labels of matched rules, sorted and deduped.
	// Empty for rule sets whose rules carry no labels.
	MatchReasons []string
	// FuzzyScore is the best partial-ratio score across the phrase list,
	// 0 when fuzzy matching is disabled or the text is empty.
	FuzzyScore int
	// FuzzyPhrase is the phrase behind FuzzyScore, set only when the score
	// met the configured threshold.
	FuzzyPhrase string
}

// PrefixSummary counts unique courses for one prefix value.
// An empty Prefix represents rows with a missing prefix.
type PrefixSummary struct {
	Prefix           string
	TotalCourses     int
	AIRelatedCourses int
}

// GlobalSummary is the single-row sanity metric for a run.
type GlobalSummary struct {
	Metric string
	Value  int
}
