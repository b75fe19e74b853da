package classifier

import "sort"

// Classifier evaluates a rule set against normalized text.
type Classifier struct {
	rules RuleSet
}

// New creates a classifier for the given rule set. The rule set is treated
// as immutable configuration; independent instances can run different sets.
func New(rules RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Match reports whether the normalized text matches the rule set.
//
// Tiered rules resolve as: primary OR (secondary AND context). Labeled
// rules fire independently; any labeled hit counts.
func (c *Classifier) Match(textNorm string) bool {
	if textNorm == "" {
		return false
	}

	var primary, secondary, context, labeled bool

	for _, r := range c.rules.Rules {
		if !r.Pattern.MatchString(textNorm) {
			continue
		}

		switch r.Tier {
		case TierPrimary:
			primary = true
		case TierSecondary:
			secondary = true
		case TierContext:
			context = true
		case TierLabeled:
			labeled = true
		}
	}

	return primary || (secondary && context) || labeled
}

// MatchLabels returns the labels of all matching rules, sorted and deduped.
// Rules without a label contribute nothing.
func (c *Classifier) MatchLabels(textNorm string) []string {
	if textNorm == "" {
		return nil
	}

	seen := make(map[string]bool)

	var labels []string

	for _, r := range c.rules.Rules {
		if r.Label == "" || seen[r.Label] {
			continue
		}

		if r.Pattern.MatchString(textNorm) {
			seen[r.Label] = true

			labels = append(labels, r.Label)
		}
	}

	sort.Strings(labels)

	return labels
}
