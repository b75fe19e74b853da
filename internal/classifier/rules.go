// Package classifier implements the tiered pattern engine that flags
// AI-related course text, plus the fuzzy phrase matcher used as a recall
// backstop for typos and variants.
package classifier

import "regexp"

// Tier assigns a rule to a matching stage.
type Tier int

// Rule tiers. Primary rules match standalone. Secondary rules only count
// when at least one Context rule also matches the same text. Labeled rules
// fire independently and contribute their label to the match reasons.
const (
	TierPrimary Tier = iota
	TierSecondary
	TierContext
	TierLabeled
)

// Rule is a single compiled pattern with its tier assignment.
type Rule struct {
	Label   string
	Tier    Tier
	Pattern *regexp.Regexp
}

// RuleSet is an immutable bundle of rules evaluated together.
type RuleSet struct {
	Name  string
	Rules []Rule
}

func rule(tier Tier, label, pattern string) Rule {
	return Rule{
		Label:   label,
		Tier:    tier,
		Pattern: regexp.MustCompile(pattern),
	}
}

// AIRules returns the precise tiered rule set. Primary terms are
// unambiguous AI phrases. Secondary terms are common in non-AI contexts and
// require a co-occurring context term. The context list intentionally
// overlaps the primary list: a primary phrase both matches on its own and
// unlocks secondary terms in the same text.
func AIRules() RuleSet {
	return RuleSet{
		Name: "precise",
		Rules: []Rule{
			rule(TierPrimary, "", `\bartificial intelligence\b`),
			rule(TierPrimary, "", `\bmachine learning\b`),
			rule(TierPrimary, "", `\bdeep learning\b`),
			rule(TierPrimary, "", `\bgenerative ai\b`),
			rule(TierPrimary, "", `\blarge language model(s)?\b`),
			rule(TierPrimary, "", `\bllm\b`),
			rule(TierPrimary, "", `\bgpt\b`),
			rule(TierPrimary, "", `\bchatgpt\b`),
			rule(TierPrimary, "", `\bneural network(s)?\b`),
			rule(TierPrimary, "", `\breinforcement learning\b`),
			rule(TierPrimary, "", `\bnatural language processing\b`),
			rule(TierPrimary, "", `\bnlp\b`),
			rule(TierPrimary, "", `\bcomputer vision\b`),
			rule(TierPrimary, "", `\bintelligent systems?\b`),
			rule(TierPrimary, "", `\bai\b`),
			rule(TierPrimary, "", `\bagentic\b`),
			rule(TierPrimary, "", `\bmulti[- ]agent(s)?\b`),
			rule(TierPrimary, "", `\bintelligent agents?\b`),

			rule(TierSecondary, "", `\bethic(s|al)?\b`),
			rule(TierSecondary, "", `\bagent(s)?\b`),
			rule(TierSecondary, "", `\bautonomous systems?\b`),

			rule(TierContext, "", `\bai\b`),
			rule(TierContext, "", `\bartificial intelligence\b`),
			rule(TierContext, "", `\bmachine learning\b`),
			rule(TierContext, "", `\bdeep learning\b`),
			rule(TierContext, "", `\bgenerative ai\b`),
			rule(TierContext, "", `\blarge language model(s)?\b`),
			rule(TierContext, "", `\bllm\b`),
			rule(TierContext, "", `\bgpt\b`),
			rule(TierContext, "", `\bchatgpt\b`),
			rule(TierContext, "", `\bneural network(s)?\b`),
			rule(TierContext, "", `\bnatural language processing\b`),
			rule(TierContext, "", `\bnlp\b`),
			rule(TierContext, "", `\bcomputer vision\b`),
			rule(TierContext, "", `\bintelligent systems?\b`),
		},
	}
}

// AIFuzzyPhrases returns the curated phrases scored by the fuzzy matcher in
// the precise analysis.
func AIFuzzyPhrases() []string {
	return []string{
		"artificial intelligence",
		"machine learning",
		"deep learning",
		"generative ai",
		"large language model",
		"neural network",
		"reinforcement learning",
		"natural language processing",
		"computer vision",
		"intelligent systems",
		"intelligent agent",
		"multi agent",
		"agentic",
	}
}

// BroadRules returns the flat labeled rule set for the broad recall search.
// There is no gating: every rule fires independently and records its label.
// The result is a candidate list for manual review, not authoritative truth.
func BroadRules() RuleSet {
	return RuleSet{
		Name: "broad",
		Rules: []Rule{
			rule(TierLabeled, "artificial_intelligence", `\bartificial intelligence\b`),
			rule(TierLabeled, "ai", `\bai\b`),
			rule(TierLabeled, "machine_learning", `\bmachine learning\b`),
			rule(TierLabeled, "deep_learning", `\bdeep learning\b`),
			rule(TierLabeled, "generative_ai", `\bgenerative ai\b`),
			rule(TierLabeled, "llm", `\blarge language model(s)?\b`),
			rule(TierLabeled, "llm", `\bllm\b`),
			rule(TierLabeled, "gpt", `\bgpt\b`),
			rule(TierLabeled, "chatgpt", `\bchatgpt\b`),
			rule(TierLabeled, "neural_network", `\bneural network(s)?\b`),
			rule(TierLabeled, "reinforcement_learning", `\breinforcement learning\b`),
			rule(TierLabeled, "nlp", `\bnatural language processing\b`),
			rule(TierLabeled, "nlp", `\bnlp\b`),
			rule(TierLabeled, "computer_vision", `\bcomputer vision\b`),
			rule(TierLabeled, "machine_vision", `\bmachine vision\b`),
			rule(TierLabeled, "image_processing", `\bimage processing\b`),
			rule(TierLabeled, "pattern_recognition", `\bpattern recognition\b`),
			rule(TierLabeled, "data_mining", `\bdata mining\b`),
			rule(TierLabeled, "information_retrieval", `\binformation retrieval\b`),
			rule(TierLabeled, "expert_systems", `\bexpert systems?\b`),
			rule(TierLabeled, "knowledge_representation", `\bknowledge representation\b`),
			rule(TierLabeled, "intelligent_systems", `\bintelligent systems?\b`),
			rule(TierLabeled, "intelligent_agents", `\bintelligent agents?\b`),
			rule(TierLabeled, "autonomous_systems", `\bautonomous systems?\b`),
			rule(TierLabeled, "autonomous", `\bautonomous\b`),
			rule(TierLabeled, "robotics", `\brobotics?\b`),
			rule(TierLabeled, "computational_intelligence", `\bcomputational intelligence\b`),
			rule(TierLabeled, "speech_recognition", `\bspeech recognition\b`),
			rule(TierLabeled, "recommendation_systems", `\brecommendation systems?\b`),
			rule(TierLabeled, "recommender_systems", `\brecommender systems?\b`),
			rule(TierLabeled, "decision_support", `\bdecision support\b`),
			rule(TierLabeled, "intelligent_control", `\bintelligent control\b`),
			rule(TierLabeled, "data_science", `\bdata science\b`),
		},
	}
}

// BroadFuzzyPhrases returns the phrase list for the broad recall search.
func BroadFuzzyPhrases() []string {
	return []string{
		"artificial intelligence",
		"machine learning",
		"deep learning",
		"generative ai",
		"large language model",
		"neural network",
		"reinforcement learning",
		"natural language processing",
		"computer vision",
		"pattern recognition",
		"data mining",
		"information retrieval",
		"expert systems",
		"knowledge representation",
		"intelligent systems",
		"intelligent agent",
		"autonomous systems",
		"computational intelligence",
		"speech recognition",
		"recommendation systems",
		"recommender systems",
		"decision support",
		"intelligent control",
		"data science",
	}
}

// LegacyKeywordRules returns the original flat keyword list expressed as a
// labeled rule set. Keywords match as plain substrings of the normalized
// text, without word boundaries, to preserve the legacy behavior.
func LegacyKeywordRules() RuleSet {
	keywords := []string{
		"agent",
		"agentic",
		"ethics",
		"llm",
		"deep learning",
		"generative ai",
		"artificial intelligence",
		"machine learning",
		"gpt",
		"chatgpt",
	}

	rules := make([]Rule, 0, len(keywords))
	for _, keyword := range keywords {
		rules = append(rules, rule(TierLabeled, keyword, regexp.QuoteMeta(keyword)))
	}

	return RuleSet{Name: "legacy", Rules: rules}
}

// LegacyFuzzyPhrases returns the legacy keyword list used for fuzzy scoring.
func LegacyFuzzyPhrases() []string {
	return []string{
		"agent",
		"agentic",
		"ethics",
		"llm",
		"deep learning",
		"generative ai",
		"artificial intelligence",
		"machine learning",
		"gpt",
		"chatgpt",
	}
}
