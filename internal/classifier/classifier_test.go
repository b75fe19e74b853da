package classifier

import (
	"reflect"
	"testing"

	"courseaudit/internal/textnorm"
)

func normalized(title, description string) string {
	return textnorm.Normalize(textnorm.JoinFields(title, description))
}

func TestMatchPrimaryStandsAlone(t *testing.T) {
	c := New(AIRules())

	cases := []struct {
		name  string
		title string
		desc  string
		want  bool
	}{
		{"neural networks", "Intro to AI", "Covers neural networks.", true},
		{"machine learning", "Data Mining", "Applications of machine learning.", true},
		{"no ai terms", "Organic Chemistry", "Structure of carbon compounds.", false},
		{"empty", "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := c.Match(normalized(tc.title, tc.desc))
			if got != tc.want {
				t.Errorf("Match = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestMatchSecondaryRequiresContext(t *testing.T) {
	c := New(AIRules())

	// "ethics" alone is not AI-related.
	if c.Match(normalized("Professional Ethics", "Discusses moral responsibility.")) {
		t.Error("secondary term without context should not match")
	}

	// The same secondary term with an AI context term counts.
	if !c.Match(normalized("Professional Ethics", "Uses artificial intelligence and raises ethics concerns.")) {
		t.Error("secondary term with context should match")
	}

	// Primary plus context-gated secondary in one text.
	if !c.Match(normalized("Intelligent Agents Seminar", "Studies artificial intelligence and autonomous systems.")) {
		t.Error("primary hit with gated secondary should match")
	}
}

func TestMatchMonotonicOnPrimaryPhrase(t *testing.T) {
	c := New(AIRules())

	base := "History of Mathematics Covers ancient geometry."
	if c.Match(textnorm.Normalize(base)) {
		t.Fatal("base text unexpectedly matches")
	}

	if !c.Match(textnorm.Normalize(base + " Includes Machine Learning methods.")) {
		t.Error("adding a primary phrase must flip the match to true")
	}

	already := "Covers deep learning."
	if !c.Match(textnorm.Normalize(already + " Includes Machine Learning methods.")) {
		t.Error("adding text must never flip a true match to false")
	}
}

func TestMatchLabels(t *testing.T) {
	c := New(BroadRules())

	text := textnorm.Normalize("NLP and natural language processing with robotics")

	got := c.MatchLabels(text)
	want := []string{"nlp", "robotics"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("MatchLabels = %v, want %v", got, want)
	}

	if labels := c.MatchLabels(""); labels != nil {
		t.Errorf("MatchLabels on empty text = %v, want nil", labels)
	}
}

func TestBroadRulesFireWithoutGating(t *testing.T) {
	c := New(BroadRules())

	// "autonomous" needs no context in the broad set.
	if !c.Match(textnorm.Normalize("Autonomous vehicle dynamics")) {
		t.Error("broad rule should fire without a context term")
	}
}

func TestLegacyKeywordRulesMatchSubstrings(t *testing.T) {
	c := New(LegacyKeywordRules())

	// Legacy keywords match as plain substrings: "agent" hits "agents".
	if !c.Match(textnorm.Normalize("Seminar on travel agents")) {
		t.Error("legacy keyword should match as substring")
	}

	if c.Match(textnorm.Normalize("Structural engineering basics")) {
		t.Error("unrelated text should not match legacy keywords")
	}
}
