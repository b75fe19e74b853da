package textnorm

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercase", "Machine Learning", "machine learning"},
		{"punctuation collapsed", "AI/ML: a survey!", "ai ml a survey"},
		{"whitespace folded", "  deep\t\nlearning  ", "deep learning"},
		{"digits kept", "CS 599", "cs 599"},
		{"only punctuation", "!!! --- ???", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Normalize(tc.in)
			if got != tc.want {
				t.Errorf("Normalize(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"", "Machine Learning!", "  A--B  ", "déjà vu", "42"}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)

		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestJoinFieldsKeepsBoundary(t *testing.T) {
	// A title ending mid-word must not fuse with the description into a
	// phrase match.
	got := Normalize(JoinFields("Intro to deep", "learning for engineers"))
	want := "intro to deep learning for engineers"

	if got != want {
		t.Errorf("normalized join = %q, want %q", got, want)
	}

	fused := Normalize(JoinFields("Intro to dee", "plearning"))
	if fused != "intro to dee plearning" {
		t.Errorf("fields fused across boundary: %q", fused)
	}
}

func TestWords(t *testing.T) {
	got := Words("machine learning 101")
	want := []string{"machine", "learning", "101"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("Words = %v, want %v", got, want)
	}

	if w := Words(""); w != nil {
		t.Errorf("Words(\"\") = %v, want nil", w)
	}
}
