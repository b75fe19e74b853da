package ethics

import "testing"

func TestIsMatch(t *testing.T) {
	m := NewMatcher()

	cases := []struct {
		name  string
		title string
		desc  string
		want  bool
	}{
		{"title unigram", "Professional Ethics", "Course overview.", true},
		{"description bigram", "Philosophy 200", "Focus on moral responsibility in public life.", true},
		{"ethical adjective", "Ethical Issues in Computing", "", true},
		{"unrelated", "Machine Learning", "Supervised and unsupervised methods.", false},
		{"empty", "", "", false},
		{"moral philosophy bigram", "Moral Philosophy of Mind", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := m.IsMatch(tc.title, tc.desc)
			if got != tc.want {
				t.Errorf("IsMatch(%q, %q) = %v, want %v", tc.title, tc.desc, got, tc.want)
			}
		})
	}
}

func TestIsMatchIsTotal(t *testing.T) {
	m := NewMatcher()

	// Garbled input degrades to false, never fails.
	if m.IsMatch("\x00\xff", "!!! ???") {
		t.Error("garbled input should not match")
	}
}
