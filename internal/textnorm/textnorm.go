// Package textnorm canonicalizes free text for reliable pattern matching.
package textnorm

import (
	"regexp"
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Normalize lowercases text, replaces every run of characters outside
// [a-z0-9] with a single space, and trims the result. It is idempotent and
// returns an empty string for empty input.
func Normalize(text string) string {
	lowered := strings.ToLower(text)
	cleaned := nonAlnumPattern.ReplaceAllString(lowered, " ")

	return strings.Join(strings.Fields(cleaned), " ")
}

// JoinFields joins a title and description with a single space so phrases
// split across the two fields stay separated during normalization. A phrase
// can still span the boundary when the title ends with a complete word;
// this is an accepted approximation, not a guarantee.
func JoinFields(title, description string) string {
	return title + " " + description
}

// Words segments text into word tokens using Unicode word boundaries.
// Whitespace and punctuation tokens are dropped.
func Words(text string) []string {
	var out []string

	tokens := words.FromString(text)
	for tokens.Next() {
		token := strings.TrimSpace(tokens.Value())
		if token == "" {
			continue
		}

		out = append(out, token)
	}

	return out
}
