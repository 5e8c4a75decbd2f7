package nlp

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	reNonWord  = regexp.MustCompile(`[^\p{L}\p{N}]+`)
	reNonToken = regexp.MustCompile(`[^\p{L}\p{N}+.#-]+`)
	reSpaces   = regexp.MustCompile(`\s+`)
)

// NormalizeText lowercases s, turns every non letter/digit rune into a space
// and collapses whitespace. Used for phrase matching, where "full-stack" and
// "CI/CD" must read as "full stack" and "ci cd".
func NormalizeText(s string) string {
	s = strings.ToLower(s)
	s = reNonWord.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// normalizeTokens is NormalizeText that keeps + . # - so tokens like
// "c++" and "node.js" survive.
func normalizeTokens(s string) string {
	s = strings.ToLower(s)
	s = reNonToken.ReplaceAllString(s, " ")
	s = reSpaces.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// IsWordRune reports whether r counts as part of a word for whole-word matching.
func IsWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
