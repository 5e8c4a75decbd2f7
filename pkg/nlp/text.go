package nlp

import "strings"

// ContainsPhrase reports whether the already normalized phrase occurs in the
// normalized text as whole words.
// "rest api" is found in "... rest api ..." but not in "... rest apis ...".
func ContainsPhrase(normalizedText, normalizedPhrase string) bool {
	return CountPhrase(normalizedText, normalizedPhrase) > 0
}

// CountPhrase counts whole-word occurrences of a normalized phrase.
// Adjacent repetitions ("ci cd ci cd") are all counted.
func CountPhrase(normalizedText, normalizedPhrase string) int {
	if normalizedPhrase == "" || normalizedText == "" {
		return 0
	}
	hay := " " + normalizedText + " "
	needle := " " + normalizedPhrase + " "
	n := 0
	for i := 0; i < len(hay); {
		j := strings.Index(hay[i:], needle)
		if j < 0 {
			break
		}
		n++
		// the trailing space is shared with the next candidate
		i += j + len(needle) - 1
	}
	return n
}
