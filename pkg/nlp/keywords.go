package nlp

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// PhraseWeight is how much a dictionary phrase hit counts against a single word.
const PhraseWeight = 3

const minTokenLen = 3

var reToken = regexp.MustCompile(`\p{L}[\p{L}\p{N}+.#-]{2,}`)

// stopWords holds common English function words dropped from keyword sets.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "for": {}, "with": {}, "you": {}, "your": {},
	"are": {}, "was": {}, "were": {}, "been": {}, "being": {}, "have": {},
	"has": {}, "had": {}, "will": {}, "would": {}, "should": {}, "could": {},
	"can": {}, "may": {}, "this": {}, "that": {}, "these": {}, "those": {},
	"from": {}, "into": {}, "onto": {}, "about": {}, "over": {}, "under": {},
	"our": {}, "ours": {}, "their": {}, "they": {}, "them": {}, "its": {},
	"his": {}, "her": {}, "she": {}, "him": {}, "who": {}, "whom": {},
	"what": {}, "which": {}, "when": {}, "where": {}, "why": {}, "how": {},
	"not": {}, "but": {}, "all": {}, "any": {}, "also": {}, "more": {},
	"most": {}, "than": {}, "then": {}, "such": {}, "some": {}, "other": {},
	"each": {}, "per": {}, "via": {}, "using": {}, "use": {}, "etc": {},
	"there": {}, "here": {}, "both": {}, "very": {}, "just": {}, "only": {},
	"own": {}, "out": {}, "does": {}, "did": {}, "doing": {}, "while": {},
	"within": {}, "without": {}, "across": {}, "including": {}, "upon": {},
}

// IsStopWord reports whether w (lowercase) is in the stop-word set.
func IsStopWord(w string) bool {
	_, ok := stopWords[w]
	return ok
}

// Extractor ranks keywords and dictionary phrases by weighted frequency.
// The zero value has no phrase dictionary; use NewExtractor.
type Extractor struct {
	phrases []string
}

// NewExtractor returns an Extractor over DefaultPhrases plus extra.
// Extra phrases are normalized; duplicates and blanks are dropped.
func NewExtractor(extra ...string) *Extractor {
	seen := make(map[string]struct{})
	var phrases []string
	add := func(p string) {
		p = NormalizeText(p)
		if p == "" || !strings.Contains(p, " ") {
			return
		}
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		phrases = append(phrases, p)
	}
	for _, p := range DefaultPhrases {
		add(p)
	}
	for _, p := range extra {
		add(p)
	}
	return &Extractor{phrases: phrases}
}

var defaultExtractor = NewExtractor()

// Default returns the shared extractor over DefaultPhrases.
func Default() *Extractor { return defaultExtractor }

// ExtractKeywords ranks keywords of text with the default dictionary.
func ExtractKeywords(text string, limit int) []string {
	return defaultExtractor.Extract(text, limit)
}

type rankedKeyword struct {
	term   string
	weight int
	order  int
}

// Extract returns at most limit keywords of text, heaviest first. Ties keep
// first-encounter order, phrases before single words.
func (e *Extractor) Extract(text string, limit int) []string {
	if limit <= 0 || strings.TrimSpace(text) == "" {
		return []string{}
	}

	ranked := make(map[string]*rankedKeyword)
	order := 0
	bump := func(term string, w int) {
		if k, ok := ranked[term]; ok {
			k.weight += w
			return
		}
		ranked[term] = &rankedKeyword{term: term, weight: w, order: order}
		order++
	}

	if e != nil && len(e.phrases) > 0 {
		phraseText := NormalizeText(text)
		type hit struct {
			phrase string
			pos    int
			count  int
		}
		var hits []hit
		for _, p := range e.phrases {
			if n := CountPhrase(phraseText, p); n > 0 {
				pos := strings.Index(" "+phraseText+" ", " "+p+" ")
				hits = append(hits, hit{phrase: p, pos: pos, count: n})
			}
		}
		sort.SliceStable(hits, func(i, j int) bool { return hits[i].pos < hits[j].pos })
		for _, h := range hits {
			bump(h.phrase, h.count*PhraseWeight)
		}
	}

	for _, tok := range reToken.FindAllString(normalizeTokens(text), -1) {
		tok = strings.TrimRight(tok, ".-")
		if utf8.RuneCountInString(tok) < minTokenLen || IsStopWord(tok) {
			continue
		}
		bump(tok, 1)
	}

	list := make([]*rankedKeyword, 0, len(ranked))
	for _, k := range ranked {
		list = append(list, k)
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].weight != list[j].weight {
			return list[i].weight > list[j].weight
		}
		return list[i].order < list[j].order
	})
	if len(list) > limit {
		list = list[:limit]
	}
	out := make([]string, len(list))
	for i, k := range list {
		out[i] = k.term
	}
	return out
}
