package tailor

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/artem13815/cvtailor/pkg/match"
	"github.com/artem13815/cvtailor/pkg/nlp"
	"github.com/artem13815/cvtailor/pkg/resume"
)

var relevanceSentence = map[resume.Language]string{
	resume.LangRO: "Profil orientat către rolul de %s.",
	resume.LangEN: "Profile focused on the %s role.",
	resume.LangIT: "Profilo orientato al ruolo di %s.",
}

// adaptHeuristic emphasizes job keywords, reorders experience and extends
// skills. base is already a private copy.
func (s *service) adaptHeuristic(base resume.Resume, lang resume.Language) resume.Resume {
	out := base.Clone()
	kws := s.ex.Extract(strings.TrimSpace(base.JobTitle+" "+base.JobDescription), match.KeywordLimit)

	out.ProfessionalSummary = Emphasize(base.ProfessionalSummary, kws)
	if title := strings.TrimSpace(base.JobTitle); title != "" &&
		!strings.Contains(strings.ToLower(base.ProfessionalSummary), strings.ToLower(title)) {
		sentence := fmt.Sprintf(relevanceSentence[lang], title)
		if strings.TrimSpace(out.ProfessionalSummary) == "" {
			out.ProfessionalSummary = sentence
		} else {
			out.ProfessionalSummary = strings.TrimRight(out.ProfessionalSummary, " ") + " " + sentence
		}
	}

	out.WorkExperience = ReorderExperience(out.WorkExperience, kws)
	for i := range out.WorkExperience {
		w := &out.WorkExperience[i]
		w.Description = Emphasize(w.Description, kws)
		for j := range w.Bullets {
			w.Bullets[j] = Emphasize(w.Bullets[j], kws)
		}
	}

	out.Skills = MergeSkills(base.Skills, kws)
	return out
}

// Emphasize upper-cases every whole-word, case-insensitive occurrence of the
// keywords in text.
func Emphasize(text string, keywords []string) string {
	if text == "" {
		return text
	}
	for _, kw := range keywords {
		if strings.TrimSpace(kw) == "" {
			continue
		}
		text = emphasizeOne(text, kw)
	}
	return text
}

func emphasizeOne(text, kw string) string {
	re, err := regexp.Compile(`(?i)` + keywordPattern(kw))
	if err != nil {
		return text
	}
	locs := re.FindAllStringIndex(text, -1)
	if len(locs) == 0 {
		return text
	}
	var b strings.Builder
	last := 0
	for _, loc := range locs {
		start, end := loc[0], loc[1]
		if !wordBoundary(text, start, end) {
			continue
		}
		b.WriteString(text[last:start])
		b.WriteString(strings.ToUpper(text[start:end]))
		last = end
	}
	b.WriteString(text[last:])
	return b.String()
}

// keywordPattern lets the spaces of a normalized phrase match the separators
// it had in the original text, so "ci cd" finds "CI/CD" and "full stack"
// finds "Full-Stack".
func keywordPattern(kw string) string {
	parts := strings.Fields(kw)
	for i, p := range parts {
		parts[i] = regexp.QuoteMeta(p)
	}
	return strings.Join(parts, `[\s\-/]+`)
}

// wordBoundary reports whether text[start:end] is not glued to other word runes.
func wordBoundary(text string, start, end int) bool {
	if start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:start])
		if nlp.IsWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		r, _ := utf8.DecodeRuneInString(text[end:])
		if nlp.IsWordRune(r) {
			return false
		}
	}
	return true
}

// ReorderExperience stably sorts entries by how many keywords occur in their
// role, company and description, most relevant first. The input is not modified.
func ReorderExperience(entries []resume.WorkExperience, keywords []string) []resume.WorkExperience {
	type scored struct {
		w     resume.WorkExperience
		score int
	}
	list := make([]scored, len(entries))
	for i, w := range entries {
		text := w.Role + " " + w.Company + " " + w.Description
		lower, normalized := strings.ToLower(text), nlp.NormalizeText(text)
		n := 0
		for _, kw := range keywords {
			if mentions(lower, normalized, kw) {
				n++
			}
		}
		list[i] = scored{w: w, score: n}
	}
	sort.SliceStable(list, func(i, j int) bool { return list[i].score > list[j].score })

	out := make([]resume.WorkExperience, len(list))
	for i, s := range list {
		out[i] = s.w
	}
	return out
}

// MergeSkills keeps the existing skills, those mentioning a keyword first,
// then appends each keyword not yet listed, capitalized. Duplicates are
// dropped case-insensitively.
func MergeSkills(skills, keywords []string) []string {
	seen := make(map[string]struct{}, len(skills)+len(keywords))
	var relevant, rest []string
	for _, sk := range skills {
		sk = strings.TrimSpace(sk)
		if sk == "" {
			continue
		}
		key := skillKey(sk)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		if mentionsAny(sk, keywords) {
			relevant = append(relevant, sk)
		} else {
			rest = append(rest, sk)
		}
	}

	out := make([]string, 0, len(relevant)+len(rest)+len(keywords))
	out = append(out, relevant...)
	out = append(out, rest...)
	for _, kw := range keywords {
		key := skillKey(kw)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, capitalize(kw))
	}
	return out
}

// skillKey folds spellings of the same skill together: "CI/CD" and "ci cd"
// share a key, while "C++" and "C#" stay apart.
func skillKey(s string) string {
	if n := nlp.NormalizeText(s); strings.Contains(n, " ") {
		return n
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func mentionsAny(text string, keywords []string) bool {
	lower, normalized := strings.ToLower(text), nlp.NormalizeText(text)
	for _, kw := range keywords {
		if mentions(lower, normalized, kw) {
			return true
		}
	}
	return false
}

// mentions matches single tokens as substrings of the lowercased text and
// phrases as whole words of the normalized text.
func mentions(lower, normalized, kw string) bool {
	if strings.Contains(kw, " ") {
		return nlp.ContainsPhrase(normalized, nlp.NormalizeText(kw))
	}
	return strings.Contains(lower, kw)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
