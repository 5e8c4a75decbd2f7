package tailor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artem13815/cvtailor/pkg/resume"
)

func letterResume() resume.Resume {
	r := resume.New()
	r.Name = "Ana Pop"
	r.Role = "Backend developer"
	r.Skills = []string{"Go", "SQL"}
	return r
}

func TestHeuristicLetterEnglish(t *testing.T) {
	got := HeuristicLetter(letterResume(), resume.LangEN, LetterOptions{
		RecipientName: "Maria",
		CompanyName:   "Acme",
		JobTitle:      "Backend Engineer",
	})
	want := "Dear Maria,\n\n" +
		"My name is Ana Pop and I am applying for the Backend Engineer role at Acme. " +
		"My background includes Go, SQL, and in prior roles I delivered impact through measurable outcomes. " +
		"I believe my skills match the requirements and I can contribute quickly.\n\n" +
		"Thank you for your time.\n\nBest regards,\nAna Pop"
	assert.Equal(t, want, got)
}

func TestHeuristicLetterDefaults(t *testing.T) {
	r := letterResume()
	r.Role = ""
	r.Skills = []string{"a", "b", "c", "d", "e", "f", "g"}
	r.WorkExperience = []resume.WorkExperience{{Description: "migrating billing to Go"}}

	ro := HeuristicLetter(r, resume.LangRO, LetterOptions{})
	assert.Contains(t, ro, "Bună ziua,")
	assert.Contains(t, ro, "poziția rolul menționat la compania dvs")
	assert.Contains(t, ro, "include a, b, c, d, e,")
	assert.NotContains(t, ro, "f, g")
	assert.Contains(t, ro, "prin migrating billing to Go.")

	it := HeuristicLetter(r, resume.LangIT, LetterOptions{RecipientName: "Luca"})
	assert.Contains(t, it, "Gentile Luca,")
	assert.Contains(t, it, "il ruolo indicato presso la vostra azienda")
}

func TestHeuristicLetterRoleFallbackChain(t *testing.T) {
	r := letterResume()
	assert.Contains(t, HeuristicLetter(r, resume.LangEN, LetterOptions{}), "the Backend developer role")

	r.JobTitle = "Platform Engineer"
	r.Company = "Globex"
	got := HeuristicLetter(r, resume.LangEN, LetterOptions{})
	assert.Contains(t, got, "the Platform Engineer role at Globex")
}

func TestLetterUsesModelReplyVerbatim(t *testing.T) {
	model := &stubLLM{response: "\n  Dear hiring team,\n\nI would love to join.  \n"}
	got := newTestService(model).Letter(context.Background(), letterResume(), LetterOptions{
		TargetLanguage: resume.LangIT,
		CompanyName:    "Acme",
		JobTitle:       "SRE",
	})

	assert.Equal(t, "Dear hiring team,\n\nI would love to join.", got)
	assert.Empty(t, model.system)
	assert.Contains(t, model.user, "cover letter in Italiano")
	assert.Contains(t, model.user, "180-280 words")
	assert.Contains(t, model.user, "Company: Acme")
}

func TestLetterFallsBack(t *testing.T) {
	opts := LetterOptions{TargetLanguage: resume.LangEN, CompanyName: "Acme"}
	want := HeuristicLetter(letterResume(), resume.LangEN, opts)

	for _, model := range []*stubLLM{
		{err: errors.New("http 500")},
		{response: "   \n"},
	} {
		got := newTestService(model).Letter(context.Background(), letterResume(), opts)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, want, newTestService(nil).Letter(context.Background(), letterResume(), opts))
}

func TestLetterLanguageDefaultsToResume(t *testing.T) {
	r := letterResume()
	r.CVLanguage = resume.LangEN
	got := newTestService(nil).Letter(context.Background(), r, LetterOptions{})
	assert.Contains(t, got, "Hello,")
}
