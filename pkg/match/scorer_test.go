package match

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/cvtailor/pkg/resume"
)

const reactJob = "Looking for a React developer with TypeScript and CSS experience"

func scenarioResume() resume.Resume {
	r := resume.New()
	r.Name = "Ana Pop"
	r.Role = "Frontend engineer"
	r.ProfessionalSummary = "Frontend engineer"
	r.Skills = []string{"JavaScript", "CSS"}
	return r
}

func TestComputeScenario(t *testing.T) {
	got := Compute(scenarioResume(), resume.JobContext{JobDescription: reactJob})

	assert.Equal(t, []string{"css"}, got.Details.KeywordMatch.Matched)
	assert.Equal(t, []string{"looking", "react", "developer", "typescript", "experience"}, got.Details.KeywordMatch.Missing)
	assert.Equal(t, 17, got.Details.KeywordMatch.Score)

	assert.Equal(t, 60, got.Details.Completeness.Score)
	assert.Equal(t, []string{"email", "telefon"}, got.Details.Completeness.MissingFields)

	assert.Equal(t, 0, got.Details.WorkExperience.Score)
	assert.Equal(t, 33, got.Details.Skills.Score)
	assert.Equal(t, 2, got.Details.Skills.Count)

	assert.Equal(t, 24, got.Total)
}

func TestComputeEmptyJobDescription(t *testing.T) {
	got := Compute(scenarioResume(), resume.JobContext{})
	assert.Equal(t, 0, got.Details.KeywordMatch.Score)
	assert.Empty(t, got.Details.KeywordMatch.Matched)
	assert.NotNil(t, got.Details.KeywordMatch.Matched)
	assert.NotNil(t, got.Details.KeywordMatch.Missing)
}

func TestComputeUsesResumeJobFields(t *testing.T) {
	r := scenarioResume()
	r.JobDescription = reactJob

	fromResume := Compute(r, resume.JobContext{})
	explicit := Compute(scenarioResume(), resume.JobContext{JobDescription: reactJob})
	assert.Equal(t, explicit, fromResume)
}

func TestComputeMalformedInputStaysInRange(t *testing.T) {
	inputs := []resume.Resume{
		{},
		{Skills: []string{"", "  "}},
		{WorkExperience: []resume.WorkExperience{{}, {Description: strings.Repeat("x", 500)}}},
		{Name: "  ", Contact: resume.Contact{Email: "\t"}},
	}
	for _, r := range inputs {
		got := Compute(r, resume.JobContext{JobTitle: "Go", JobDescription: strings.Repeat("golang kafka ", 40)})
		assert.GreaterOrEqual(t, got.Total, 0)
		assert.LessOrEqual(t, got.Total, 100)
	}
}

type panickingExtractor struct{}

func (panickingExtractor) Extract(string, int) []string { panic("boom") }

func TestComputeRecoversToZero(t *testing.T) {
	s := NewScorer(panickingExtractor{})
	got := s.Compute(scenarioResume(), resume.JobContext{JobDescription: reactJob})
	assert.Equal(t, Zero(), got)
}

func TestCompletenessMonotonic(t *testing.T) {
	fill := []func(*resume.Resume){
		func(r *resume.Resume) { r.Name = "Ana" },
		func(r *resume.Resume) { r.Role = "Engineer" },
		func(r *resume.Resume) { r.ProfessionalSummary = "Builds things" },
		func(r *resume.Resume) { r.Contact.Email = "ana@example.com" },
		func(r *resume.Resume) { r.Contact.Phone = "+40 700 000 000" },
	}
	var r resume.Resume
	prev := CompletenessOf(r).Score
	assert.Equal(t, 0, prev)
	for _, f := range fill {
		f(&r)
		cur := CompletenessOf(r).Score
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, 100, prev)
	assert.Empty(t, CompletenessOf(r).MissingFields)
}

func TestWorkExperienceOf(t *testing.T) {
	long := strings.Repeat("a", 51)
	tests := []struct {
		name    string
		entries []resume.WorkExperience
		want    int
	}{
		{"none", nil, 0},
		{"one short", []resume.WorkExperience{{Description: "short"}}, 0},
		{"one detailed", []resume.WorkExperience{{Description: long}}, 33},
		{"two of three detailed", []resume.WorkExperience{{Description: long}, {Description: long}, {Description: "x"}}, 67},
		{"four detailed saturates", []resume.WorkExperience{{Description: long}, {Description: long}, {Description: long}, {Description: long}}, 100},
		{"exactly fifty is not detailed", []resume.WorkExperience{{Description: strings.Repeat("a", 50)}}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WorkExperienceOf(resume.Resume{WorkExperience: tt.entries}).Score)
		})
	}
}

func TestSkillsOf(t *testing.T) {
	job := resume.JobContext{JobTitle: "Go Developer", JobDescription: "Kubernetes and PostgreSQL"}

	empty := SkillsOf(resume.Resume{}, job)
	assert.Equal(t, Skills{}, empty)

	many := make([]string, 12)
	for i := range many {
		many[i] = "kubernetes"
	}
	assert.Equal(t, 100, SkillsOf(resume.Resume{Skills: many}, job).Score)

	noJob := SkillsOf(resume.Resume{Skills: many}, resume.JobContext{})
	assert.Equal(t, 50, noJob.Score)
}

func TestAggregate(t *testing.T) {
	tests := []struct {
		name       string
		k, c, w, s int
		want       int
	}{
		{"all zero", 0, 0, 0, 0, 0},
		{"all full", 100, 100, 100, 100, 100},
		{"weighted", 50, 100, 40, 20, 53},
		{"clamps high inputs", 500, 500, 500, 500, 100},
		{"clamps negative inputs", -10, -100, 100, 0, 25},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Aggregate(tt.k, tt.c, tt.w, tt.s))
		})
	}
}

func TestSuggestions(t *testing.T) {
	score := Compute(scenarioResume(), resume.JobContext{JobDescription: reactJob})

	ro := Suggestions(score, resume.LangRO)
	require.Len(t, ro, 4)
	assert.Equal(t, "Adaugă aceste cuvinte cheie importante: looking, react, developer, typescript, experience", ro[0])
	assert.Equal(t, "Completează câmpurile lipsă: email, telefon", ro[1])

	en := Suggestions(score, resume.LangEN)
	assert.Equal(t, "Fill in the missing fields: email, telefon", en[1])

	strong := Score{Details: Details{
		WorkExperience: WorkExperience{Score: 90},
		Skills:         Skills{Score: 90},
	}}
	generic := Suggestions(strong, resume.LangIT)
	assert.Len(t, generic, 3)

	fallback := Suggestions(strong, resume.Language("de"))
	assert.Equal(t, Suggestions(strong, resume.LangRO), fallback)
}
