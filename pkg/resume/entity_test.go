package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIsNormalized(t *testing.T) {
	r := New()
	assert.Equal(t, LangRO, r.CVLanguage)
	assert.NotEqual(t, [16]byte{}, [16]byte(r.ID))
	assert.False(t, r.CreatedAt.IsZero())
	assert.NotNil(t, r.Skills)
	assert.NotNil(t, r.WorkExperience)
	assert.NotNil(t, r.AcademicHistory)
	assert.NotNil(t, r.Certifications)
	assert.NotNil(t, r.Languages)
	assert.NotNil(t, r.Recipients)
}

func TestNormalizePartialDocument(t *testing.T) {
	var r Resume
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Ana","workExperience":[{"role":"Dev"}]}`), &r))
	r.Normalize()

	assert.Equal(t, "Ana", r.Name)
	require.Len(t, r.WorkExperience, 1)
	assert.NotNil(t, r.WorkExperience[0].Bullets)
	assert.NotNil(t, r.Skills)

	out, err := json.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"skills":[]`)
}

func TestParseLanguage(t *testing.T) {
	for _, code := range []string{"ro", "en", "it"} {
		l, err := ParseLanguage(code)
		require.NoError(t, err)
		assert.Equal(t, Language(code), l)
	}
	_, err := ParseLanguage("de")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	r := New()
	assert.NoError(t, r.Validate())

	r.CVLanguage = "fr"
	assert.ErrorIs(t, r.Validate(), ErrValidation)
}

func TestCloneIsDeep(t *testing.T) {
	r := New()
	r.Skills = []string{"Go"}
	r.WorkExperience = []WorkExperience{{Role: "Dev", Bullets: []string{"shipped"}}}

	c := r.Clone()
	c.Skills[0] = "Rust"
	c.WorkExperience[0].Role = "Lead"
	c.WorkExperience[0].Bullets[0] = "rewrote"

	assert.Equal(t, "Go", r.Skills[0])
	assert.Equal(t, "Dev", r.WorkExperience[0].Role)
	assert.Equal(t, "shipped", r.WorkExperience[0].Bullets[0])
}

func TestWithJob(t *testing.T) {
	r := New()
	r.JobTitle = "Old title"
	r.Company = "Acme"

	got := r.WithJob(JobContext{JobTitle: "Backend Engineer", JobDescription: "Go and Postgres"})
	assert.Equal(t, "Backend Engineer", got.JobTitle)
	assert.Equal(t, "Go and Postgres", got.JobDescription)
	assert.Equal(t, "Acme", got.Company)
	assert.Equal(t, "Old title", r.JobTitle)

	assert.Equal(t, JobContext{JobTitle: "Backend Engineer", JobDescription: "Go and Postgres", CompanyName: "Acme"}, got.Job())
}
