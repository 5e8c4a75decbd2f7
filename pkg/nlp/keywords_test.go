package nlp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractKeywords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{
			name:  "empty text",
			text:  "",
			limit: 10,
			want:  []string{},
		},
		{
			name:  "whitespace only",
			text:  " \n\t ",
			limit: 10,
			want:  []string{},
		},
		{
			name:  "only short and stop words",
			text:  "a to be or the and",
			limit: 10,
			want:  []string{},
		},
		{
			name:  "frequency order with encounter tie-break",
			text:  "Go developer. Kubernetes, Docker and Kubernetes; docker? Developer!",
			limit: 10,
			want:  []string{"developer", "kubernetes", "docker"},
		},
		{
			name:  "tech suffixes survive",
			text:  "C++ and Node.js, plus ASP.NET.",
			limit: 10,
			want:  []string{"c++", "node.js", "plus", "asp.net"},
		},
		{
			name:  "phrase outweighs single words",
			text:  "Python python python. Machine learning experience.",
			limit: 3,
			want:  []string{"machine learning", "python", "machine"},
		},
		{
			name:  "limit truncates",
			text:  "alpha beta gamma delta epsilon",
			limit: 2,
			want:  []string{"alpha", "beta"},
		},
		{
			name:  "zero limit",
			text:  "alpha beta",
			limit: 0,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKeywords(tt.text, tt.limit))
		})
	}
}

func TestExtractKeywordsJobScenario(t *testing.T) {
	got := ExtractKeywords("Looking for a React developer with TypeScript and CSS experience", 20)
	assert.Equal(t, []string{"looking", "react", "developer", "typescript", "css", "experience"}, got)
}

func TestExtractKeywordsPhraseVariants(t *testing.T) {
	got := ExtractKeywords("Full-stack engineer with CI/CD pipelines", 5)
	require.NotEmpty(t, got)
	assert.Contains(t, got, "full stack")
	assert.Contains(t, got, "ci cd")
}

func TestExtractKeywordsDropsShortSymbolTokens(t *testing.T) {
	assert.Equal(t, []string{"developer"}, ExtractKeywords("C# and F# developer", 10))
	assert.Equal(t, []string{"c++", "node.js"}, ExtractKeywords("C++ node.js", 10))
}

func TestExtractKeywordsIdempotent(t *testing.T) {
	text := "Senior backend engineer: Go, PostgreSQL, Kafka, REST API design, unit testing, Go again."
	first := ExtractKeywords(text, 12)
	second := ExtractKeywords(text, 12)
	assert.Equal(t, first, second)
}

func TestExtractKeywordsCaseInsensitive(t *testing.T) {
	assert.Equal(t, ExtractKeywords("React", 5), ExtractKeywords("react", 5))
	assert.Equal(t, []string{"react"}, ExtractKeywords("REACT", 5))
}

func TestExtractKeywordsRespectsLimit(t *testing.T) {
	text := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen"
	for limit := 1; limit <= 20; limit++ {
		assert.LessOrEqual(t, len(ExtractKeywords(text, limit)), limit)
	}
}

func TestExtractorExtraPhrases(t *testing.T) {
	ex := NewExtractor("Event Sourcing", "single", "  ")
	got := ex.Extract("We use event sourcing and CQRS", 3)
	assert.Equal(t, "event sourcing", got[0])
}

func TestCountPhrase(t *testing.T) {
	assert.Equal(t, 2, CountPhrase("ci cd ci cd", "ci cd"))
	assert.Equal(t, 0, CountPhrase("rest apis", "rest api"))
	assert.True(t, ContainsPhrase("we build a rest api here", "rest api"))
	assert.False(t, ContainsPhrase("", "rest api"))
}

func TestLoadPhrases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "phrases.yaml")
	require.NoError(t, os.WriteFile(path, []byte("phrases:\n  - event sourcing\n  - site reliability\n"), 0o600))

	got, err := LoadPhrases(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"event sourcing", "site reliability"}, got)

	_, err = LoadPhrases(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
