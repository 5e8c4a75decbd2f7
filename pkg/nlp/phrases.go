package nlp

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v4"
)

// DefaultPhrases is the curated dictionary of multi-word technical phrases.
// Entries are stored in NormalizeText form.
var DefaultPhrases = []string{
	"machine learning",
	"deep learning",
	"data science",
	"data analysis",
	"data engineering",
	"computer vision",
	"natural language processing",
	"artificial intelligence",
	"full stack",
	"front end",
	"back end",
	"ci cd",
	"rest api",
	"unit testing",
	"test automation",
	"cloud computing",
	"google cloud",
	"react native",
	"spring boot",
	"ruby on rails",
	"project management",
	"product management",
	"agile methodology",
	"scrum master",
	"customer service",
	"customer support",
	"business analysis",
	"digital marketing",
	"social media",
	"supply chain",
	"quality assurance",
	"technical support",
	"user experience",
	"user interface",
	"software development",
	"software engineering",
	"web development",
	"mobile development",
	"version control",
	"problem solving",
	"team leadership",
	"microsoft office",
	"power bi",
}

type phraseFile struct {
	Phrases []string `yaml:"phrases"`
}

// LoadPhrases reads an additional phrase list from a YAML file of the form
//
//	phrases:
//	  - event sourcing
//	  - site reliability
func LoadPhrases(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read phrases file: %w", err)
	}
	var pf phraseFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse phrases file %s: %w", path, err)
	}
	return pf.Phrases, nil
}
