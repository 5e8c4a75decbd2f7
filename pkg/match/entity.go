package match

// KeywordLimit bounds both keyword sets compared by the scorer.
const KeywordLimit = 20

// Score is the ATS-style fit of a résumé against a job.
type Score struct {
	Total   int     `json:"total"`
	Details Details `json:"details"`
}

type Details struct {
	KeywordMatch   KeywordMatch   `json:"keywordMatch"`
	Completeness   Completeness   `json:"completeness"`
	WorkExperience WorkExperience `json:"workExperience"`
	Skills         Skills         `json:"skills"`
}

type KeywordMatch struct {
	Score   int      `json:"score"`
	Matched []string `json:"matched"`
	Missing []string `json:"missing"`
}

type Completeness struct {
	Score         int      `json:"score"`
	MissingFields []string `json:"missingFields"`
}

type WorkExperience struct {
	Score int `json:"score"`
}

type Skills struct {
	Score int `json:"score"`
	Count int `json:"count"`
}

// Zero is the neutral score returned when scoring cannot run.
func Zero() Score {
	return Score{
		Details: Details{
			KeywordMatch: KeywordMatch{Matched: []string{}, Missing: []string{}},
			Completeness: Completeness{MissingFields: []string{}},
		},
	}
}
