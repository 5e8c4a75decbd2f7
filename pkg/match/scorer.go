package match

import (
	"fmt"
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/artem13815/cvtailor/pkg/nlp"
	"github.com/artem13815/cvtailor/pkg/resume"
)

const (
	minDescriptionLen  = 50
	experienceSaturate = 3
	skillsSaturate     = 12
)

// Missing-field labels as shown in the tracker UI.
const (
	FieldName    = "nume"
	FieldRole    = "rol"
	FieldSummary = "sumar profesional"
	FieldEmail   = "email"
	FieldPhone   = "telefon"
)

// KeywordExtractor ranks keywords of a text; *nlp.Extractor implements it.
type KeywordExtractor interface {
	Extract(text string, limit int) []string
}

// Scorer computes match scores with a given keyword extractor.
type Scorer struct {
	ex  KeywordExtractor
	log *slog.Logger
}

func NewScorer(ex KeywordExtractor) *Scorer {
	if ex == nil {
		ex = nlp.Default()
	}
	return &Scorer{ex: ex, log: slog.Default().With("component", "match")}
}

var defaultScorer = NewScorer(nil)

// Compute scores r against job with the default phrase dictionary.
func Compute(r resume.Resume, job resume.JobContext) Score {
	return defaultScorer.Compute(r, job)
}

// Compute never panics: a failure while scoring yields Zero().
func (s *Scorer) Compute(r resume.Resume, job resume.JobContext) (score Score) {
	defer func() {
		if rec := recover(); rec != nil {
			s.log.Error("compute match score", "error", fmt.Sprint(rec))
			score = Zero()
		}
	}()

	job = mergeJob(r.Job(), job)

	kw := s.KeywordMatch(r, job)
	comp := CompletenessOf(r)
	work := WorkExperienceOf(r)
	sk := SkillsOf(r, job)

	return Score{
		Total: Aggregate(kw.Score, comp.Score, work.Score, sk.Score),
		Details: Details{
			KeywordMatch:   kw,
			Completeness:   comp,
			WorkExperience: work,
			Skills:         sk,
		},
	}
}

// KeywordMatch measures how many job keywords the résumé text covers.
func (s *Scorer) KeywordMatch(r resume.Resume, job resume.JobContext) KeywordMatch {
	jobKW := s.ex.Extract(JobText(job), KeywordLimit)
	cvKW := s.ex.Extract(ResumeText(r), KeywordLimit)

	have := make(map[string]struct{}, len(cvKW))
	for _, k := range cvKW {
		have[k] = struct{}{}
	}
	out := KeywordMatch{Matched: []string{}, Missing: []string{}}
	for _, k := range jobKW {
		if _, ok := have[k]; ok {
			out.Matched = append(out.Matched, k)
		} else {
			out.Missing = append(out.Missing, k)
		}
	}
	if len(jobKW) > 0 {
		out.Score = percent(float64(len(out.Matched)) / float64(len(jobKW)))
	}
	return out
}

// CompletenessOf checks the required identity fields.
func CompletenessOf(r resume.Resume) Completeness {
	fields := []struct {
		label string
		value string
	}{
		{FieldName, r.Name},
		{FieldRole, r.Role},
		{FieldSummary, r.ProfessionalSummary},
		{FieldEmail, r.Contact.Email},
		{FieldPhone, r.Contact.Phone},
	}
	out := Completeness{MissingFields: []string{}}
	present := 0
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			out.MissingFields = append(out.MissingFields, f.label)
			continue
		}
		present++
	}
	out.Score = percent(float64(present) / float64(len(fields)))
	return out
}

// WorkExperienceOf rewards substantive descriptions and up to three entries.
func WorkExperienceOf(r resume.Resume) WorkExperience {
	n := len(r.WorkExperience)
	if n == 0 {
		return WorkExperience{}
	}
	detailed := 0
	for _, w := range r.WorkExperience {
		if utf8.RuneCountInString(w.Description) > minDescriptionLen {
			detailed++
		}
	}
	quality := float64(detailed) / float64(n) * math.Min(float64(n)/experienceSaturate, 1)
	return WorkExperience{Score: percent(math.Min(quality, 1))}
}

// SkillsOf combines skill count saturation with how many skills the job mentions.
func SkillsOf(r resume.Resume, job resume.JobContext) Skills {
	n := len(r.Skills)
	out := Skills{Count: n}
	if n == 0 {
		return out
	}
	boost := math.Min(float64(n)/skillsSaturate, 1)

	relevance := 0.0
	jd := strings.ToLower(strings.TrimSpace(job.JobTitle + " " + job.JobDescription))
	if jd != "" {
		hits := 0
		for _, sk := range r.Skills {
			sk = strings.ToLower(strings.TrimSpace(sk))
			if sk != "" && strings.Contains(jd, sk) {
				hits++
			}
		}
		relevance = math.Min(float64(hits)/float64(n), 1)
	}
	out.Score = percent(boost*0.5 + relevance*0.5)
	return out
}

// JobText is the text job keywords are extracted from.
func JobText(job resume.JobContext) string {
	return strings.Join([]string{job.JobTitle, job.JobDescription, job.CompanyName}, " ")
}

// ResumeText is the text résumé keywords are extracted from.
func ResumeText(r resume.Resume) string {
	parts := []string{r.ProfessionalSummary, strings.Join(r.Skills, " ")}
	for _, w := range r.WorkExperience {
		parts = append(parts, w.Role, w.Company, w.Description, strings.Join(w.Bullets, " "))
	}
	return strings.Join(parts, " ")
}

func mergeJob(prev, next resume.JobContext) resume.JobContext {
	if next.JobTitle != "" {
		prev.JobTitle = next.JobTitle
	}
	if next.JobDescription != "" {
		prev.JobDescription = next.JobDescription
	}
	if next.CompanyName != "" {
		prev.CompanyName = next.CompanyName
	}
	return prev
}

func percent(f float64) int {
	return int(math.Round(f * 100))
}
