package resume

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Language is the language a résumé is written in.
type Language string

const (
	LangRO Language = "ro"
	LangEN Language = "en"
	LangIT Language = "it"
)

// DefaultLanguage is used for new résumés.
const DefaultLanguage = LangRO

// Valid reports whether l is one of the supported codes.
func (l Language) Valid() bool {
	switch l {
	case LangRO, LangEN, LangIT:
		return true
	}
	return false
}

// ParseLanguage validates a language code.
func ParseLanguage(s string) (Language, error) {
	l := Language(s)
	if !l.Valid() {
		return "", fmt.Errorf("unsupported cv language %q (valid: ro, en, it)", s)
	}
	return l, nil
}

var (
	ErrNotFound   = errors.New("resume not found")
	ErrValidation = errors.New("invalid resume")
)

// Contact is the résumé contact block.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	Website  string `json:"website"`
	GitHub   string `json:"github"`
}

type WorkExperience struct {
	Role        string   `json:"role"`
	Company     string   `json:"company"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Description string   `json:"description"`
	Bullets     []string `json:"bullets"`
}

type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Details     string `json:"details"`
}

type Certification struct {
	Name   string `json:"name"`
	Issuer string `json:"issuer"`
	Date   string `json:"date"`
}

type SpokenLanguage struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// Resume is both the user's base profile and the per-application working copy.
// The job targeting fields (JobTitle, JobDescription, JobURL, Company,
// Recipients) are filled when tailoring.
type Resume struct {
	ID        uuid.UUID `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Company        string   `json:"company"`
	Recipients     []string `json:"recipients"`
	JobTitle       string   `json:"jobTitle"`
	JobDescription string   `json:"jobDescription"`
	JobURL         string   `json:"jobUrl"`

	CVLanguage          Language         `json:"cvLanguage"`
	Name                string           `json:"name"`
	Role                string           `json:"role"`
	ProfessionalSummary string           `json:"professionalSummary"`
	Contact             Contact          `json:"contact"`
	WorkExperience      []WorkExperience `json:"workExperience"`
	AcademicHistory     []Education      `json:"academicHistory"`
	Certifications      []Certification  `json:"certifications"`
	Skills              []string         `json:"skills"`
	DriverLicense       string           `json:"driverLicense"`
	Languages           []SpokenLanguage `json:"languages"`
	Other               string           `json:"other"`
}

// JobContext is the job a résumé is scored against or tailored for.
type JobContext struct {
	JobTitle       string `json:"jobTitle"`
	JobDescription string `json:"jobDescription"`
	CompanyName    string `json:"companyName"`
}

// New returns an empty résumé with a fresh id.
func New() Resume {
	now := time.Now().UTC()
	r := Resume{
		ID:         uuid.New(),
		CreatedAt:  now,
		UpdatedAt:  now,
		CVLanguage: DefaultLanguage,
	}
	r.Normalize()
	return r
}

// Normalize replaces nil containers with empty ones so callers never need
// presence checks.
func (r *Resume) Normalize() {
	if r.Recipients == nil {
		r.Recipients = []string{}
	}
	if r.WorkExperience == nil {
		r.WorkExperience = []WorkExperience{}
	}
	for i := range r.WorkExperience {
		if r.WorkExperience[i].Bullets == nil {
			r.WorkExperience[i].Bullets = []string{}
		}
	}
	if r.AcademicHistory == nil {
		r.AcademicHistory = []Education{}
	}
	if r.Certifications == nil {
		r.Certifications = []Certification{}
	}
	if r.Skills == nil {
		r.Skills = []string{}
	}
	if r.Languages == nil {
		r.Languages = []SpokenLanguage{}
	}
}

// Validate checks the invariants a stored résumé must hold.
func (r Resume) Validate() error {
	if r.CVLanguage != "" && !r.CVLanguage.Valid() {
		return fmt.Errorf("%w: unsupported cv language %q", ErrValidation, r.CVLanguage)
	}
	return nil
}

// Job returns the résumé's current targeting context.
func (r Resume) Job() JobContext {
	return JobContext{
		JobTitle:       r.JobTitle,
		JobDescription: r.JobDescription,
		CompanyName:    r.Company,
	}
}

// WithJob returns a copy whose targeting fields are overridden by the
// non-empty fields of job.
func (r Resume) WithJob(job JobContext) Resume {
	out := r.Clone()
	if job.JobTitle != "" {
		out.JobTitle = job.JobTitle
	}
	if job.JobDescription != "" {
		out.JobDescription = job.JobDescription
	}
	if job.CompanyName != "" {
		out.Company = job.CompanyName
	}
	return out
}

// ProfileRepository stores the single base résumé.
type ProfileRepository interface {
	GetProfile(ctx context.Context) (Resume, error)
	SaveProfile(ctx context.Context, r Resume) error
}
