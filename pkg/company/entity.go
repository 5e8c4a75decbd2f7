package company

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/cvtailor/pkg/resume"
)

// Company описывает целевую компанию с контактами, заявками и отправленными резюме.
type Company struct {
	ID           uuid.UUID     `json:"id"`
	Name         string        `json:"name"`
	Website      string        `json:"website"`
	Industry     string        `json:"industry"`
	Notes        string        `json:"notes"`
	Address      Address       `json:"address"`
	Contacts     []Contact     `json:"contacts"`
	Applications []Application `json:"applications"`
	Resumes      []SentResume  `json:"resumes"`
	CreatedAt    time.Time     `json:"createdAt"`
	UpdatedAt    time.Time     `json:"updatedAt"`
}

type Address struct {
	Country string `json:"country"`
	Region  string `json:"region"`
	County  string `json:"county"`
	City    string `json:"city"`
	Street  string `json:"street"`
}

type Contact struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Position string    `json:"position"`
	Phone    string    `json:"phone"`
	Email    string    `json:"email"`
	LinkedIn string    `json:"linkedin"`
	Other    string    `json:"other"`
}

// Status задаёт этап заявки.
type Status string

const (
	StatusApplied   Status = "applied"
	StatusInterview Status = "interview"
	StatusOffer     Status = "offer"
	StatusRejected  Status = "rejected"
	StatusAccepted  Status = "accepted"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusAccepted:
		return true
	}
	return false
}

// Application описывает отклик на позицию. ResumeData хранит снимок резюме на момент отклика.
type Application struct {
	ID         uuid.UUID      `json:"id"`
	Position   string         `json:"position"`
	Date       string         `json:"date"`
	Time       string         `json:"time"`
	Status     Status         `json:"status"`
	Notes      string         `json:"notes"`
	CreatedAt  time.Time      `json:"createdAt"`
	ResumeData *resume.Resume `json:"resumeData,omitempty"`
}

// ApplicationPatch carries the fields of an application that may change later.
type ApplicationPatch struct {
	Status *Status `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Date   *string `json:"date,omitempty"`
	Time   *string `json:"time,omitempty"`
}

// SentResume хранит резюме, отправленное конкретному контакту.
type SentResume struct {
	ID        uuid.UUID     `json:"id"`
	CreatedAt time.Time     `json:"createdAt"`
	Data      resume.Resume `json:"data"`
	To        Contact       `json:"to"`
}

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

var ErrNotFound = errors.New("company not found")

// ErrValidation простая ошибка валидации.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// Repository задаёт порт хранилища компаний. List возвращает компании от новых к старым;
// Upsert перемещает запись в начало списка.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, id uuid.UUID) (Company, error)
	Upsert(ctx context.Context, c Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// Normalize replaces nil collections with empty ones.
func (c *Company) Normalize() {
	if c.Contacts == nil {
		c.Contacts = []Contact{}
	}
	if c.Applications == nil {
		c.Applications = []Application{}
	}
	for i := range c.Applications {
		if c.Applications[i].ResumeData != nil {
			c.Applications[i].ResumeData.Normalize()
		}
	}
	if c.Resumes == nil {
		c.Resumes = []SentResume{}
	}
	for i := range c.Resumes {
		c.Resumes[i].Data.Normalize()
	}
}
