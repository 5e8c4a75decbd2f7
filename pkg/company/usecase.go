package company

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/cvtailor/pkg/resume"
)

// UseCase инкапсулирует работу с компаниями и их заявками.
type UseCase interface {
	Create(ctx context.Context, c Company) (Company, error)
	Get(ctx context.Context, id uuid.UUID) (Company, error)
	List(ctx context.Context, limit, offset int) ([]Company, error)
	Update(ctx context.Context, id uuid.UUID, c Company) (Company, error)
	Delete(ctx context.Context, id uuid.UUID) error

	AddContact(ctx context.Context, companyID uuid.UUID, ct Contact) (Contact, error)
	RemoveContact(ctx context.Context, companyID, contactID uuid.UUID) error
	AddApplication(ctx context.Context, companyID uuid.UUID, app Application) (Application, error)
	UpdateApplication(ctx context.Context, companyID, appID uuid.UUID, p ApplicationPatch) (Application, error)
	RecordSentResume(ctx context.Context, companyID uuid.UUID, sr SentResume) (SentResume, error)

	Calendar(ctx context.Context, f CalendarFilter) ([]CalendarDay, error)
}

type service struct {
	repo     Repository
	profiles resume.ProfileUseCase
	now      func() time.Time
	// сериализует read-modify-write над документом компании
	mu sync.Mutex
}

// NewService creates the default implementation. profiles may be nil; it is
// used to snapshot the base résumé into applications submitted without one.
func NewService(repo Repository, profiles resume.ProfileUseCase) UseCase {
	return &service{
		repo:     repo,
		profiles: profiles,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Create(ctx context.Context, c Company) (Company, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return Company{}, ErrValidation("name is required")
	}
	now := s.now()
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now
	c.Contacts, c.Applications, c.Resumes = nil, nil, nil
	c.Normalize()
	if err := s.repo.Upsert(ctx, c); err != nil {
		return Company{}, fmt.Errorf("create company: %w", err)
	}
	return c, nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (Company, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Company{}, err
	}
	c.Normalize()
	return c, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Company, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return []Company{}, nil
	}
	all = all[offset:]
	if limit > 0 && limit < len(all) {
		all = all[:limit]
	}
	for i := range all {
		all[i].Normalize()
	}
	return all, nil
}

// Update replaces the descriptive fields; nested collections change through
// their own operations.
func (s *service) Update(ctx context.Context, id uuid.UUID, in Company) (Company, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return Company{}, ErrValidation("name is required")
	}
	return s.mutate(ctx, id, func(c *Company) error {
		c.Name = name
		c.Website = in.Website
		c.Industry = in.Industry
		c.Notes = in.Notes
		c.Address = in.Address
		return nil
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.repo.Delete(ctx, id)
}

func (s *service) AddContact(ctx context.Context, companyID uuid.UUID, ct Contact) (Contact, error) {
	ct.Name = strings.TrimSpace(ct.Name)
	if ct.Name == "" {
		return Contact{}, ErrValidation("contact name is required")
	}
	ct.ID = uuid.New()
	_, err := s.mutate(ctx, companyID, func(c *Company) error {
		c.Contacts = append(c.Contacts, ct)
		return nil
	})
	if err != nil {
		return Contact{}, err
	}
	return ct, nil
}

func (s *service) RemoveContact(ctx context.Context, companyID, contactID uuid.UUID) error {
	_, err := s.mutate(ctx, companyID, func(c *Company) error {
		for i, ct := range c.Contacts {
			if ct.ID == contactID {
				c.Contacts = append(c.Contacts[:i], c.Contacts[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
	return err
}

func (s *service) AddApplication(ctx context.Context, companyID uuid.UUID, app Application) (Application, error) {
	app.Position = strings.TrimSpace(app.Position)
	if app.Position == "" {
		return Application{}, ErrValidation("position is required")
	}
	now := s.now()
	if app.Status == "" {
		app.Status = StatusApplied
	}
	if !app.Status.Valid() {
		return Application{}, ErrValidation(fmt.Sprintf("unknown status %q", app.Status))
	}
	if app.Date == "" {
		app.Date = now.Format(DateLayout)
	}
	if app.Time == "" {
		app.Time = now.Format(TimeLayout)
	}
	if err := validateWhen(app.Date, app.Time); err != nil {
		return Application{}, err
	}

	if app.ResumeData != nil {
		snap := app.ResumeData.Clone()
		if err := snap.Validate(); err != nil {
			return Application{}, ErrValidation(err.Error())
		}
		app.ResumeData = &snap
	} else if s.profiles != nil {
		base, err := s.profiles.Get(ctx)
		if err != nil {
			return Application{}, fmt.Errorf("snapshot profile: %w", err)
		}
		app.ResumeData = &base
	}

	app.ID = uuid.New()
	app.CreatedAt = now
	_, err := s.mutate(ctx, companyID, func(c *Company) error {
		c.Applications = append(c.Applications, app)
		return nil
	})
	if err != nil {
		return Application{}, err
	}
	return app, nil
}

func (s *service) UpdateApplication(ctx context.Context, companyID, appID uuid.UUID, p ApplicationPatch) (Application, error) {
	if p.Status != nil && !p.Status.Valid() {
		return Application{}, ErrValidation(fmt.Sprintf("unknown status %q", *p.Status))
	}
	var out Application
	_, err := s.mutate(ctx, companyID, func(c *Company) error {
		for i := range c.Applications {
			a := &c.Applications[i]
			if a.ID != appID {
				continue
			}
			date, clock := a.Date, a.Time
			if p.Date != nil {
				date = *p.Date
			}
			if p.Time != nil {
				clock = *p.Time
			}
			if err := validateWhen(date, clock); err != nil {
				return err
			}
			a.Date, a.Time = date, clock
			if p.Status != nil {
				a.Status = *p.Status
			}
			if p.Notes != nil {
				a.Notes = *p.Notes
			}
			out = *a
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return Application{}, err
	}
	return out, nil
}

func (s *service) RecordSentResume(ctx context.Context, companyID uuid.UUID, sr SentResume) (SentResume, error) {
	if err := sr.Data.Validate(); err != nil {
		return SentResume{}, ErrValidation(err.Error())
	}
	sr.ID = uuid.New()
	sr.CreatedAt = s.now()
	sr.Data = sr.Data.Clone()
	_, err := s.mutate(ctx, companyID, func(c *Company) error {
		if sr.To.ID != uuid.Nil {
			for _, ct := range c.Contacts {
				if ct.ID == sr.To.ID {
					sr.To = ct
					break
				}
			}
		}
		// новые записи первыми
		c.Resumes = append([]SentResume{sr}, c.Resumes...)
		return nil
	})
	if err != nil {
		return SentResume{}, err
	}
	return sr, nil
}

func (s *service) mutate(ctx context.Context, id uuid.UUID, fn func(c *Company) error) (Company, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Company{}, err
	}
	c.Normalize()
	if err := fn(&c); err != nil {
		return Company{}, err
	}
	c.UpdatedAt = s.now()
	if err := s.repo.Upsert(ctx, c); err != nil {
		return Company{}, fmt.Errorf("save company: %w", err)
	}
	return c, nil
}

func validateWhen(date, clock string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return ErrValidation("date must be YYYY-MM-DD")
	}
	if _, err := time.Parse(TimeLayout, clock); err != nil {
		return ErrValidation("time must be HH:MM")
	}
	return nil
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var v ErrValidation
	return errors.As(err, &v)
}
