package resume

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ProfileUseCase управляет базовым резюме пользователя.
type ProfileUseCase interface {
	Get(ctx context.Context) (Resume, error)
	Save(ctx context.Context, r Resume) (Resume, error)
}

type profileService struct {
	repo ProfileRepository
	now  func() time.Time
}

func NewProfileService(repo ProfileRepository) ProfileUseCase {
	return &profileService{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Get returns the stored profile, or a fresh empty one when nothing is saved yet.
func (s *profileService) Get(ctx context.Context) (Resume, error) {
	r, err := s.repo.GetProfile(ctx)
	if errors.Is(err, ErrNotFound) {
		return New(), nil
	}
	if err != nil {
		return Resume{}, fmt.Errorf("get profile: %w", err)
	}
	r.Normalize()
	return r, nil
}

func (s *profileService) Save(ctx context.Context, r Resume) (Resume, error) {
	if r.CVLanguage == "" {
		r.CVLanguage = DefaultLanguage
	}
	if err := r.Validate(); err != nil {
		return Resume{}, err
	}
	r.Normalize()

	// id и createdAt сохраняются между версиями профиля
	prev, err := s.repo.GetProfile(ctx)
	switch {
	case err == nil:
		r.ID = prev.ID
		r.CreatedAt = prev.CreatedAt
	case errors.Is(err, ErrNotFound):
		fresh := New()
		r.ID = fresh.ID
		r.CreatedAt = s.now()
	default:
		return Resume{}, fmt.Errorf("get profile: %w", err)
	}
	r.UpdatedAt = s.now()

	if err := s.repo.SaveProfile(ctx, r); err != nil {
		return Resume{}, fmt.Errorf("save profile: %w", err)
	}
	return r, nil
}
