package resume

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memProfileRepo struct {
	r      *Resume
	getErr error
}

func (m *memProfileRepo) GetProfile(context.Context) (Resume, error) {
	if m.getErr != nil {
		return Resume{}, m.getErr
	}
	if m.r == nil {
		return Resume{}, ErrNotFound
	}
	return m.r.Clone(), nil
}

func (m *memProfileRepo) SaveProfile(_ context.Context, r Resume) error {
	c := r.Clone()
	m.r = &c
	return nil
}

func TestProfileGetEmpty(t *testing.T) {
	svc := NewProfileService(&memProfileRepo{})
	r, err := svc.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, LangRO, r.CVLanguage)
	assert.NotNil(t, r.Skills)
}

func TestProfileSaveKeepsIdentity(t *testing.T) {
	repo := &memProfileRepo{}
	svc := NewProfileService(repo)
	ctx := context.Background()

	first, err := svc.Save(ctx, Resume{Name: "Ana"})
	require.NoError(t, err)
	assert.Equal(t, LangRO, first.CVLanguage)

	second, err := svc.Save(ctx, Resume{Name: "Ana Pop", CVLanguage: LangEN})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Ana Pop", got.Name)
	assert.Equal(t, LangEN, got.CVLanguage)
}

func TestProfileSaveRejectsLanguage(t *testing.T) {
	svc := NewProfileService(&memProfileRepo{})
	_, err := svc.Save(context.Background(), Resume{CVLanguage: "de"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileGetPropagatesStoreError(t *testing.T) {
	svc := NewProfileService(&memProfileRepo{getErr: errors.New("disk gone")})
	_, err := svc.Get(context.Background())
	assert.Error(t, err)
}
