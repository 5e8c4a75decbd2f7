package jsonfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/artem13815/cvtailor/pkg/resume"
)

// ProfileRepository stores the base résumé in profile.json.
type ProfileRepository struct {
	path string
	mu   sync.Mutex
}

func NewProfileRepository(dir string) *ProfileRepository {
	return &ProfileRepository{path: filepath.Join(dir, profileFile)}
}

func (r *ProfileRepository) GetProfile(_ context.Context) (resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out resume.Resume
	ok, err := readJSON(r.path, &out)
	if err != nil {
		return resume.Resume{}, err
	}
	if !ok {
		return resume.Resume{}, resume.ErrNotFound
	}
	return out, nil
}

func (r *ProfileRepository) SaveProfile(_ context.Context, p resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return writeJSON(r.path, p)
}
