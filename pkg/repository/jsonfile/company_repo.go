package jsonfile

import (
	"context"
	"path/filepath"
	"sync"

	"github.com/google/uuid"

	"github.com/artem13815/cvtailor/pkg/company"
)

// CompanyRepository stores all companies in one companies.json array, most
// recently saved first.
type CompanyRepository struct {
	path string
	mu   sync.Mutex
}

func NewCompanyRepository(dir string) *CompanyRepository {
	return &CompanyRepository{path: filepath.Join(dir, companiesFile)}
}

func (r *CompanyRepository) load() ([]company.Company, error) {
	var all []company.Company
	if _, err := readJSON(r.path, &all); err != nil {
		return nil, err
	}
	if all == nil {
		all = []company.Company{}
	}
	return all, nil
}

func (r *CompanyRepository) List(_ context.Context) ([]company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

func (r *CompanyRepository) Get(_ context.Context, id uuid.UUID) (company.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.load()
	if err != nil {
		return company.Company{}, err
	}
	for _, c := range all {
		if c.ID == id {
			return c, nil
		}
	}
	return company.Company{}, company.ErrNotFound
}

// Upsert replaces the company with the same id and moves it to the front.
func (r *CompanyRepository) Upsert(_ context.Context, c company.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.load()
	if err != nil {
		return err
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	next := make([]company.Company, 0, len(all)+1)
	next = append(next, c)
	for _, cur := range all {
		if cur.ID != c.ID {
			next = append(next, cur)
		}
	}
	return writeJSON(r.path, next)
}

func (r *CompanyRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	all, err := r.load()
	if err != nil {
		return err
	}
	next := make([]company.Company, 0, len(all))
	for _, cur := range all {
		if cur.ID != id {
			next = append(next, cur)
		}
	}
	if len(next) == len(all) {
		return company.ErrNotFound
	}
	return writeJSON(r.path, next)
}
