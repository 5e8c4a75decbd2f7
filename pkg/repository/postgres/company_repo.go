package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvtailor/pkg/company"
)

// CompanyRepository хранит компании как JSONB-документы.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

func NewCompanyRepository(pool *pgxpool.Pool) (*CompanyRepository, error) {
	r := &CompanyRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *CompanyRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS companies (
	id UUID PRIMARY KEY,
	name TEXT NOT NULL,
	doc JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_companies_updated ON companies(updated_at DESC);
`)
	return err
}

// List returns the most recently saved companies first.
func (r *CompanyRepository) List(ctx context.Context) ([]company.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT doc FROM companies ORDER BY updated_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	res := []company.Company{}
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}
		var c company.Company
		if err := json.Unmarshal(doc, &c); err != nil {
			return nil, fmt.Errorf("decode company: %w", err)
		}
		res = append(res, c)
	}
	return res, rows.Err()
}

func (r *CompanyRepository) Get(ctx context.Context, id uuid.UUID) (company.Company, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM companies WHERE id = $1`, id).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return company.Company{}, company.ErrNotFound
		}
		return company.Company{}, err
	}
	var c company.Company
	if err := json.Unmarshal(doc, &c); err != nil {
		return company.Company{}, fmt.Errorf("decode company: %w", err)
	}
	return c, nil
}

func (r *CompanyRepository) Upsert(ctx context.Context, c company.Company) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	updated := c.UpdatedAt
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	doc, err := json.Marshal(c)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO companies (id, name, doc, updated_at)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at
`, c.ID, c.Name, doc, updated)
	return err
}

func (r *CompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return company.ErrNotFound
	}
	return nil
}
