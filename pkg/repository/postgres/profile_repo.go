package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvtailor/pkg/resume"
)

// profileRowID is the key of the single base résumé row.
const profileRowID = 1

// ProfileRepository хранит базовое резюме (одна строка).
type ProfileRepository struct {
	pool *pgxpool.Pool
}

func NewProfileRepository(pool *pgxpool.Pool) (*ProfileRepository, error) {
	r := &ProfileRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ProfileRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS profile (
	id INT PRIMARY KEY,
	doc JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL
);
`)
	return err
}

func (r *ProfileRepository) GetProfile(ctx context.Context) (resume.Resume, error) {
	var doc []byte
	err := r.pool.QueryRow(ctx, `SELECT doc FROM profile WHERE id = $1`, profileRowID).Scan(&doc)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, resume.ErrNotFound
		}
		return resume.Resume{}, err
	}
	var out resume.Resume
	if err := json.Unmarshal(doc, &out); err != nil {
		return resume.Resume{}, fmt.Errorf("decode profile: %w", err)
	}
	return out, nil
}

func (r *ProfileRepository) SaveProfile(ctx context.Context, p resume.Resume) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return err
	}
	updated := p.UpdatedAt
	if updated.IsZero() {
		updated = time.Now().UTC()
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO profile (id, doc, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (id) DO UPDATE SET doc = EXCLUDED.doc, updated_at = EXCLUDED.updated_at
`, profileRowID, doc, updated)
	return err
}
