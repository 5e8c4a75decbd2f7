package auth

import (
	"context"
	"time"
)

// TokenGenerator abstracts token creation (e.g., JWT).
type TokenGenerator interface {
	Generate(ctx context.Context, subject string) (token string, expiresAt time.Time, err error)
}
