package auth

import (
	"errors"
	"time"
)

// Subject is the token subject for the single owner of the tracker.
const Subject = "owner"

// Session описывает выданный токен доступа.
type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

var ErrInvalidCredentials = errors.New("invalid credentials")
