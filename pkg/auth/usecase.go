package auth

import (
	"context"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// AccessUseCase защищает API одним паролем владельца.
type AccessUseCase interface {
	// Enabled сообщает, настроен ли пароль. Без пароля API открыт.
	Enabled() bool
	Login(ctx context.Context, password string) (Session, error)
}

type accessService struct {
	hash   []byte
	tokens TokenGenerator
}

// NewAccessService expects a bcrypt hash of the access password; an empty
// hash disables access control.
func NewAccessService(passwordHash string, tokens TokenGenerator) AccessUseCase {
	return &accessService{hash: []byte(strings.TrimSpace(passwordHash)), tokens: tokens}
}

func (s *accessService) Enabled() bool { return len(s.hash) > 0 }

// Login issues a token for the correct password. With access control
// disabled any password is accepted.
func (s *accessService) Login(ctx context.Context, password string) (Session, error) {
	if s.Enabled() {
		if password == "" || bcrypt.CompareHashAndPassword(s.hash, []byte(password)) != nil {
			return Session{}, ErrInvalidCredentials
		}
	}
	token, exp, err := s.tokens.Generate(ctx, Subject)
	if err != nil {
		return Session{}, err
	}
	return Session{Token: token, ExpiresAt: exp}, nil
}
