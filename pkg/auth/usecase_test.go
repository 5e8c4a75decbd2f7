package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type stubTokens struct {
	subject string
	err     error
}

func (s *stubTokens) Generate(_ context.Context, subject string) (string, time.Time, error) {
	s.subject = subject
	if s.err != nil {
		return "", time.Time{}, s.err
	}
	return "tok-" + subject, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), nil
}

func hashOf(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.MinCost)
	require.NoError(t, err)
	return string(h)
}

func TestLogin(t *testing.T) {
	tokens := &stubTokens{}
	svc := NewAccessService(hashOf(t, "s3cret"), tokens)
	require.True(t, svc.Enabled())

	_, err := svc.Login(context.Background(), "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := svc.Login(context.Background(), "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "tok-owner", sess.Token)
	assert.Equal(t, Subject, tokens.subject)
	assert.False(t, sess.ExpiresAt.IsZero())
}

func TestLoginDisabled(t *testing.T) {
	svc := NewAccessService("  ", &stubTokens{})
	assert.False(t, svc.Enabled())

	sess, err := svc.Login(context.Background(), "")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
}

func TestLoginTokenError(t *testing.T) {
	boom := errors.New("sign failed")
	svc := NewAccessService(hashOf(t, "pw"), &stubTokens{err: boom})

	_, err := svc.Login(context.Background(), "pw")
	assert.ErrorIs(t, err, boom)
}
