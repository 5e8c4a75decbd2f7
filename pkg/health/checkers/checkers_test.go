package checkers

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestPingCheckerAppliesTimeout(t *testing.T) {
	var deadline time.Time
	c := NewPostgresChecker(pingerFunc(func(ctx context.Context) error {
		deadline, _ = ctx.Deadline()
		return nil
	}))

	require.NoError(t, c.Check(context.Background()))
	assert.Equal(t, "postgres", c.Name())
	assert.WithinDuration(t, time.Now().Add(pingTimeout), deadline, pingTimeout)
}

func TestPingCheckerPropagatesError(t *testing.T) {
	boom := errors.New("connection refused")
	c := NewRedisChecker(pingerFunc(func(context.Context) error { return boom }))

	assert.Equal(t, "redis", c.Name())
	assert.ErrorIs(t, c.Check(context.Background()), boom)
}

func TestDataDirChecker(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	c := NewDataDirChecker(dir)

	require.NoError(t, c.Check(context.Background()))
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDataDirCheckerFailsOnFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "plain")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

	assert.Error(t, NewDataDirChecker(file).Check(context.Background()))
}
