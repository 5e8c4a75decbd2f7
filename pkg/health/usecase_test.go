package health

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeChecker struct {
	name  string
	err   error
	calls int
}

func (f *fakeChecker) Name() string { return f.name }

func (f *fakeChecker) Check(context.Context) error {
	f.calls++
	return f.err
}

func TestReadyAllHealthy(t *testing.T) {
	a := &fakeChecker{name: "postgres"}
	b := &fakeChecker{name: "redis"}
	svc := NewService(a, nil, b)

	assert.NoError(t, svc.Ready(context.Background()))
	assert.Equal(t, []string{"postgres", "redis"}, svc.Components())
}

func TestReadyStopsAtFirstFailure(t *testing.T) {
	down := errors.New("down")
	a := &fakeChecker{name: "data-dir", err: down}
	b := &fakeChecker{name: "redis"}

	err := NewService(a, b).Ready(context.Background())
	assert.ErrorIs(t, err, down)
	assert.EqualError(t, err, "data-dir: down")
	assert.Zero(t, b.calls)
}
