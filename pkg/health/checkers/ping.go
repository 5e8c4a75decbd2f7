package checkers

import (
	"context"
	"time"
)

const pingTimeout = time.Second

// Pinger is satisfied by *pgxpool.Pool and the Redis response cache.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker reports a dependency healthy when Ping succeeds within a second.
type PingChecker struct {
	name string
	p    Pinger
}

func NewPostgresChecker(p Pinger) *PingChecker {
	return &PingChecker{name: "postgres", p: p}
}

func NewRedisChecker(p Pinger) *PingChecker {
	return &PingChecker{name: "redis", p: p}
}

func (c *PingChecker) Name() string { return c.name }

func (c *PingChecker) Check(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return c.p.Ping(ctx)
}
