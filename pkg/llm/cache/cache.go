// Package cache memoizes chat model replies so repeated tailoring of the same
// résumé for the same job does not hit the provider again.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/artem13815/cvtailor/pkg/llm"
)

const keyPrefix = "cvtailor:llm:"

// Store is the key-value backend of the cache. Get reports a miss with ok=false.
type Store interface {
	Get(ctx context.Context, key string) (val string, ok bool, err error)
	Set(ctx context.Context, key, val string, ttl time.Duration) error
}

// Model wraps a ChatModel with a reply cache.
type Model struct {
	next  llm.ChatModel
	store Store
	ns    string
	ttl   time.Duration
	log   *slog.Logger
}

// Wrap returns next decorated with store. ns separates replies of different
// models sharing one store.
func Wrap(next llm.ChatModel, store Store, ns string, ttl time.Duration) *Model {
	return &Model{
		next:  next,
		store: store,
		ns:    ns,
		ttl:   ttl,
		log:   slog.Default().With("component", "llm-cache"),
	}
}

// Key builds the cache key of one prompt pair.
func Key(ns, systemPrompt, userPrompt string) string {
	h := sha256.Sum256([]byte(ns + "\x00" + systemPrompt + "\x00" + userPrompt))
	return keyPrefix + hex.EncodeToString(h[:])
}

// Ask serves from the store when possible. Store failures are logged and
// never fail the call; errors and blank replies are not cached.
func (m *Model) Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	key := Key(m.ns, systemPrompt, userPrompt)

	val, ok, err := m.store.Get(ctx, key)
	switch {
	case err != nil:
		m.log.WarnContext(ctx, "cache get failed", "error", err)
	case ok:
		m.log.DebugContext(ctx, "cache hit", "key", key)
		return val, nil
	}

	reply, err := m.next.Ask(ctx, systemPrompt, userPrompt)
	if err != nil {
		return "", err
	}
	if reply == "" {
		return reply, nil
	}
	if err := m.store.Set(ctx, key, reply, m.ttl); err != nil {
		m.log.WarnContext(ctx, "cache set failed", "error", err)
	}
	return reply, nil
}

// RedisStore keeps replies in Redis.
type RedisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Connect parses url and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return rdb, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return s.rdb.Set(ctx, key, val, ttl).Err()
}

// Ping is used by readiness checks.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.rdb.Ping(ctx).Err()
}
