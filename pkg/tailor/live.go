package tailor

import (
	"context"
	"errors"
	"sync"
	"time"
)

// DefaultDebounce is the pause after the last edit before live adaptation runs.
const DefaultDebounce = 600 * time.Millisecond

// ErrSuperseded is returned by Live.Submit when a newer call for the same key
// took over.
var ErrSuperseded = errors.New("superseded by a newer request")

// Live debounces repeated requests per key and drops results that were
// overtaken by a newer request for the same key. It does not cancel the work
// itself; a stale call simply has its result discarded.
type Live[T any] struct {
	mu      sync.Mutex
	seq     uint64
	pending map[string]*ticket
}

type ticket struct {
	gen  uint64
	done chan struct{}
}

func NewLive[T any]() *Live[T] {
	return &Live[T]{pending: make(map[string]*ticket)}
}

// Submit waits delay and then runs fn if no newer Submit for key arrived
// meanwhile. It returns ErrSuperseded when the call was overtaken before or
// during fn, and ctx.Err() when ctx ended while waiting.
func (l *Live[T]) Submit(ctx context.Context, key string, delay time.Duration, fn func(context.Context) T) (T, error) {
	t := l.enter(key)
	defer l.leave(key, t)

	var zero T
	if delay > 0 {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-t.done:
			return zero, ErrSuperseded
		case <-ctx.Done():
			return zero, ctx.Err()
		}
	}
	if !l.current(key, t) {
		return zero, ErrSuperseded
	}
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	out := fn(ctx)
	if !l.current(key, t) {
		return zero, ErrSuperseded
	}
	return out, nil
}

func (l *Live[T]) enter(key string) *ticket {
	l.mu.Lock()
	defer l.mu.Unlock()
	if prev, ok := l.pending[key]; ok {
		close(prev.done)
	}
	l.seq++
	t := &ticket{gen: l.seq, done: make(chan struct{})}
	l.pending[key] = t
	return t
}

func (l *Live[T]) current(key string, t *ticket) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	cur, ok := l.pending[key]
	return ok && cur.gen == t.gen
}

func (l *Live[T]) leave(key string, t *ticket) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if cur, ok := l.pending[key]; ok && cur.gen == t.gen {
		delete(l.pending, key)
	}
}

// Pending reports how many keys have a call in flight.
func (l *Live[T]) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.pending)
}
