package tailor

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type liveResult struct {
	val string
	err error
}

func TestLiveOnlyLatestRuns(t *testing.T) {
	live := NewLive[string]()
	var ran atomic.Int32

	results := make([]liveResult, 3)
	var wg sync.WaitGroup
	for i, v := range []string{"a", "ab", "abc"} {
		wg.Add(1)
		go func(i int, v string) {
			defer wg.Done()
			out, err := live.Submit(context.Background(), "session-1", 50*time.Millisecond, func(context.Context) string {
				ran.Add(1)
				return v
			})
			results[i] = liveResult{out, err}
		}(i, v)
		time.Sleep(10 * time.Millisecond)
	}
	wg.Wait()

	assert.Equal(t, int32(1), ran.Load())
	assert.Equal(t, liveResult{"", ErrSuperseded}, results[0])
	assert.Equal(t, liveResult{"", ErrSuperseded}, results[1])
	assert.Equal(t, liveResult{"abc", nil}, results[2])
	assert.Equal(t, 0, live.Pending())
}

func TestLiveDiscardsResultOvertakenDuringRun(t *testing.T) {
	live := NewLive[int]()
	started := make(chan struct{})
	release := make(chan struct{})

	var firstErr error
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, firstErr = live.Submit(context.Background(), "k", 0, func(context.Context) int {
			close(started)
			<-release
			return 1
		})
	}()

	<-started
	second := make(chan error, 1)
	go func() {
		_, err := live.Submit(context.Background(), "k", time.Hour, func(context.Context) int { return 2 })
		second <- err
	}()
	time.Sleep(20 * time.Millisecond)
	close(release)
	<-done

	assert.ErrorIs(t, firstErr, ErrSuperseded)

	// a third call supersedes the hour-long wait of the second one
	out, err := live.Submit(context.Background(), "k", 0, func(context.Context) int { return 3 })
	require.NoError(t, err)
	assert.Equal(t, 3, out)
	assert.ErrorIs(t, <-second, ErrSuperseded)
}

func TestLiveKeysAreIndependent(t *testing.T) {
	live := NewLive[string]()
	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, key := range []string{"alice", "bob"} {
		wg.Add(1)
		go func(i int, key string) {
			defer wg.Done()
			_, errs[i] = live.Submit(context.Background(), key, 10*time.Millisecond, func(context.Context) string { return key })
		}(i, key)
	}
	wg.Wait()
	assert.Equal(t, []error{nil, nil}, errs)
}

func TestLiveStopsWaitingOnContext(t *testing.T) {
	live := NewLive[string]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	_, err := live.Submit(ctx, "k", time.Hour, func(context.Context) string {
		called = true
		return "x"
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrSuperseded)
	assert.False(t, called)
	assert.Equal(t, 0, live.Pending())
}

func TestLiveWithoutDelayChecksContext(t *testing.T) {
	live := NewLive[string]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := live.Submit(ctx, "k", 0, func(context.Context) string { return "x" })
	assert.ErrorIs(t, err, context.Canceled)
}
