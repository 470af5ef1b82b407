package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phongnickchinh/tripsearch-cli/internal/core/domain"
)

func TestDebouncer_ZeroDelayRunsImmediately(t *testing.T) {
	d := NewDebouncer(0)
	ran := false

	err := d.Do(context.Background(), func(context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestDebouncer_DelayedCallRuns(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)
	ran := false

	err := d.Do(context.Background(), func(context.Context) error {
		ran = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, ran)
}

func TestDebouncer_NewerCallSupersedesOlder(t *testing.T) {
	d := NewDebouncer(50 * time.Millisecond)

	var wg sync.WaitGroup
	var firstErr error
	started := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		close(started)
		firstErr = d.Do(context.Background(), func(context.Context) error {
			t.Error("superseded call must not run")
			return nil
		})
	}()

	<-started
	time.Sleep(10 * time.Millisecond) // let the first call enter its wait

	var secondRan bool
	err := d.Do(context.Background(), func(context.Context) error {
		secondRan = true
		return nil
	})

	wg.Wait()
	require.NoError(t, err)
	assert.True(t, secondRan)
	assert.ErrorIs(t, firstErr, domain.ErrSuperseded)
}

func TestDebouncer_BurstOnlyLastRuns(t *testing.T) {
	d := NewDebouncer(40 * time.Millisecond)

	var mu sync.Mutex
	var ran []int
	var wg sync.WaitGroup
	errs := make([]error, 5)

	for i := range 5 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = d.Do(context.Background(), func(context.Context) error {
				mu.Lock()
				ran = append(ran, i)
				mu.Unlock()
				return nil
			})
		}()
		time.Sleep(5 * time.Millisecond) // keystroke cadence well inside the window
	}
	wg.Wait()

	// Exactly one call from the burst fires.
	require.Len(t, ran, 1)

	superseded := 0
	for _, err := range errs {
		if err == nil {
			continue
		}
		assert.ErrorIs(t, err, domain.ErrSuperseded)
		superseded++
	}
	assert.Equal(t, 4, superseded)
}

func TestDebouncer_ContextCancellation(t *testing.T) {
	d := NewDebouncer(time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	err := d.Do(ctx, func(context.Context) error {
		t.Error("cancelled call must not run")
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestDebouncer_FiredCallNotCancelledByNewer(t *testing.T) {
	d := NewDebouncer(10 * time.Millisecond)

	running := make(chan struct{})
	release := make(chan struct{})
	var firstErr error
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		firstErr = d.Do(context.Background(), func(context.Context) error {
			close(running)
			<-release
			return nil
		})
	}()

	<-running // first call fired and is in flight

	// A newer call must not cancel work that already started.
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = d.Do(context.Background(), func(context.Context) error { return nil })
	}()

	time.Sleep(30 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.NoError(t, firstErr)
}

func TestDebouncer_SetDelay(t *testing.T) {
	d := NewDebouncer(300 * time.Millisecond)
	assert.Equal(t, 300*time.Millisecond, d.Delay())

	d.SetDelay(50 * time.Millisecond)
	assert.Equal(t, 50*time.Millisecond, d.Delay())
}

func TestDebouncer_PropagatesFnError(t *testing.T) {
	d := NewDebouncer(0)

	err := d.Do(context.Background(), func(context.Context) error {
		return domain.ErrResolveFailed
	})

	assert.ErrorIs(t, err, domain.ErrResolveFailed)
}
