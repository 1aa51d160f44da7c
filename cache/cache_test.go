package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"varnix-dashboard/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	aliceProjects = Key{Kind: models.KindProjects, UserID: "alice"}
	bobProjects   = Key{Kind: models.KindProjects, UserID: "bob"}
	aliceTodos    = Key{Kind: models.KindTodos, UserID: "alice"}
)

// countingFetch returns rows and counts how often it ran.
func countingFetch(calls *int32, rows ...string) func(context.Context) ([]string, error) {
	return func(context.Context) ([]string, error) {
		atomic.AddInt32(calls, 1)
		return append([]string{}, rows...), nil
	}
}

func TestFetch_CachesUntilInvalidated(t *testing.T) {
	c := New()
	ctx := context.Background()
	var calls int32

	first, err := Fetch(ctx, c, aliceProjects, countingFetch(&calls, "a"))
	require.NoError(t, err)
	second, err := Fetch(ctx, c, aliceProjects, countingFetch(&calls, "a"))
	require.NoError(t, err)

	assert.Equal(t, []string{"a"}, first)
	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.True(t, c.Cached(aliceProjects))

	c.Invalidate(aliceProjects)
	assert.False(t, c.Cached(aliceProjects))

	third, err := Fetch(ctx, c, aliceProjects, countingFetch(&calls, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, third)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestFetch_KeysAreIndependent(t *testing.T) {
	c := New()
	ctx := context.Background()
	var calls int32

	for _, key := range []Key{aliceProjects, bobProjects, aliceTodos} {
		_, err := Fetch(ctx, c, key, countingFetch(&calls, key.String()))
		require.NoError(t, err)
	}
	assert.Equal(t, 3, c.Len())

	c.Invalidate(aliceProjects)
	assert.False(t, c.Cached(aliceProjects))
	assert.True(t, c.Cached(bobProjects))
	assert.True(t, c.Cached(aliceTodos))
}

func TestFetch_CoalescesConcurrentReads(t *testing.T) {
	c := New()
	var calls int32
	release := make(chan struct{})

	fetch := func(context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return []string{"row"}, nil
	}

	const readers = 20
	var wg sync.WaitGroup
	results := make([][]string, readers)
	errs := make([]error, readers)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Fetch(context.Background(), c, aliceProjects, fetch)
		}(i)
	}

	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < readers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []string{"row"}, results[i])
	}
}

func TestFetch_StaleResultIsNotStored(t *testing.T) {
	c := New()
	ctx := context.Background()

	rows, err := Fetch(ctx, c, aliceProjects, func(context.Context) ([]string, error) {
		// A mutation commits while this read is in flight.
		c.Invalidate(aliceProjects)
		return []string{"before-mutation"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"before-mutation"}, rows)
	assert.False(t, c.Cached(aliceProjects))

	var calls int32
	rows, err = Fetch(ctx, c, aliceProjects, countingFetch(&calls, "after-mutation"))
	require.NoError(t, err)
	assert.Equal(t, []string{"after-mutation"}, rows)
	assert.Equal(t, int32(1), calls)
}

func TestFetch_ErrorsAreNotCached(t *testing.T) {
	c := New()
	ctx := context.Background()
	boom := errors.New("boom")

	_, err := Fetch(ctx, c, aliceProjects, func(context.Context) ([]string, error) {
		return nil, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.False(t, c.Cached(aliceProjects))

	var calls int32
	_, err = Fetch(ctx, c, aliceProjects, countingFetch(&calls, "ok"))
	require.NoError(t, err)
	assert.Equal(t, int32(1), calls)
}

func TestFetch_ReturnsCopies(t *testing.T) {
	c := New()
	ctx := context.Background()
	var calls int32

	rows, err := Fetch(ctx, c, aliceProjects, countingFetch(&calls, "a", "b"))
	require.NoError(t, err)
	rows[0] = "mutated"

	again, err := Fetch(ctx, c, aliceProjects, countingFetch(&calls, "a", "b"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, again)
}

func TestFetch_IgnoresCallerCancellation(t *testing.T) {
	c := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := Fetch(ctx, c, aliceProjects, func(ctx context.Context) ([]string, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return []string{"done"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"done"}, rows)
}

func TestBus_InvalidatesAttachedCache(t *testing.T) {
	c := New()
	bus := NewBus()
	detach := c.Attach(bus)
	ctx := context.Background()
	var calls int32

	for _, key := range []Key{aliceProjects, bobProjects, aliceTodos} {
		_, err := Fetch(ctx, c, key, countingFetch(&calls))
		require.NoError(t, err)
	}

	bus.Publish(Event{Kind: models.KindProjects, UserID: "alice"})
	assert.False(t, c.Cached(aliceProjects))
	assert.True(t, c.Cached(bobProjects))

	bus.Publish(Event{Kind: models.KindProjects})
	assert.False(t, c.Cached(bobProjects))
	assert.True(t, c.Cached(aliceTodos))

	detach()
	bus.Publish(Event{Kind: models.KindTodos, UserID: "alice"})
	assert.True(t, c.Cached(aliceTodos))
}

func TestBus_SubscribersSeeEveryEvent(t *testing.T) {
	bus := NewBus()

	var got []Event
	unsubscribe := bus.Subscribe(func(e Event) { got = append(got, e) })

	bus.Publish(Event{Kind: models.KindPayments, UserID: "alice"})
	bus.Publish(Event{Kind: models.KindExpenses, UserID: "bob"})
	unsubscribe()
	bus.Publish(Event{Kind: models.KindTodos, UserID: "alice"})

	assert.Equal(t, []Event{
		{Kind: models.KindPayments, UserID: "alice"},
		{Kind: models.KindExpenses, UserID: "bob"},
	}, got)
}
