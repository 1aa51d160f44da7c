package cache

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"varnix-dashboard/metrics"
	"varnix-dashboard/models"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached list.
type Key struct {
	Kind   models.Kind
	UserID string
}

func (k Key) String() string {
	return fmt.Sprintf("%s/%s", k.Kind, k.UserID)
}

// QueryCache holds the latest list result per key. Entries live until they are
// invalidated; there is no expiry.
//
// Each key carries a generation that Invalidate bumps. A fetch records the
// generation it started under and only stores its result if that generation is
// still current, so a read racing a mutation cannot resurrect stale data.
type QueryCache struct {
	mu      sync.Mutex
	entries map[Key]interface{}
	gens    map[Key]uint64
	group   singleflight.Group
}

func New() *QueryCache {
	return &QueryCache{
		entries: make(map[Key]interface{}),
		gens:    make(map[Key]uint64),
	}
}

// Attach subscribes the cache to bus and returns the unsubscribe function.
func (c *QueryCache) Attach(bus *Bus) func() {
	return bus.Subscribe(func(e Event) {
		if e.UserID == "" {
			c.InvalidateKind(e.Kind)
			return
		}
		c.Invalidate(Key{Kind: e.Kind, UserID: e.UserID})
	})
}

func (c *QueryCache) Invalidate(key Key) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, key)
	c.gens[key]++
	metrics.RecordInvalidation(key.Kind.String())
}

// InvalidateKind drops every user's list for kind.
func (c *QueryCache) InvalidateKind(kind models.Kind) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.gens {
		if key.Kind == kind {
			delete(c.entries, key)
			c.gens[key]++
		}
	}
	metrics.RecordInvalidation(kind.String())
}

// Cached reports whether key currently has a stored result.
func (c *QueryCache) Cached(key Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.entries[key]
	return ok
}

func (c *QueryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *QueryCache) lookup(key Key) (interface{}, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, tracked := c.gens[key]; !tracked {
		c.gens[key] = 0
	}
	v, ok := c.entries[key]
	return v, c.gens[key], ok
}

func (c *QueryCache) store(key Key, gen uint64, v interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gens[key] != gen {
		return
	}
	c.entries[key] = v
}

// Fetch returns the cached list for key or loads it with fetch. Concurrent
// callers for the same key and generation share a single fetch, which runs
// to completion even if the first caller's context is cancelled. Callers get
// their own copy of the slice.
func Fetch[T any](ctx context.Context, c *QueryCache, key Key, fetch func(context.Context) ([]T, error)) ([]T, error) {
	v, gen, ok := c.lookup(key)
	if ok {
		metrics.RecordCacheLookup(key.Kind.String(), "hit")
		return slices.Clone(v.([]T)), nil
	}

	flightKey := fmt.Sprintf("%s#%d", key, gen)
	detached := context.WithoutCancel(ctx)

	v, err, shared := c.group.Do(flightKey, func() (interface{}, error) {
		rows, err := fetch(detached)
		if err != nil {
			return nil, err
		}
		c.store(key, gen, rows)
		return rows, nil
	})
	if shared {
		metrics.RecordCacheLookup(key.Kind.String(), "shared")
	} else {
		metrics.RecordCacheLookup(key.Kind.String(), "miss")
	}
	if err != nil {
		return nil, err
	}
	return slices.Clone(v.([]T)), nil
}
