// Package cache implements the time-boxed, stale-serving caches that sit in
// front of every upstream source. A cache moves EMPTY -> FRESH -> STALE; a
// stale refresh failure serves the previous payload instead of propagating
// the error, and the payload is never evicted on failure.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"live-match-service/internal/logging"
	"live-match-service/internal/metrics"
)

// State describes the lifecycle position of a cache entry.
type State string

const (
	StateEmpty State = "empty"
	StateFresh State = "fresh"
	StateStale State = "stale"
)

// FetchFunc loads a fresh payload from the upstream source.
type FetchFunc[T any] func(ctx context.Context) (T, error)

// Cache is a single stale-serving TTL cache. The mutex covers the whole
// read-then-maybe-refresh sequence so two concurrent stale refreshes cannot
// lose an update.
type Cache[T any] struct {
	mu       sync.Mutex
	name     string
	ttl      time.Duration
	fetch    FetchFunc[T]
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time

	payload    T
	capturedAt time.Time
	has        bool
}

// New constructs a cache around the given fetch function.
func New[T any](name string, ttl time.Duration, fetch FetchFunc[T], logger *slog.Logger, recorder *metrics.Recorder) *Cache[T] {
	return &Cache[T]{
		name:     name,
		ttl:      ttl,
		fetch:    fetch,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
	}
}

// Get returns the cached payload, refreshing it when the entry is empty or
// older than the TTL. A failed refresh over a stale entry serves the previous
// payload; only an empty cache with a failed fetch returns an error (and the
// zero payload).
func (c *Cache[T]) Get(ctx context.Context) (T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.has && c.now().Sub(c.capturedAt) < c.ttl {
		return c.payload, nil
	}

	fresh, err := c.fetch(ctx)
	if err == nil {
		c.payload = fresh
		c.capturedAt = c.now()
		c.has = true
		return c.payload, nil
	}

	if c.has {
		logging.Warn(c.logger, "cache refresh failed, serving stale payload",
			slog.String(logging.FieldSource, c.name),
			slog.Int64("age_ms", c.now().Sub(c.capturedAt).Milliseconds()),
			"error", err,
		)
		c.recorder.RecordStaleServe(c.name)
		return c.payload, nil
	}

	logging.Warn(c.logger, "cache fetch failed with no fallback",
		slog.String(logging.FieldSource, c.name),
		"error", err,
	)
	var zero T
	return zero, err
}

// Invalidate marks the entry stale so the next Get attempts a refresh. The
// payload is kept as the stale fallback.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.capturedAt = time.Time{}
}

// State reports the entry's lifecycle position.
func (c *Cache[T]) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case !c.has:
		return StateEmpty
	case c.now().Sub(c.capturedAt) < c.ttl:
		return StateFresh
	default:
		return StateStale
	}
}

// Age returns how old the current payload is; zero when empty.
func (c *Cache[T]) Age() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.has {
		return 0
	}
	return c.now().Sub(c.capturedAt)
}
