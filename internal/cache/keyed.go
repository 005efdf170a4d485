package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"live-match-service/internal/metrics"
)

// maxKeyedEntries caps how many per-key caches are retained. Date keys roll
// over daily, so old entries are useless after a couple of days.
const maxKeyedEntries = 16

// KeyedFetchFunc loads a fresh payload for one key.
type KeyedFetchFunc[T any] func(ctx context.Context, key string) (T, error)

// KeyedCache maintains one stale-serving cache per key (the schedule source is
// cached per YYYYMMDD date key).
type KeyedCache[T any] struct {
	mu       sync.Mutex
	name     string
	ttl      time.Duration
	fetch    KeyedFetchFunc[T]
	logger   *slog.Logger
	recorder *metrics.Recorder
	now      func() time.Time
	entries  map[string]*Cache[T]
}

// NewKeyed constructs a keyed cache around the given fetch function.
func NewKeyed[T any](name string, ttl time.Duration, fetch KeyedFetchFunc[T], logger *slog.Logger, recorder *metrics.Recorder) *KeyedCache[T] {
	return &KeyedCache[T]{
		name:     name,
		ttl:      ttl,
		fetch:    fetch,
		logger:   logger,
		recorder: recorder,
		now:      time.Now,
		entries:  make(map[string]*Cache[T]),
	}
}

// Get returns the payload for a key with the same freshness/stale-serve
// semantics as Cache.Get.
func (k *KeyedCache[T]) Get(ctx context.Context, key string) (T, error) {
	return k.entry(key).Get(ctx)
}

// StateOf reports the lifecycle position of one key's entry.
func (k *KeyedCache[T]) StateOf(key string) State {
	k.mu.Lock()
	entry, ok := k.entries[key]
	k.mu.Unlock()
	if !ok {
		return StateEmpty
	}
	return entry.State()
}

// InvalidateAll marks every key stale so the next Get per key refreshes.
func (k *KeyedCache[T]) InvalidateAll() {
	k.mu.Lock()
	entries := make([]*Cache[T], 0, len(k.entries))
	for _, entry := range k.entries {
		entries = append(entries, entry)
	}
	k.mu.Unlock()

	for _, entry := range entries {
		entry.Invalidate()
	}
}

func (k *KeyedCache[T]) entry(key string) *Cache[T] {
	k.mu.Lock()
	defer k.mu.Unlock()

	if entry, ok := k.entries[key]; ok {
		return entry
	}

	if len(k.entries) >= maxKeyedEntries {
		k.evictOne()
	}

	entry := New(k.name, k.ttl, func(ctx context.Context) (T, error) {
		return k.fetch(ctx, key)
	}, k.logger, k.recorder)
	entry.now = k.now
	k.entries[key] = entry
	return entry
}

func (k *KeyedCache[T]) evictOne() {
	for key := range k.entries {
		delete(k.entries, key)
		return
	}
}
