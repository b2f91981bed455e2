package service

import (
	"sync"
	"time"
)

// CounterStore is the counter capability behind the rate limiter. The
// in-memory implementation below is per-process; a shared store can be
// injected when the API runs on multiple instances.
type CounterStore interface {
	// Increment bumps the fixed-window counter for key and returns the new
	// count. An absent or expired entry restarts at 1 with a fresh window.
	Increment(key string, window time.Duration) int64
}

// RateLimiter enforces a fixed-window request quota per key.
type RateLimiter struct {
	store  CounterStore
	max    int
	window time.Duration
}

func NewRateLimiter(store CounterStore, maxRequests int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		store:  store,
		max:    maxRequests,
		window: window,
	}
}

// Allow reports whether the caller identified by key is within quota.
func (l *RateLimiter) Allow(key string) bool {
	return l.store.Increment(key, l.window) <= int64(l.max)
}

type counterEntry struct {
	count   int64
	resetAt time.Time
}

// MemoryCounterStore is a mutex-serialized in-memory CounterStore. Expired
// entries are also purged by a background sweep so keys that never return
// don't accumulate.
type MemoryCounterStore struct {
	mu      sync.Mutex
	entries map[string]*counterEntry
	now     func() time.Time
	done    chan struct{}
	once    sync.Once
}

func NewMemoryCounterStore(sweepInterval time.Duration) *MemoryCounterStore {
	s := &MemoryCounterStore{
		entries: make(map[string]*counterEntry),
		now:     time.Now,
		done:    make(chan struct{}),
	}
	if sweepInterval > 0 {
		go s.sweep(sweepInterval)
	}
	return s
}

func (s *MemoryCounterStore) Increment(key string, window time.Duration) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	entry, ok := s.entries[key]
	if !ok || !now.Before(entry.resetAt) {
		s.entries[key] = &counterEntry{count: 1, resetAt: now.Add(window)}
		return 1
	}

	entry.count++
	return entry.count
}

func (s *MemoryCounterStore) sweep(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeExpired()
		case <-s.done:
			return
		}
	}
}

func (s *MemoryCounterStore) purgeExpired() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for key, entry := range s.entries {
		if !now.Before(entry.resetAt) {
			delete(s.entries, key)
		}
	}
}

// Stop terminates the background sweep.
func (s *MemoryCounterStore) Stop() {
	s.once.Do(func() {
		close(s.done)
	})
}
