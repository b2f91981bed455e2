package service

import (
	"sync"
	"testing"
	"time"
)

func newTestStore() (*MemoryCounterStore, *time.Time) {
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	store := NewMemoryCounterStore(0) // no background sweep in tests
	store.now = func() time.Time { return now }
	return store, &now
}

func TestRateLimiter_DeniesSixthRequest(t *testing.T) {
	store, _ := newTestStore()
	limiter := NewRateLimiter(store, 5, 60*time.Second)

	for i := 1; i <= 5; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d should be allowed", i)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("6th request within the window should be denied")
	}
}

func TestRateLimiter_WindowExpiryResetsCount(t *testing.T) {
	store, now := newTestStore()
	limiter := NewRateLimiter(store, 5, 60*time.Second)

	for i := 0; i < 6; i++ {
		limiter.Allow("10.0.0.1")
	}

	*now = now.Add(61 * time.Second)

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("request after window expiry should be allowed")
	}
	// Count restarted at 1, so four more fit in the new window.
	for i := 0; i < 4; i++ {
		if !limiter.Allow("10.0.0.1") {
			t.Fatalf("request %d of the new window should be allowed", i+2)
		}
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("quota of the new window should be exhausted")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	store, _ := newTestStore()
	limiter := NewRateLimiter(store, 1, 60*time.Second)

	if !limiter.Allow("10.0.0.1") {
		t.Fatal("first key should be allowed")
	}
	if !limiter.Allow("10.0.0.2") {
		t.Fatal("second key should not share the first key's counter")
	}
	if limiter.Allow("10.0.0.1") {
		t.Fatal("first key should now be over quota")
	}
}

func TestMemoryCounterStore_ConcurrentIncrements(t *testing.T) {
	store, _ := newTestStore()

	const goroutines = 50
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			store.Increment("burst", time.Minute)
		}()
	}
	wg.Wait()

	if got := store.Increment("burst", time.Minute); got != goroutines+1 {
		t.Fatalf("count = %d, want %d (undercounted concurrent increments)", got, goroutines+1)
	}
}

func TestMemoryCounterStore_PurgeExpired(t *testing.T) {
	store, now := newTestStore()

	store.Increment("stale", 10*time.Second)
	store.Increment("fresh", 10*time.Minute)

	*now = now.Add(time.Minute)
	store.purgeExpired()

	store.mu.Lock()
	defer store.mu.Unlock()
	if _, ok := store.entries["stale"]; ok {
		t.Error("expired entry should have been purged")
	}
	if _, ok := store.entries["fresh"]; !ok {
		t.Error("unexpired entry should survive the sweep")
	}
}
