package source

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// memStore is an in-file bytestore.Store fake.
type memStore struct {
	mu     sync.Mutex
	m      map[string][]byte
	getErr error
	reject bool // Set returns ok=false
	sets   int
}

func newMemStore() *memStore { return &memStore{m: make(map[string][]byte)} }

func (s *memStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, false, s.getErr
	}
	b, ok := s.m[key]
	return b, ok, nil
}

func (s *memStore) Set(_ context.Context, key string, value []byte, _ int64, _ time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sets++
	if s.reject {
		return false, nil
	}
	s.m[key] = value
	return true, nil
}

func (s *memStore) Del(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, key)
	return nil
}

func (s *memStore) Close(context.Context) error { return nil }

// countSource counts child fetches.
type countSource struct {
	inner Source
	n     int
}

func (c *countSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	c.n++
	return c.inner.Fetch(ctx, key)
}

func TestCachedSourceMemoizesBytes(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()
	mem.Put("k", []byte("bytes"))
	child := &countSource{inner: mem}
	store := newMemStore()
	cs := NewCached(child, store, CachedConfig{})

	for i := 0; i < 3; i++ {
		got, err := cs.Fetch(ctx, "k")
		if err != nil || string(got) != "bytes" {
			t.Fatalf("fetch %d: got=%q err=%v", i, got, err)
		}
	}
	if child.n != 1 {
		t.Fatalf("child fetched %d times, want 1", child.n)
	}
}

func TestCachedSourceDoesNotCacheFailures(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()
	child := &countSource{inner: mem}
	store := newMemStore()
	cs := NewCached(child, store, CachedConfig{})

	if _, err := cs.Fetch(ctx, "k"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if store.sets != 0 {
		t.Fatalf("a miss must not be memoized")
	}

	// Key appears later; the next fetch reaches the child again.
	mem.Put("k", []byte("late"))
	got, err := cs.Fetch(ctx, "k")
	if err != nil || string(got) != "late" {
		t.Fatalf("fetch after put: got=%q err=%v", got, err)
	}
	if child.n != 2 {
		t.Fatalf("child fetched %d times, want 2", child.n)
	}
}

func TestCachedSourceStoreRejectionDegrades(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()
	mem.Put("k", []byte("bytes"))
	child := &countSource{inner: mem}
	store := newMemStore()
	store.reject = true
	cs := NewCached(child, store, CachedConfig{})

	for i := 0; i < 2; i++ {
		got, err := cs.Fetch(ctx, "k")
		if err != nil || string(got) != "bytes" {
			t.Fatalf("fetch %d: got=%q err=%v", i, got, err)
		}
	}
	// No memoization happened, so both fetches reached the child.
	if child.n != 2 {
		t.Fatalf("child fetched %d times, want 2", child.n)
	}
}

func TestCachedSourceStoreGetErrorFallsBack(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()
	mem.Put("k", []byte("bytes"))
	child := &countSource{inner: mem}
	store := newMemStore()
	store.getErr = errors.New("store down")
	cs := NewCached(child, store, CachedConfig{})

	got, err := cs.Fetch(ctx, "k")
	if err != nil || string(got) != "bytes" {
		t.Fatalf("store error should fall back to child: got=%q err=%v", got, err)
	}
}

func TestCachedSourceCustomCost(t *testing.T) {
	ctx := context.Background()
	mem := NewMem()
	mem.Put("k", []byte("0123456789"))
	store := newMemStore()
	var gotCost int64
	cs := NewCached(mem, store, CachedConfig{
		Cost: func(_ string, data []byte) int64 {
			gotCost = int64(len(data)) * 2
			return gotCost
		},
	})
	if _, err := cs.Fetch(ctx, "k"); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotCost != 20 {
		t.Fatalf("cost func not applied, got %d", gotCost)
	}
}
