package assetcache

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	dec "github.com/unkn0wn-root/assetcache/decoder"
	"github.com/unkn0wn-root/assetcache/handle"
	src "github.com/unkn0wn-root/assetcache/source"
)

type loader[V any] struct {
	source  src.Source
	decoder dec.Decoder[V]
	log     Logger
	hooks   Hooks

	// flight collapses concurrent loads of the same absent key into one
	// fetch+decode. Keys are independent; nothing here serializes key A
	// against key B.
	flight singleflight.Group

	// assets is the only shared mutable state. The lock is held for map
	// reads and inserts only, never across a fetch or decode.
	mu     sync.RWMutex
	assets map[string]*handle.Handle[V]
	closed bool
}

func newLoader[V any](opts Options[V]) (*loader[V], error) {
	if opts.Source == nil {
		return nil, fmt.Errorf("assetcache: source is required")
	}
	if opts.Decoder == nil {
		return nil, fmt.Errorf("assetcache: decoder is required")
	}

	l := &loader[V]{
		source:  opts.Source,
		decoder: opts.Decoder,
		assets:  make(map[string]*handle.Handle[V]),
	}

	// defaults
	l.log = coalesce[Logger](opts.Logger, NopLogger{})
	l.hooks = coalesce[Hooks](opts.Hooks, NopHooks{})

	return l, nil
}

func (l *loader[V]) Load(ctx context.Context, key string, cc any) (*handle.Handle[V], error) {
	h, ok, err := l.cloneCached(key)
	if err != nil {
		return nil, err
	}
	if ok {
		l.hooks.Hit(key)
		return h, nil
	}
	l.hooks.Miss(key)

	ch := l.flight.DoChan(key, func() (any, error) {
		h, err := l.loadSlow(ctx, key, cc)
		if err != nil {
			return nil, err
		}
		return h, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return l.claim(res.Val.(*handle.Handle[V]))
	case <-ctx.Done():
		// Abandon the wait only. The flight keeps running under the
		// claimer's ctx and may still publish for future loads.
		return nil, ctx.Err()
	}
}

// loadSlow runs inside the single flight for key. The returned handle is the
// cache's own reference; every caller clones it.
func (l *loader[V]) loadSlow(ctx context.Context, key string, cc any) (*handle.Handle[V], error) {
	// A previous flight may have published between the caller's fast-path
	// miss and this claim.
	if h, ok, err := l.lookup(key); err != nil || ok {
		return h, err
	}

	start := time.Now()
	data, err := l.source.Fetch(ctx, key)
	if err != nil {
		if errors.Is(err, src.ErrNotFound) {
			l.hooks.NotFound(key)
			l.log.Debug("asset not found", Fields{"key": key})
			return nil, fmt.Errorf("assetcache: load %q: %w", key, ErrNotFound)
		}
		l.hooks.SourceError(key, err)
		l.log.Warn("source fetch failed", Fields{"key": key, "err": err})
		return nil, &SourceError{Key: key, Err: err}
	}

	v, err := l.decoder.Decode(data, cc)
	if err != nil {
		l.hooks.DecodeError(key, err)
		l.log.Warn("asset decode failed", Fields{"key": key, "err": err})
		return nil, &DecodeError{Key: key, Err: err}
	}

	h := handle.New(v)
	l.publish(key, h)
	took := time.Since(start)
	l.hooks.Loaded(key, took)
	l.log.Debug("asset loaded", Fields{"key": key, "took": took})
	return h, nil
}

// lookup returns the cache's own reference. It must only feed code that
// clones under the lock (cloneCached, claim) or the flight's re-check;
// handing its result to a caller directly would race Close's releases.
func (l *loader[V]) lookup(key string) (*handle.Handle[V], bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, false, ErrClosed
	}
	h, ok := l.assets[key]
	return h, ok, nil
}

// cloneCached returns a caller-owned clone of the published handle for key.
// The clone happens under the read lock, which pairs with Close releasing
// the cache's references under the write lock: no clone can observe a
// reference Close has already dropped.
func (l *loader[V]) cloneCached(key string) (*handle.Handle[V], bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, false, ErrClosed
	}
	h, ok := l.assets[key]
	if !ok {
		return nil, false, nil
	}
	return h.Clone(), true, nil
}

// claim clones a handle produced by a load flight for one waiter. If the
// loader closed while the flight ran, the cache's reference may already be
// released, so the waiter gets ErrClosed instead of a dead handle.
func (l *loader[V]) claim(h *handle.Handle[V]) (*handle.Handle[V], error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.closed {
		return nil, ErrClosed
	}
	return h.Clone(), nil
}

func (l *loader[V]) publish(key string, h *handle.Handle[V]) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.closed {
		// Entry is not tracked; it lives as long as caller handles do.
		return
	}
	l.assets[key] = h
}

func (l *loader[V]) Peek(key string) (*handle.Handle[V], bool) {
	h, ok, err := l.cloneCached(key)
	if err != nil || !ok {
		return nil, false
	}
	return h, true
}

func (l *loader[V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.assets)
}

func (l *loader[V]) Keys() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	keys := make([]string, 0, len(l.assets))
	for k := range l.assets {
		keys = append(keys, k)
	}
	return keys
}

func (l *loader[V]) Close(ctx context.Context) error {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return nil
	}
	l.closed = true
	// Release the cache's references before dropping the lock. Load and
	// Peek clone under the read lock, so no clone can race these releases.
	for _, h := range l.assets {
		h.Release()
	}
	l.assets = nil
	l.mu.Unlock()

	if c, ok := l.source.(interface{ Close(context.Context) error }); ok {
		return c.Close(ctx)
	}
	return nil
}
