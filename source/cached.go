package source

import (
	"context"
	"time"

	"github.com/unkn0wn-root/assetcache/bytestore"
)

// CostFunc computes the store cost of memoized bytes.
type CostFunc func(key string, data []byte) int64

// CachedSource memoizes raw bytes from a slow child source (network, remote
// store) in a bytestore.Store, so repeated fetches of the same key skip the
// child. It caches bytes only; decoded-value caching and the at-most-once
// decode guarantee belong to the loader above it.
//
// Misses and hard errors are never memoized, and store failures degrade to
// fetching from the child directly.
type CachedSource struct {
	child Source
	store bytestore.Store
	ttl   time.Duration
	cost  CostFunc
}

type CachedConfig struct {
	TTL  time.Duration // 0 => no expiry (backend permitting)
	Cost CostFunc      // nil => len(data)
}

func NewCached(child Source, store bytestore.Store, cfg CachedConfig) *CachedSource {
	c := &CachedSource{
		child: child,
		store: store,
		ttl:   cfg.TTL,
		cost:  cfg.Cost,
	}
	if c.cost == nil {
		c.cost = func(_ string, data []byte) int64 { return int64(len(data)) }
	}
	return c
}

func (c *CachedSource) Fetch(ctx context.Context, key string) ([]byte, error) {
	if data, ok, err := c.store.Get(ctx, key); err == nil && ok {
		return data, nil
	}
	data, err := c.child.Fetch(ctx, key)
	if err != nil {
		return nil, err
	}
	// best-effort; ok=false means the store refused under pressure
	_, _ = c.store.Set(ctx, key, data, c.cost(key, data), c.ttl)
	return data, nil
}

// Close shuts down the byte store and, when the child supports it, the child.
func (c *CachedSource) Close(ctx context.Context) error {
	var childErr error
	if cl, ok := c.child.(interface{ Close(context.Context) error }); ok {
		childErr = cl.Close(ctx)
	}
	if err := c.store.Close(ctx); err != nil {
		return err
	}
	return childErr
}
