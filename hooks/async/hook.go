// Package asynchook decouples hook observers from the load hot path: events
// are enqueued to a bounded channel and delivered by worker goroutines.
// When the queue is full, events are dropped rather than blocking a load.
//
// usage:
//
//	raw := sloghooks.New(slog.Default(), sloghooks.Options{HitEvery: 100})
//	hooks := asynchook.New(raw, 1, 1000) // 1 worker; queue 1000 events
//	defer hooks.Close()
//
//	ld, _ := assetcache.New[Asset](assetcache.Options[Asset]{
//	    Source:  src,
//	    Decoder: dec,
//	    Hooks:   hooks, // or `raw` if you don't want async
//	})
package asynchook

import (
	"sync"
	"time"

	"github.com/unkn0wn-root/assetcache"
)

type Hooks struct {
	inner assetcache.Hooks
	q     chan func()
	wg    sync.WaitGroup
	once  sync.Once
}

var _ assetcache.Hooks = (*Hooks)(nil)

func New(inner assetcache.Hooks, workers, qlen int) *Hooks {
	if workers <= 0 {
		workers = 1
	}
	if qlen <= 0 {
		qlen = 1024
	}

	h := &Hooks{inner: inner, q: make(chan func(), qlen)}
	h.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer h.wg.Done()
			for f := range h.q {
				f()
			}
		}()
	}
	return h
}

func (h *Hooks) Close() {
	h.once.Do(func() {
		close(h.q)
		h.wg.Wait()
	})
}

func (h *Hooks) try(f func()) {
	select {
	case h.q <- f:
	default: // drop
	}
}

func (h *Hooks) Hit(k string)      { h.try(func() { h.inner.Hit(k) }) }
func (h *Hooks) Miss(k string)     { h.try(func() { h.inner.Miss(k) }) }
func (h *Hooks) NotFound(k string) { h.try(func() { h.inner.NotFound(k) }) }
func (h *Hooks) SourceError(k string, err error) {
	h.try(func() { h.inner.SourceError(k, err) })
}
func (h *Hooks) DecodeError(k string, err error) {
	h.try(func() { h.inner.DecodeError(k, err) })
}
func (h *Hooks) Loaded(k string, took time.Duration) {
	h.try(func() { h.inner.Loaded(k, took) })
}
