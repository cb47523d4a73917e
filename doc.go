// Package assetcache implements an in-process, concurrency-safe asset loading
// layer: a logical asset key is resolved to raw bytes by a pluggable Source,
// decoded into a typed value by a pluggable Decoder, and cached so that every
// later (or concurrent) load of the same key returns a handle to the one
// decoded instance.
//
// Components:
//   - source.Source: raw-byte provider for a key (directory, zip, in-memory,
//     or a Combined fallback chain over several of them).
//   - decoder.Decoder[V]: turns raw bytes (plus an opaque per-call creation
//     context) into a V.
//   - handle.Handle[V]: reference-counted, read-only shared access to one
//     decoded value.
//   - Loader[V]: the cached orchestrator. Per key it performs at most one
//     successful fetch+decode over its whole lifetime; concurrent callers for
//     the same key join the single in-flight load, while loads of different
//     keys proceed independently.
//
// Failed loads publish nothing: NotFound, source and decode errors are
// surfaced to every waiter and the next load of that key starts fresh.
// Published entries are permanent; the loader never evicts or replaces them.
//
// Typical use:
//
//	src := source.NewCombined(source.NewDir("assets"), source.NewDir("/global_assets"))
//	ld, _ := assetcache.New[tagged.Asset](assetcache.Options[tagged.Asset]{
//	    Source:  src,
//	    Decoder: tagged.Decoder{},
//	})
//	reg := tagged.NewRegistry()
//	reg.MustRegister("sprite", func() tagged.Asset { return &Sprite{} })
//
//	h, err := assetcache.LoadTyped[*Sprite](ctx, ld, "player.json", reg)
//	if err == nil {
//	    defer h.Release()
//	    draw(h.Asset())
//	}
package assetcache
