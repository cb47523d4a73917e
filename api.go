package assetcache

import (
	"context"

	dec "github.com/unkn0wn-root/assetcache/decoder"
	"github.com/unkn0wn-root/assetcache/handle"
	src "github.com/unkn0wn-root/assetcache/source"
)

// Loader is the cached asset loader for values of type V.
// All methods are safe for concurrent use.
type Loader[V any] interface {
	// Load returns a handle for key, fetching and decoding at most once per
	// key over the loader's lifetime. On a hit no I/O or decode happens.
	//
	// cc is an opaque creation context handed to the decoder for this call
	// only; the loader never retains it. When several callers race on an
	// absent key, exactly one claims the fetch+decode and the rest wait for
	// its outcome; the claimer's cc and ctx drive the flight. A waiter whose
	// own ctx is done stops waiting and returns ctx.Err(), the flight itself
	// keeps running.
	//
	// Errors: ErrNotFound, *SourceError, *DecodeError, ErrClosed. A failed
	// load publishes nothing, so the next Load for the key retries in full.
	Load(ctx context.Context, key string, cc any) (*handle.Handle[V], error)

	// Peek returns a clone of the handle for key if it is already published.
	// It never triggers a load.
	Peek(key string) (*handle.Handle[V], bool)

	// Len reports the number of published entries.
	Len() int

	// Keys returns the published keys in no particular order.
	Keys() []string

	// Close releases the loader's own references and closes the source if it
	// implements Close(context.Context) error. Handles held by callers stay
	// valid; their values live until those handles are released.
	Close(ctx context.Context) error
}

// Options tune the loader. Only Source and Decoder are required.
type Options[V any] struct {
	// Required
	Source  src.Source
	Decoder dec.Decoder[V]

	Logger Logger // if nil, NopLogger is used
	Hooks  Hooks  // if nil, NopHooks is used
}

func New[V any](opts Options[V]) (Loader[V], error) {
	return newLoader[V](opts)
}
