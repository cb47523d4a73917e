package assetcache

import (
	"context"
	"fmt"
	"reflect"

	"github.com/unkn0wn-root/assetcache/handle"
)

// TypedHandle pairs a loaded asset handle with a statically typed view of its
// value. Releasing the TypedHandle releases its share of the underlying asset.
type TypedHandle[T, V any] struct {
	*handle.Handle[V]
	value T
}

// Asset returns the typed value.
func (t *TypedHandle[T, V]) Asset() T { return t.value }

// LoadTyped loads key through l and asserts the decoded asset to T. It is the
// entry point for heterogeneous pipelines (e.g. Loader[tagged.Asset]) where
// the caller knows which concrete type a key should decode to:
//
//	h, err := assetcache.LoadTyped[*Sprite](ctx, ld, "player.json", reg)
//
// Load failures keep their taxonomy (ErrNotFound, *SourceError,
// *DecodeError). A successfully loaded asset whose dynamic type is not T
// yields a *TypeMismatchError instead: wrong decoder or wrong type argument
// at the call site, not bad data.
func LoadTyped[T, V any](ctx context.Context, l Loader[V], key string, cc any) (*TypedHandle[T, V], error) {
	h, err := l.Load(ctx, key, cc)
	if err != nil {
		return nil, err
	}
	v, ok := any(h.Value()).(T)
	if !ok {
		got := fmt.Sprintf("%T", h.Value())
		h.Release()
		return nil, &TypeMismatchError{
			Key:  key,
			Want: reflect.TypeOf((*T)(nil)).Elem().String(),
			Got:  got,
		}
	}
	return &TypedHandle[T, V]{Handle: h, value: v}, nil
}

// TryLoadTyped is the option-style variant of LoadTyped for callers that do
// not need the error distinction: every failure, type mismatch included,
// collapses to ok=false.
func TryLoadTyped[T, V any](ctx context.Context, l Loader[V], key string, cc any) (*TypedHandle[T, V], bool) {
	th, err := LoadTyped[T](ctx, l, key, cc)
	if err != nil {
		return nil, false
	}
	return th, true
}
