package assetcache

import (
	"errors"
	"fmt"

	"github.com/unkn0wn-root/assetcache/source"
)

// ErrNotFound is returned by Load when every source reported a miss for the
// key. It aliases source.ErrNotFound, so errors.Is works against either.
// A not-found load leaves no cache entry; a later attempt retries the sources.
var ErrNotFound = source.ErrNotFound

// ErrClosed is returned by Load and Peek after the loader has been closed.
var ErrClosed = errors.New("assetcache: loader is closed")

// SourceError reports a hard failure (I/O, transport, corruption) from the
// byte-fetch step. It is distinct from ErrNotFound: under the default
// combined-source policy a hard error is terminal and does not fall through
// to later sources.
type SourceError struct {
	Key string
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("assetcache: fetch %q: %v", e.Key, e.Err)
}

func (e *SourceError) Unwrap() error { return e.Err }

// DecodeError reports that bytes for the key were fetched but the decoder
// rejected them (malformed payload, unknown tag, size limit). It indicates a
// data or integration problem, not a missing asset.
type DecodeError struct {
	Key string
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("assetcache: decode %q: %v", e.Key, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// TypeMismatchError reports that a loaded asset's dynamic type does not match
// the type requested through the typed facade. This is a programming error
// (wrong decoder or wrong type argument at the call site), never a data
// error, and is reported separately from the load taxonomy above.
type TypeMismatchError struct {
	Key  string
	Want string
	Got  string
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("assetcache: asset %q is %s, want %s", e.Key, e.Got, e.Want)
}
