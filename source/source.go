// Package source defines the raw-byte source abstraction of the asset
// pipeline and ships the standard implementations: in-memory (Mem), directory
// on disk (Dir), zip archive (Zip), ordered fallback over several sources
// (Combined), and a byte-store-backed memoizing middleware (CachedSource).
//
// Implementations must be safe for concurrent use and must distinguish a miss
// (ErrNotFound) from a hard failure: Combined falls through only on misses.
package source

import (
	"context"
	"errors"
)

// ErrNotFound reports that a source does not hold the requested key.
// Hard failures (I/O, transport, corruption) must be returned as any other
// error, not as ErrNotFound.
var ErrNotFound = errors.New("source: asset not found")

// Source produces the raw bytes for a logical asset key.
//
// The returned slice is owned by the caller; a source must not retain or
// mutate it after return.
type Source interface {
	Fetch(ctx context.Context, key string) ([]byte, error)
}
