package source

import (
	"context"
	"errors"
)

// ErrorPolicy controls how Combined reacts to a hard (non-ErrNotFound)
// failure from a child source.
type ErrorPolicy int

const (
	// FailFast returns the first hard error immediately. Later sources are
	// not consulted, so a transient infrastructure failure stays visible
	// instead of being masked by an unrelated fallback. This is the default.
	FailFast ErrorPolicy = iota

	// FallThrough keeps trying later sources after a hard error. If a later
	// source succeeds its bytes win; if every source fails, the first hard
	// error (not ErrNotFound) is returned.
	FallThrough
)

// Combined queries an ordered list of child sources for a key. The first
// source returning bytes wins, so earlier sources shadow later ones for the
// same key. ErrNotFound always falls through to the next source; hard errors
// follow the configured ErrorPolicy. Only when every source misses does
// Fetch return ErrNotFound.
type Combined struct {
	sources []Source
	policy  ErrorPolicy
}

// NewCombined builds a Combined with the FailFast policy.
func NewCombined(sources ...Source) *Combined {
	return NewCombinedWithPolicy(FailFast, sources...)
}

// NewCombinedWithPolicy builds a Combined with an explicit error policy.
func NewCombinedWithPolicy(policy ErrorPolicy, sources ...Source) *Combined {
	return &Combined{sources: sources, policy: policy}
}

// With appends a child source and returns the receiver for chaining.
// Not safe to call concurrently with Fetch.
func (c *Combined) With(s Source) *Combined {
	c.sources = append(c.sources, s)
	return c
}

func (c *Combined) Fetch(ctx context.Context, key string) ([]byte, error) {
	var firstErr error
	for _, s := range c.sources {
		data, err := s.Fetch(ctx, key)
		if err == nil {
			return data, nil
		}
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if c.policy == FailFast {
			return nil, err
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, ErrNotFound
}
