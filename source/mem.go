package source

import (
	"context"
	"sync"
)

// Mem is a map-backed source for programmatic assets and tests.
type Mem struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMem() *Mem {
	return &Mem{m: make(map[string][]byte)}
}

// Put stores data under key, replacing any previous bytes. The slice is
// copied, so the caller may reuse it.
func (s *Mem) Put(key string, data []byte) {
	cp := make([]byte, len(data))
	copy(cp, data)
	s.mu.Lock()
	s.m[key] = cp
	s.mu.Unlock()
}

func (s *Mem) Delete(key string) {
	s.mu.Lock()
	delete(s.m, key)
	s.mu.Unlock()
}

func (s *Mem) Fetch(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	data, ok := s.m[key]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrNotFound
	}
	cp := make([]byte, len(data))
	copy(cp, data)
	return cp, nil
}
