// Package tagged implements a tagged-JSON asset format for heterogeneous
// asset pipelines: each payload is an envelope
//
//	{"type": "<tag>", "data": { ... }}
//
// and a caller-owned Registry maps tags to concrete asset constructors.
// Registration is explicit; there is no process-wide registry, so
// registration order and tag conflicts are the caller's to control and test.
//
// The Registry is passed to Decoder as the per-call creation context:
//
//	reg := tagged.NewRegistry()
//	reg.MustRegister("sprite", func() tagged.Asset { return &Sprite{} })
//	ld, _ := assetcache.New[tagged.Asset](assetcache.Options[tagged.Asset]{
//	    Source:  src,
//	    Decoder: tagged.Decoder{},
//	})
//	h, err := ld.Load(ctx, "player.json", reg)
package tagged

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	dec "github.com/unkn0wn-root/assetcache/decoder"
)

// Asset is implemented by every value the tagged decoder can produce.
// Constructors must return a pointer type so the JSON payload can be
// unmarshaled into it.
type Asset interface {
	// OnCreate runs once, right after a successful decode and before the
	// value is published to any caller. Use it for derived-field setup.
	OnCreate()
}

// Constructor allocates an empty asset for one tag.
type Constructor func() Asset

// Registry maps envelope tags to asset constructors.
type Registry struct {
	mu    sync.RWMutex
	ctors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{ctors: make(map[string]Constructor)}
}

// Register binds tag to fn. Empty tags, nil constructors, and duplicate
// registrations are errors; a tag is never silently rebound.
func (r *Registry) Register(tag string, fn Constructor) error {
	if tag == "" {
		return fmt.Errorf("tagged: empty tag")
	}
	if fn == nil {
		return fmt.Errorf("tagged: nil constructor for tag %q", tag)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.ctors[tag]; exists {
		return fmt.Errorf("tagged: tag %q already registered", tag)
	}
	r.ctors[tag] = fn
	return nil
}

// MustRegister is like Register but panics on error. Intended for
// registration at startup.
func (r *Registry) MustRegister(tag string, fn Constructor) {
	if err := r.Register(tag, fn); err != nil {
		panic(err)
	}
}

// Tags returns the registered tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.ctors))
	for t := range r.ctors {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

func (r *Registry) lookup(tag string) (Constructor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.ctors[tag]
	return fn, ok
}

// UnknownTagError reports an envelope whose tag has no registered
// constructor.
type UnknownTagError struct {
	Tag string
}

func (e *UnknownTagError) Error() string {
	return fmt.Sprintf("tagged: unknown asset tag %q", e.Tag)
}

type envelope struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// Decoder decodes tagged-JSON envelopes into Asset values, dispatching on
// the "type" tag via the *Registry passed as the creation context.
// The zero value is ready to use.
type Decoder struct{}

var _ dec.Decoder[Asset] = Decoder{}

func (Decoder) Decode(b []byte, cc any) (Asset, error) {
	reg, ok := cc.(*Registry)
	if !ok || reg == nil {
		return nil, fmt.Errorf("tagged: creation context is %T, want *tagged.Registry", cc)
	}

	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, fmt.Errorf("tagged: invalid envelope: %w", err)
	}
	if env.Type == "" {
		return nil, fmt.Errorf("tagged: envelope missing %q field", "type")
	}
	ctor, ok := reg.lookup(env.Type)
	if !ok {
		return nil, &UnknownTagError{Tag: env.Type}
	}

	a := ctor()
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, a); err != nil {
			return nil, fmt.Errorf("tagged: decode %q payload: %w", env.Type, err)
		}
	}
	a.OnCreate()
	return a, nil
}
