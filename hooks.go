package assetcache

import "time"

// Hooks lightweight callbacks for high-signal load events.
// Implementations MUST be cheap and non-blocking.
// The loader calls them on hot paths.
type Hooks interface {
	// The key was already published; no fetch or decode happened.
	Hit(key string)

	// The key was absent; the caller is starting or joining a load flight.
	Miss(key string)

	// Every source reported a miss for the key.
	NotFound(key string)

	// A source failed hard while fetching the key.
	SourceError(key string, err error)

	// Bytes were fetched but the decoder rejected them.
	DecodeError(key string, err error)

	// A decode succeeded and the handle was published.
	// took covers fetch plus decode.
	Loaded(key string, took time.Duration)
}

// NopHooks is the default no-op
type NopHooks struct{}

func (NopHooks) Hit(string)                   {}
func (NopHooks) Miss(string)                  {}
func (NopHooks) NotFound(string)              {}
func (NopHooks) SourceError(string, error)    {}
func (NopHooks) DecodeError(string, error)    {}
func (NopHooks) Loaded(string, time.Duration) {}
