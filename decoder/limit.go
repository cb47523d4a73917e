package decoder

import "fmt"

// Limit wraps another decoder to enforce a maximum allowed payload size.
// If MaxDecode <= 0, size limiting is disabled.
//
// Typical use: protect against oversized/malicious inputs coming from an
// untrusted source (a mod directory, a downloaded bundle).
type Limit[V any] struct {
	// Inner is the underlying decoder being wrapped. It must be set.
	Inner Decoder[V]
	// MaxDecode is the maximum permitted length (in bytes) of the incoming
	// payload. If the payload exceeds MaxDecode, Decode returns an error
	// without invoking Inner.
	MaxDecode int
}

func (d Limit[V]) Decode(b []byte, cc any) (V, error) {
	if d.MaxDecode > 0 && len(b) > d.MaxDecode {
		var zero V
		return zero, fmt.Errorf("payload too large: %d > %d", len(b), d.MaxDecode)
	}
	return d.Inner.Decode(b, cc)
}
