package decoder

import (
	"github.com/fxamacker/cbor/v2"
)

// CBOR decodes values using fxamacker/cbor.
// The zero value is NOT ready to use. Construct with NewCBOR or MustCBOR.
type CBOR[V any] struct {
	dec cbor.DecMode
}

var _ Decoder[struct{}] = CBOR[struct{}]{}

// NewCBOR constructs a CBOR decoder with default decode options.
func NewCBOR[V any]() (CBOR[V], error) {
	dm, err := (cbor.DecOptions{}).DecMode()
	if err != nil {
		return CBOR[V]{}, err
	}
	return CBOR[V]{dec: dm}, nil
}

// MustCBOR is like NewCBOR but panics on error.
// Handy for package-level variables in tests/examples.
func MustCBOR[V any]() CBOR[V] {
	c, err := NewCBOR[V]()
	if err != nil {
		panic(err)
	}
	return c
}

func (c CBOR[V]) Decode(b []byte, _ any) (V, error) {
	var v V
	err := c.dec.Unmarshal(b, &v)
	return v, err
}
