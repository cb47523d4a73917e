package decoder

import "github.com/vmihailenco/msgpack/v5"

// Msgpack decodes values using vmihailenco/msgpack/v5.
// The zero value is ready to use.
//
// Msgpack is compact and fast; be mindful of struct tag differences vs JSON.
// Use `msgpack:"fieldName"` tags if you need explicit control.
type Msgpack[V any] struct{}

func (Msgpack[V]) Decode(b []byte, _ any) (V, error) {
	var v V
	err := msgpack.Unmarshal(b, &v)
	return v, err
}
