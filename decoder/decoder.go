// Package decoder defines the typed decode contract of the asset pipeline
// and ships decoders for the common serialization formats.
package decoder

// Decoder turns raw asset bytes into a value of type V.
//
// cc is the opaque creation context supplied by the caller of Load; it lives
// for the single call and is never retained. Decoders that need auxiliary
// state (a registry, parser configuration) read it from cc; the rest ignore
// it. Decode must be a pure function of its inputs and safe for concurrent
// use.
type Decoder[V any] interface {
	Decode(data []byte, cc any) (V, error)
}

// Func adapts a free function to the Decoder interface.
type Func[V any] func(data []byte, cc any) (V, error)

func (f Func[V]) Decode(data []byte, cc any) (V, error) { return f(data, cc) }
