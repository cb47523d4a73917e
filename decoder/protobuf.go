package decoder

import "google.golang.org/protobuf/proto"

// Protobuf decodes a concrete proto message type.
type Protobuf[T proto.Message] struct {
	new func() T // constructor for a concrete message (e.g., func() *assetpb.Mesh { return &assetpb.Mesh{} })
}

func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Decode(b []byte, _ any) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
