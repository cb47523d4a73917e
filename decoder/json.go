package decoder

import "encoding/json"

type JSON[V any] struct{}

func (JSON[V]) Decode(b []byte, _ any) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
