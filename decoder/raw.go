package decoder

// Bytes is an identity decoder for []byte values. Useful when the asset is
// already a raw byte blob and only the fetch pipeline and caching are needed.
type Bytes struct{}

func (Bytes) Decode(b []byte, _ any) ([]byte, error) { return b, nil }

// String is a trivial decoder producing Go strings. By convention this
// assumes UTF-8 and performs no validation.
type String struct{}

func (String) Decode(b []byte, _ any) (string, error) { return string(b), nil }
