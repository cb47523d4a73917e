package source

import (
	"archive/zip"
	"context"
	"errors"
	"io"
	"io/fs"

	"github.com/unkn0wn-root/assetcache/internal/pathutil"
)

// Zip serves assets out of a zip archive. Keys are slash-separated entry
// names. Safe for concurrent use; each Fetch opens an independent entry
// reader.
type Zip struct {
	r  *zip.Reader
	rc *zip.ReadCloser
}

// NewZip wraps an already-open archive. The caller keeps ownership of the
// underlying reader.
func NewZip(r *zip.Reader) *Zip {
	return &Zip{r: r}
}

// OpenZip opens the archive at path. Close the returned Zip when done.
func OpenZip(path string) (*Zip, error) {
	rc, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	return &Zip{r: &rc.Reader, rc: rc}, nil
}

func (z *Zip) Fetch(_ context.Context, key string) ([]byte, error) {
	name, err := pathutil.Normalize(key)
	if err != nil {
		return nil, err
	}
	f, err := z.r.Open(name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

// Close releases the archive file when this Zip was created via OpenZip;
// otherwise it is a no-op.
func (z *Zip) Close(context.Context) error {
	if z.rc != nil {
		return z.rc.Close()
	}
	return nil
}
