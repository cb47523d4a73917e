package source

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/unkn0wn-root/assetcache/internal/pathutil"
)

// Dir loads assets as files under a root directory. Keys are slash-separated
// paths relative to the root; keys escaping the root are rejected with a hard
// error rather than a miss.
type Dir struct {
	root string
}

func NewDir(root string) *Dir {
	return &Dir{root: root}
}

func (d *Dir) Fetch(_ context.Context, key string) ([]byte, error) {
	rel, err := pathutil.Normalize(key)
	if err != nil {
		return nil, err
	}
	p := filepath.Join(d.root, filepath.FromSlash(rel))

	fi, err := os.Stat(p)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		// Directories and special files are not assets.
		return nil, ErrNotFound
	}
	return os.ReadFile(p)
}
