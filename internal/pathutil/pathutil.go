// Package pathutil normalizes asset keys into safe, slash-separated relative
// paths for sources backed by a rooted namespace (directories, archives).
package pathutil

import (
	"errors"
	"path"
	"strings"
)

// ErrInvalidKey reports a key that cannot name an entry under a root:
// empty, absolute, or escaping the root via "..". This is a hard error,
// not a miss, so a fallback chain will not silently skip over it.
var ErrInvalidKey = errors.New("pathutil: invalid asset key")

// Normalize cleans key into a relative slash path. Backslashes are treated
// as separators so keys written on Windows resolve identically everywhere.
func Normalize(key string) (string, error) {
	if key == "" {
		return "", ErrInvalidKey
	}
	k := path.Clean(strings.ReplaceAll(key, `\`, "/"))
	if k == "." || k == ".." || strings.HasPrefix(k, "../") || strings.HasPrefix(k, "/") {
		return "", ErrInvalidKey
	}
	return k, nil
}
