package source

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"testing"
)

func buildZip(t *testing.T, files map[string]string) *zip.Reader {
	t.Helper()
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, body := range files {
		f, err := w.Create(name)
		if err != nil {
			t.Fatalf("zip create %q: %v", name, err)
		}
		if _, err := f.Write([]byte(body)); err != nil {
			t.Fatalf("zip write %q: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("zip close: %v", err)
	}
	r, err := zip.NewReader(bytes.NewReader(buf.Bytes()), int64(buf.Len()))
	if err != nil {
		t.Fatalf("zip reader: %v", err)
	}
	return r
}

func TestZipFetch(t *testing.T) {
	ctx := context.Background()
	z := NewZip(buildZip(t, map[string]string{
		"readme.txt":      "hello",
		"maps/level1.dat": "terrain",
	}))
	defer z.Close(ctx)

	got, err := z.Fetch(ctx, "readme.txt")
	if err != nil || string(got) != "hello" {
		t.Fatalf("Fetch: got=%q err=%v", got, err)
	}
	got, err = z.Fetch(ctx, "maps/level1.dat")
	if err != nil || string(got) != "terrain" {
		t.Fatalf("nested Fetch: got=%q err=%v", got, err)
	}

	if _, err := z.Fetch(ctx, "maps/level2.dat"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("missing entry: expected ErrNotFound, got %v", err)
	}
}

func TestZipConcurrentFetch(t *testing.T) {
	ctx := context.Background()
	z := NewZip(buildZip(t, map[string]string{"a": "A", "b": "B"}))
	defer z.Close(ctx)

	done := make(chan error, 16)
	for i := 0; i < 16; i++ {
		key, want := "a", "A"
		if i%2 == 1 {
			key, want = "b", "B"
		}
		go func() {
			got, err := z.Fetch(ctx, key)
			if err == nil && string(got) != want {
				err = errors.New("wrong bytes")
			}
			done <- err
		}()
	}
	for i := 0; i < 16; i++ {
		if err := <-done; err != nil {
			t.Fatalf("concurrent fetch: %v", err)
		}
	}
}
