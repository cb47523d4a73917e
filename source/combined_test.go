package source

import (
	"context"
	"errors"
	"testing"
)

// fakeSource serves a fixed map and can be forced to fail hard.
type fakeSource struct {
	data map[string][]byte
	err  error
}

func (f *fakeSource) Fetch(_ context.Context, key string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	b, ok := f.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	return b, nil
}

func TestCombinedPrecedence(t *testing.T) {
	ctx := context.Background()
	a := &fakeSource{data: map[string][]byte{"p": []byte("from-a")}}
	b := &fakeSource{data: map[string][]byte{"p": []byte("from-b"), "q": []byte("only-b")}}
	c := NewCombined(a, b)

	got, err := c.Fetch(ctx, "p")
	if err != nil || string(got) != "from-a" {
		t.Fatalf("earlier source must shadow later one: got=%q err=%v", got, err)
	}

	// NotFound falls through.
	got, err = c.Fetch(ctx, "q")
	if err != nil || string(got) != "only-b" {
		t.Fatalf("miss must fall through: got=%q err=%v", got, err)
	}
}

func TestCombinedAllMiss(t *testing.T) {
	ctx := context.Background()
	c := NewCombined(
		&fakeSource{data: map[string][]byte{}},
		&fakeSource{data: map[string][]byte{}},
	)
	if _, err := c.Fetch(ctx, "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound when every source misses, got %v", err)
	}
}

// TestCombinedFailFast: under the default policy a hard error is terminal
// even when a later source holds the key.
func TestCombinedFailFast(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("io failure")
	a := &fakeSource{err: boom}
	b := &fakeSource{data: map[string][]byte{"p": []byte("from-b")}}
	c := NewCombined(a, b)

	if _, err := c.Fetch(ctx, "p"); !errors.Is(err, boom) {
		t.Fatalf("hard error must not fall through to a later source, got %v", err)
	}
}

func TestCombinedFallThroughPolicy(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("io failure")

	t.Run("later_source_wins", func(t *testing.T) {
		a := &fakeSource{err: boom}
		b := &fakeSource{data: map[string][]byte{"p": []byte("from-b")}}
		c := NewCombinedWithPolicy(FallThrough, a, b)
		got, err := c.Fetch(ctx, "p")
		if err != nil || string(got) != "from-b" {
			t.Fatalf("FallThrough should recover via later source: got=%q err=%v", got, err)
		}
	})

	t.Run("all_fail_returns_first_error", func(t *testing.T) {
		later := errors.New("later failure")
		c := NewCombinedWithPolicy(FallThrough,
			&fakeSource{err: boom},
			&fakeSource{err: later},
			&fakeSource{data: map[string][]byte{}},
		)
		_, err := c.Fetch(ctx, "p")
		if !errors.Is(err, boom) {
			t.Fatalf("expected first hard error, got %v", err)
		}
	})

	t.Run("errors_then_all_miss", func(t *testing.T) {
		c := NewCombinedWithPolicy(FallThrough,
			&fakeSource{err: boom},
			&fakeSource{data: map[string][]byte{}},
		)
		_, err := c.Fetch(ctx, "p")
		if !errors.Is(err, boom) {
			t.Fatalf("hard error outranks ErrNotFound in FallThrough, got %v", err)
		}
	})
}

func TestCombinedWith(t *testing.T) {
	ctx := context.Background()
	c := NewCombined().
		With(&fakeSource{data: map[string][]byte{}}).
		With(&fakeSource{data: map[string][]byte{"p": []byte("x")}})
	got, err := c.Fetch(ctx, "p")
	if err != nil || string(got) != "x" {
		t.Fatalf("With-chained sources: got=%q err=%v", got, err)
	}
}
