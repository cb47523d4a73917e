package handle

import "testing"

type payload struct {
	name string
}

func TestNewAndClone(t *testing.T) {
	v := &payload{name: "tree"}
	h := New(v)
	if h.Refs() != 1 {
		t.Fatalf("Refs=%d, want 1", h.Refs())
	}

	c := h.Clone()
	if h.Refs() != 2 {
		t.Fatalf("Refs after Clone=%d, want 2", h.Refs())
	}
	if !h.Shares(c) {
		t.Fatalf("clone must alias the original")
	}
	if h.Value() != v || c.Value() != v {
		t.Fatalf("clones must observe the identical instance, not a copy")
	}
}

func TestReleaseIdempotentPerHandle(t *testing.T) {
	h := New(&payload{})
	c := h.Clone()

	c.Release()
	c.Release() // second release of the same handle is a no-op
	if h.Refs() != 1 {
		t.Fatalf("Refs=%d, want 1", h.Refs())
	}
}

// Cloning N times then dropping N-1 clones leaves the value alive and
// readable through the survivor.
func TestLastHandleKeepsValueAlive(t *testing.T) {
	const n = 8
	v := &payload{name: "survivor"}
	h := New(v)

	clones := make([]*Handle[*payload], n)
	for i := range clones {
		clones[i] = h.Clone()
	}
	h.Release()
	for i := 0; i < n-1; i++ {
		clones[i].Release()
	}

	last := clones[n-1]
	if last.Refs() != 1 {
		t.Fatalf("Refs=%d, want 1", last.Refs())
	}
	if last.Value().name != "survivor" {
		t.Fatalf("value not readable through last handle")
	}
}

func TestSharesIsIdentityNotEquality(t *testing.T) {
	a := New(&payload{name: "same"})
	b := New(&payload{name: "same"})
	defer a.Release()
	defer b.Release()

	if a.Shares(b) {
		t.Fatalf("distinct values must not report as shared")
	}
	if a.Shares(nil) {
		t.Fatalf("Shares(nil) must be false")
	}
}

func TestUseAfterReleasePanics(t *testing.T) {
	mustPanic := func(name string, f func()) {
		t.Helper()
		defer func() {
			if recover() == nil {
				t.Fatalf("%s after Release should panic", name)
			}
		}()
		f()
	}

	h := New(&payload{})
	c := h.Clone()
	c.Release()
	mustPanic("Clone", func() { c.Clone() })
	mustPanic("Value", func() { _ = c.Value() })

	// The other handle is unaffected.
	if h.Value() == nil {
		t.Fatalf("sibling handle must stay valid")
	}
	h.Release()
}
