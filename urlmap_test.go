package harvest

import "testing"

func TestURLMapperBijection(t *testing.T) {
	m := NewURLMapper()
	urls := []string{
		"http://e.com/a",
		"http://e.com/b",
		"http://e.com/c",
		"http://e.com/d",
	}

	ids := make(map[string]uint32)
	for _, u := range urls {
		ids[u] = m.IDFor(u)
	}

	for _, u := range urls {
		id := ids[u]
		if id == 0 {
			t.Errorf("IDFor(%q) returned reserved id 0", u)
		}
		gotURL, ok := m.URLFor(id)
		if !ok || gotURL != u {
			t.Errorf("URLFor(IDFor(%q)) = (%q, %v), want (%q, true)", u, gotURL, ok, u)
		}
	}
}

func TestURLMapperIdempotent(t *testing.T) {
	m := NewURLMapper()
	u := "http://e.com/a"
	id1 := m.IDFor(u)
	id2 := m.IDFor(u)
	if id1 != id2 {
		t.Errorf("IDFor called twice on the same url returned different ids: %d vs %d", id1, id2)
	}
}

func TestURLMapperLen(t *testing.T) {
	m := NewURLMapper()
	m.IDFor("http://e.com/a")
	m.IDFor("http://e.com/b")
	m.IDFor("http://e.com/a") // repeat, should not grow
	if m.Len() != 2 {
		t.Errorf("Len() = %d, want 2", m.Len())
	}
}

func TestPolynomialHashDeterministic(t *testing.T) {
	h1 := polynomialHash("http://e.com/a")
	h2 := polynomialHash("http://e.com/a")
	if h1 != h2 {
		t.Errorf("polynomialHash is not deterministic: %d vs %d", h1, h2)
	}
	if h1 == 0 {
		t.Error("polynomialHash returned 0, which is reserved")
	}
}
