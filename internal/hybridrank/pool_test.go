package hybridrank

import "testing"

func TestPoolInternDedups(t *testing.T) {
	p := newPool(0)
	a := p.intern("APPLE")
	b := p.intern("BANANA")
	c := p.intern("APPLE")

	if a != c {
		t.Fatalf("expected interning the same string twice to return the same TermID, got %d and %d", a, c)
	}
	if a == b {
		t.Fatalf("expected distinct strings to get distinct TermIDs")
	}
	if p.Len() != 2 {
		t.Fatalf("expected pool length 2, got %d", p.Len())
	}
}

func TestPoolStringRoundtrip(t *testing.T) {
	p := newPool(0)
	id := p.intern("HELLO")
	if got := p.String(id); got != "HELLO" {
		t.Fatalf("expected HELLO, got %q", got)
	}
}

func TestPoolStringOutOfRange(t *testing.T) {
	p := newPool(0)
	if got := p.String(TermID(42)); got != "" {
		t.Fatalf("expected empty string for out-of-range id, got %q", got)
	}
}

func TestPoolLookupMissing(t *testing.T) {
	p := newPool(0)
	p.intern("A")
	if _, ok := p.lookup("B"); ok {
		t.Fatalf("expected lookup of unregistered string to fail")
	}
}
