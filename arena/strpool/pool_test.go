package strpool

import (
	"errors"
	"fmt"
	"testing"
)

func TestIntern_AssignsSequentialIDs(t *testing.T) {
	p := New()
	if got := p.Intern("hello"); got != 0 {
		t.Fatalf("first id = %d, want 0", got)
	}
	if got := p.Intern("world"); got != 1 {
		t.Fatalf("second id = %d, want 1", got)
	}
	if got := p.Intern("test"); got != 2 {
		t.Fatalf("third id = %d, want 2", got)
	}
}

func TestIntern_Idempotent(t *testing.T) {
	p := New()
	id1 := p.Intern("hello")
	id2 := p.Intern("hello")
	if id1 != id2 {
		t.Fatalf("re-intern gave %d, want %d", id2, id1)
	}
	if p.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", p.Len())
	}
}

func TestIntern_Exact(t *testing.T) {
	p := New()
	// No normalization: case and whitespace variants are distinct.
	a := p.Intern("Name")
	b := p.Intern("name")
	c := p.Intern("name ")
	if a == b || b == c || a == c {
		t.Fatalf("expected distinct ids, got %d %d %d", a, b, c)
	}
}

func TestResolve(t *testing.T) {
	p := New()
	id := p.Intern("component")
	s, err := p.Resolve(id)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s != "component" {
		t.Fatalf("Resolve = %q, want %q", s, "component")
	}
}

func TestResolve_OutOfRange(t *testing.T) {
	p := New()
	p.Intern("only")
	for _, id := range []ID{-1, 1, 9999} {
		if _, err := p.Resolve(id); !errors.Is(err, ErrBadID) {
			t.Fatalf("Resolve(%d) err = %v, want ErrBadID", id, err)
		}
	}
}

func TestBytes(t *testing.T) {
	p := New()
	p.Intern("abc")
	p.Intern("de")
	p.Intern("abc") // duplicate adds nothing
	if p.Bytes() != 5 {
		t.Fatalf("Bytes() = %d, want 5", p.Bytes())
	}
}

func TestIntern_EmptyString(t *testing.T) {
	p := New()
	id := p.Intern("")
	if id != 0 {
		t.Fatalf("empty string id = %d, want 0", id)
	}
	s, err := p.Resolve(id)
	if err != nil || s != "" {
		t.Fatalf("Resolve = (%q, %v), want (\"\", nil)", s, err)
	}
}

func BenchmarkIntern_Hit(b *testing.B) {
	p := New()
	for i := 0; i < 100; i++ {
		p.Intern(fmt.Sprintf("component%d", i))
	}
	for i := 0; i < b.N; i++ {
		p.Intern("component42")
	}
}
