package pool

import (
	"math/rand"
	"testing"
)

func TestSpawnBorrow(t *testing.T) {
	p := New[string]()
	a := p.Spawn("a")
	b := p.Spawn("b")

	if a == b {
		t.Fatalf("expected distinct handles, got %v twice", a)
	}
	if v, ok := p.Borrow(a); !ok || v != "a" {
		t.Fatalf("Borrow(a) = %q, %v; want \"a\", true", v, ok)
	}
	if v, ok := p.Borrow(b); !ok || v != "b" {
		t.Fatalf("Borrow(b) = %q, %v; want \"b\", true", v, ok)
	}
	if p.Len() != 2 {
		t.Errorf("Len() = %d, want 2", p.Len())
	}
	if a.Generation() != 1 {
		t.Errorf("first generation = %d, want 1", a.Generation())
	}
}

func TestNoneNeverResolves(t *testing.T) {
	p := New[int]()
	p.Spawn(42)
	if _, ok := p.Borrow(None[int]()); ok {
		t.Fatal("none handle resolved")
	}
	if p.BorrowMut(Handle[int]{}) != nil {
		t.Fatal("zero handle resolved through BorrowMut")
	}
	if !None[int]().IsNone() {
		t.Fatal("None() is not none")
	}
}

func TestFreedHandleDoesNotAliasReusedSlot(t *testing.T) {
	p := New[string]()
	old := p.Spawn("old")
	if _, ok := p.Free(old); !ok {
		t.Fatal("Free returned false for a live handle")
	}
	reused := p.Spawn("new")

	if reused.Index() != old.Index() {
		t.Fatalf("expected slot reuse, got index %d want %d", reused.Index(), old.Index())
	}
	if reused.Generation() != old.Generation()+1 {
		t.Fatalf("generation = %d, want %d", reused.Generation(), old.Generation()+1)
	}
	if _, ok := p.Borrow(old); ok {
		t.Fatal("stale handle resolved after reuse")
	}
	if v, ok := p.Borrow(reused); !ok || v != "new" {
		t.Fatalf("Borrow(reused) = %q, %v", v, ok)
	}
}

func TestFreeIsIdempotent(t *testing.T) {
	p := New[int]()
	h := p.Spawn(1)
	p.Free(h)
	if _, ok := p.Free(h); ok {
		t.Fatal("second Free reported success")
	}
	if p.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", p.Len())
	}
}

func TestForeignHandle(t *testing.T) {
	p := New[int]()
	p.Spawn(1)
	if p.IsValid(NewHandle[int](99, 1)) {
		t.Fatal("out of range handle is valid")
	}
	if p.IsValid(NewHandle[int](1, 7)) {
		t.Fatal("wrong generation handle is valid")
	}
}

func TestBorrowMut(t *testing.T) {
	p := New[int]()
	h := p.Spawn(1)
	*p.BorrowMut(h) = 5
	if v, _ := p.Borrow(h); v != 5 {
		t.Fatalf("value = %d, want 5", v)
	}
}

func TestAllSkipsFreeSlots(t *testing.T) {
	p := New[int]()
	hs := make([]Handle[int], 5)
	for i := range hs {
		hs[i] = p.Spawn(i)
	}
	p.Free(hs[1])
	p.Free(hs[3])

	var got []int
	for h, v := range p.All() {
		if !p.IsValid(h) {
			t.Fatalf("iterator yielded invalid handle %v", h)
		}
		got = append(got, v)
	}
	want := []int{0, 2, 4}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	// A fresh call restarts the traversal.
	n := 0
	for range p.Values() {
		n++
	}
	if n != 3 {
		t.Fatalf("second traversal yielded %d values, want 3", n)
	}
}

func TestAllEarlyBreak(t *testing.T) {
	p := New[int]()
	for i := 0; i < 4; i++ {
		p.Spawn(i)
	}
	n := 0
	for range p.All() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Fatalf("n = %d, want 2", n)
	}
}

func TestClearInvalidatesHandles(t *testing.T) {
	p := New[int]()
	a := p.Spawn(1)
	p.Clear()
	if p.IsValid(a) {
		t.Fatal("handle valid after Clear")
	}
	b := p.Spawn(2)
	if b == a {
		t.Fatal("handle after Clear aliases the cleared one")
	}
}

func TestZeroValuePool(t *testing.T) {
	var p Pool[int]
	h := p.Spawn(3)
	if h.IsNone() {
		t.Fatal("zero value pool handed out the none handle")
	}
	if v, ok := p.Borrow(h); !ok || v != 3 {
		t.Fatalf("Borrow = %d, %v", v, ok)
	}
}

func TestRandomSpawnFreeSequence(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	p := New[int]()
	live := map[Handle[int]]int{}
	var dead []Handle[int]

	for step := 0; step < 2000; step++ {
		if len(live) == 0 || rng.Intn(3) > 0 {
			h := p.Spawn(step)
			live[h] = step
			continue
		}
		for h := range live {
			p.Free(h)
			delete(live, h)
			dead = append(dead, h)
			break
		}
	}

	for h, want := range live {
		if v, ok := p.Borrow(h); !ok || v != want {
			t.Fatalf("live handle %v = %d, %v; want %d", h, v, ok, want)
		}
	}
	for _, h := range dead {
		if _, ok := p.Borrow(h); ok {
			t.Fatalf("freed handle %v still resolves", h)
		}
	}
	if p.Len() != len(live) {
		t.Fatalf("Len() = %d, want %d", p.Len(), len(live))
	}
}
