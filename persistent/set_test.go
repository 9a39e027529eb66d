package persistent

import (
	"math/rand"
	"testing"
)

func setOf(base Set[int], elems ...int) Set[int] {
	for _, e := range elems {
		base = base.Insert(e)
	}
	return base
}

func TestSetBasics(t *testing.T) {
	s := NewSet[string]()
	s = s.Insert("a")
	s = s.Insert("b")
	s = s.Insert("a")
	if s.Len() != 2 {
		t.Fatalf("expected len 2, got %d", s.Len())
	}
	if !s.Contains("a") || !s.Contains("b") || s.Contains("c") {
		t.Fatalf("membership wrong")
	}
	s2 := s.Delete("a")
	if s2.Contains("a") || !s.Contains("a") {
		t.Fatalf("Delete must not touch the receiver")
	}
}

func TestSetAlgebraSameOrigin(t *testing.T) {
	origin := NewSetWithHasher[int](fixedHasher{})
	a := setOf(origin, 1, 2, 3, 4)
	b := setOf(origin, 3, 4, 5, 6)

	u := a.Union(b)
	i := a.Intersection(b)
	d := a.Difference(b)
	sd := a.SymmetricDifference(b)

	if u.Len() != 6 || i.Len() != 2 || d.Len() != 2 || sd.Len() != 4 {
		t.Fatalf("sizes: u=%d i=%d d=%d sd=%d", u.Len(), i.Len(), d.Len(), sd.Len())
	}
	for k := 1; k <= 6; k++ {
		inA, inB := a.Contains(k), b.Contains(k)
		if u.Contains(k) != (inA || inB) ||
			i.Contains(k) != (inA && inB) ||
			d.Contains(k) != (inA && !inB) ||
			sd.Contains(k) != (inA != inB) {
			t.Fatalf("membership wrong for %d", k)
		}
	}
	if !i.SubsetOf(a) || !i.SubsetOf(b) || !a.SubsetOf(u) || !b.SubsetOf(u) {
		t.Fatalf("subset identities violated")
	}
}

func TestSetAlgebraAcrossHashers(t *testing.T) {
	// Independently created sets use different hash spaces and take the
	// element-wise fallback paths.
	a := setOf(NewSet[int](), 1, 2, 3, 4)
	b := setOf(NewSet[int](), 3, 4, 5, 6)

	u := a.Union(b)
	i := a.Intersection(b)
	d := a.Difference(b)
	sd := a.SymmetricDifference(b)

	if u.Len() != 6 || i.Len() != 2 || d.Len() != 2 || sd.Len() != 4 {
		t.Fatalf("sizes: u=%d i=%d d=%d sd=%d", u.Len(), i.Len(), d.Len(), sd.Len())
	}
	for k := 1; k <= 6; k++ {
		inA, inB := a.Contains(k), b.Contains(k)
		if u.Contains(k) != (inA || inB) ||
			i.Contains(k) != (inA && inB) ||
			d.Contains(k) != (inA && !inB) ||
			sd.Contains(k) != (inA != inB) {
			t.Fatalf("membership wrong for %d", k)
		}
	}
	if !a.SubsetOf(u) || !b.SubsetOf(u) {
		t.Fatalf("inputs must be subsets of their union")
	}
}

func TestSetEqualIgnoresOrderAndHasher(t *testing.T) {
	perm := rand.New(rand.NewSource(21)).Perm(80)
	a := NewSet[int]()
	b := NewSet[int]()
	for _, e := range perm {
		a = a.Insert(e)
	}
	for i := len(perm) - 1; i >= 0; i-- {
		b = b.Insert(perm[i])
	}
	if !a.Equal(b) {
		t.Fatalf("sets with equal content must be equal")
	}
	if a.Equal(b.Delete(perm[0])) {
		t.Fatalf("sets of different size must not be equal")
	}
}

func TestSetEmptyCases(t *testing.T) {
	var empty Set[int]
	a := setOf(NewSet[int](), 1, 2)

	if u := empty.Union(a); u.Len() != 2 {
		t.Fatalf("empty ∪ a should equal a")
	}
	if i := a.Intersection(empty); !i.IsEmpty() {
		t.Fatalf("a ∩ empty should be empty")
	}
	if d := a.Difference(empty); d.Len() != 2 {
		t.Fatalf("a − empty should equal a")
	}
	if sd := a.SymmetricDifference(empty); sd.Len() != 2 {
		t.Fatalf("a △ empty should equal a")
	}
	if !empty.SubsetOf(a) || !empty.SubsetOf(empty) {
		t.Fatalf("the empty set is a subset of everything")
	}
}

func TestSetBuilderAndCollect(t *testing.T) {
	b := NewSetBuilder[int]()
	for i := 0; i < 100; i++ {
		b.Insert(i % 50)
	}
	if b.Len() != 50 {
		t.Fatalf("builder len = %d, want 50", b.Len())
	}
	if !b.Contains(7) || b.Contains(50) {
		t.Fatalf("builder membership wrong")
	}
	s := b.Set()
	if s.Len() != 50 {
		t.Fatalf("set len = %d, want 50", s.Len())
	}
	c := CollectSet(s.All())
	if c.Len() != 50 || !c.Equal(s) {
		t.Fatalf("collected set differs")
	}
}
