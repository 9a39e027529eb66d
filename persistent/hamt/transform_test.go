package hamt

import "testing"

func TestFilter(t *testing.T) {
	var tr Tree[uint64, int]
	for i := uint64(0); i < 100; i++ {
		tr, _ = tr.Insert(i, mix(i), int(i))
	}
	even := tr.Filter(func(k uint64, _ int) bool { return k%2 == 0 })
	mustValidate(t, even)
	if even.Len() != 50 {
		t.Fatalf("filtered len = %d, want 50", even.Len())
	}
	for k := range even.All() {
		if k%2 != 0 {
			t.Fatalf("filter kept %d", k)
		}
	}
	if tr.Len() != 100 {
		t.Fatalf("input tree changed")
	}

	// accepting everything hands the input back unchanged
	all := tr.Filter(func(uint64, int) bool { return true })
	if all.root != tr.root {
		t.Fatalf("all-accepting filter should return the input tree")
	}
}

func TestMapValues(t *testing.T) {
	var tr Tree[uint64, int]
	for i := uint64(0); i < 100; i++ {
		tr, _ = tr.Insert(i, mix(i), int(i))
	}
	doubled := MapValues(tr, func(k uint64, v int) string {
		if int(k) != v {
			t.Fatalf("transform saw mismatched pair %d/%d", k, v)
		}
		return "v"
	})
	mustValidate(t, doubled)
	if doubled.Len() != tr.Len() {
		t.Fatalf("MapValues changed the size")
	}
	// structure preserved: same iteration order
	var orig, mapped []uint64
	for k := range tr.All() {
		orig = append(orig, k)
	}
	for k := range doubled.All() {
		mapped = append(mapped, k)
	}
	for i := range orig {
		if orig[i] != mapped[i] {
			t.Fatalf("MapValues changed the iteration order at %d", i)
		}
	}
}

func TestCursor(t *testing.T) {
	var tr Tree[uint64, int]
	for i := uint64(0); i < 200; i++ {
		tr, _ = tr.Insert(i, mix(i), int(i))
	}
	c, ok := tr.CursorFor(42, mix(42))
	if !ok {
		t.Fatalf("cursor for a present key not found")
	}
	k, v := tr.At(c)
	if k != 42 || v != 42 {
		t.Fatalf("At(cursor) = %d, %d; want 42, 42", k, v)
	}
	if _, ok := tr.CursorFor(9999, mix(9999)); ok {
		t.Fatalf("cursor for a missing key should not resolve")
	}

	// a cursor must not survive into a derived tree
	tr2, _ := tr.Insert(9999, mix(9999), 1)
	defer func() {
		if recover() == nil {
			t.Fatalf("resolving a stale cursor must panic")
		}
	}()
	tr2.At(c)
}
