package minmaxheap

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/TomTonic/collections/keys"
)

func intLess(a, b int) bool { return a < b }

func TestPushAndMinMax(t *testing.T) {
	h := New(intLess)
	if !h.IsEmpty() {
		t.Fatalf("new heap should be empty")
	}
	for _, v := range []int{5, 1, 9, 3, 7} {
		h.Push(v)
	}
	if h.Len() != 5 {
		t.Fatalf("len = %d, want 5", h.Len())
	}
	if h.Min() != 1 {
		t.Fatalf("Min = %d, want 1", h.Min())
	}
	if h.Max() != 9 {
		t.Fatalf("Max = %d, want 9", h.Max())
	}
}

func TestPopMinYieldsAscendingOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	h := New(intLess)
	var want []int
	for i := 0; i < 500; i++ {
		v := rng.Intn(1000)
		h.Push(v)
		want = append(want, v)
	}
	sort.Ints(want)
	for _, w := range want {
		if got := h.PopMin(); got != w {
			t.Fatalf("PopMin = %d, want %d", got, w)
		}
	}
	if !h.IsEmpty() {
		t.Fatalf("heap should be empty after draining")
	}
}

func TestPopMaxYieldsDescendingOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	h := New(intLess)
	var want []int
	for i := 0; i < 500; i++ {
		v := rng.Intn(1000)
		h.Push(v)
		want = append(want, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(want)))
	for _, w := range want {
		if got := h.PopMax(); got != w {
			t.Fatalf("PopMax = %d, want %d", got, w)
		}
	}
}

func TestAlternatingPops(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	h := New(intLess)
	var model []int
	for i := 0; i < 300; i++ {
		v := rng.Intn(100)
		h.Push(v)
		model = append(model, v)
	}
	sort.Ints(model)
	lo, hi := 0, len(model)-1
	for lo <= hi {
		if lo%2 == 0 {
			if got := h.PopMin(); got != model[lo] {
				t.Fatalf("PopMin = %d, want %d", got, model[lo])
			}
			lo++
		} else {
			if got := h.PopMax(); got != model[hi] {
				t.Fatalf("PopMax = %d, want %d", got, model[hi])
			}
			hi--
		}
	}
	if h.Len() != 0 {
		t.Fatalf("heap should be drained, len = %d", h.Len())
	}
}

func TestFromHeapifies(t *testing.T) {
	items := []int{9, 4, 7, 1, 8, 2, 6, 3, 5, 0}
	h := From(intLess, items)
	if h.Len() != len(items) {
		t.Fatalf("len = %d", h.Len())
	}
	// the source slice stays untouched
	if items[0] != 9 {
		t.Fatalf("From must copy its input")
	}
	for want := 0; want < len(items); want++ {
		if got := h.PopMin(); got != want {
			t.Fatalf("PopMin = %d, want %d", got, want)
		}
	}
}

func TestSmallHeaps(t *testing.T) {
	h := New(intLess)
	h.Push(1)
	if h.Min() != 1 || h.Max() != 1 {
		t.Fatalf("one-element heap min/max wrong")
	}
	h.Push(2)
	if h.Min() != 1 || h.Max() != 2 {
		t.Fatalf("two-element heap min/max wrong")
	}
	if h.PopMax() != 2 || h.PopMax() != 1 {
		t.Fatalf("PopMax order wrong on small heap")
	}
}

func TestEmptyAccessPanics(t *testing.T) {
	h := New(intLess)
	for _, op := range []func(){
		func() { h.Min() },
		func() { h.Max() },
		func() { h.PopMin() },
		func() { h.PopMax() },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("access to an empty heap must panic")
				}
			}()
			op()
		}()
	}
}

func TestKeyElements(t *testing.T) {
	h := New(keys.Key.Less)
	for _, s := range []string{"pear", "apple", "quince", "fig"} {
		h.Push(keys.FromString(s))
	}
	if !h.Min().Equal(keys.FromString("apple")) {
		t.Fatalf("Min = %v", h.Min())
	}
	if !h.Max().Equal(keys.FromString("quince")) {
		t.Fatalf("Max = %v", h.Max())
	}
}
