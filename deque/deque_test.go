package deque

import (
	"math/rand"
	"testing"

	"github.com/TomTonic/collections/keys"
)

func TestPushPopBothEnds(t *testing.T) {
	d := New[int]()
	if !d.IsEmpty() {
		t.Fatalf("new deque should be empty")
	}
	d.PushBack(2)
	d.PushBack(3)
	d.PushFront(1)
	if d.Len() != 3 {
		t.Fatalf("len = %d, want 3", d.Len())
	}
	if d.Front() != 1 || d.Back() != 3 {
		t.Fatalf("front/back = %d/%d", d.Front(), d.Back())
	}
	if got := d.PopFront(); got != 1 {
		t.Fatalf("PopFront = %d, want 1", got)
	}
	if got := d.PopBack(); got != 3 {
		t.Fatalf("PopBack = %d, want 3", got)
	}
	if got := d.PopFront(); got != 2 {
		t.Fatalf("PopFront = %d, want 2", got)
	}
	if !d.IsEmpty() {
		t.Fatalf("deque should be empty again")
	}
}

func TestWrapAroundAndGrowth(t *testing.T) {
	d := WithCapacity[int](4)
	// rotate the ring so the contents wrap before growing
	for i := 0; i < 10; i++ {
		d.PushBack(i)
		d.PopFront()
	}
	for i := 0; i < 100; i++ {
		d.PushBack(i)
	}
	if d.Len() != 100 {
		t.Fatalf("len = %d, want 100", d.Len())
	}
	for i := 0; i < 100; i++ {
		if d.At(i) != i {
			t.Fatalf("At(%d) = %d", i, d.At(i))
		}
	}
	for i := 0; i < 100; i++ {
		if got := d.PopFront(); got != i {
			t.Fatalf("PopFront = %d, want %d", got, i)
		}
	}
}

func TestAgainstSliceModel(t *testing.T) {
	d := New[int]()
	var model []int
	rng := rand.New(rand.NewSource(4))
	for step := 0; step < 5000; step++ {
		switch rng.Intn(4) {
		case 0:
			v := rng.Int()
			d.PushBack(v)
			model = append(model, v)
		case 1:
			v := rng.Int()
			d.PushFront(v)
			model = append([]int{v}, model...)
		case 2:
			if len(model) > 0 {
				if got := d.PopBack(); got != model[len(model)-1] {
					t.Fatalf("step %d: PopBack = %d, want %d", step, got, model[len(model)-1])
				}
				model = model[:len(model)-1]
			}
		case 3:
			if len(model) > 0 {
				if got := d.PopFront(); got != model[0] {
					t.Fatalf("step %d: PopFront = %d, want %d", step, got, model[0])
				}
				model = model[1:]
			}
		}
		if d.Len() != len(model) {
			t.Fatalf("step %d: len %d, model %d", step, d.Len(), len(model))
		}
	}
	i := 0
	for v := range d.All() {
		if v != model[i] {
			t.Fatalf("All() diverged from model at %d", i)
		}
		i++
	}
}

func TestClear(t *testing.T) {
	d := New[string]()
	d.PushBack("a")
	d.PushBack("b")
	d.Clear()
	if d.Len() != 0 {
		t.Fatalf("len after Clear = %d", d.Len())
	}
	d.PushBack("c")
	if d.Front() != "c" {
		t.Fatalf("deque unusable after Clear")
	}
}

func TestEmptyPopsPanic(t *testing.T) {
	d := New[int]()
	for _, op := range []func(){
		func() { d.PopFront() },
		func() { d.PopBack() },
		func() { d.Front() },
		func() { d.Back() },
		func() { d.At(0) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Fatalf("operation on empty deque must panic")
				}
			}()
			op()
		}()
	}
}

func TestKeyElements(t *testing.T) {
	d := New[keys.Key]()
	d.PushBack(keys.FromString("b"))
	d.PushFront(keys.FromString("a"))
	if !d.Front().Equal(keys.FromString("a")) || !d.Back().Equal(keys.FromString("b")) {
		t.Fatalf("key elements misordered")
	}
}
