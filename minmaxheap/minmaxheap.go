// Package minmaxheap provides a generic min-max heap: both the minimum
// and the maximum element are readable in constant time and removable
// in logarithmic time. Elements on even tree levels are no larger than
// their descendants, elements on odd levels no smaller (Atkinson
// ordering). A Heap is not safe for concurrent use.
package minmaxheap

import (
	"math/bits"
	"slices"
)

// Heap is a min-max heap over elements ordered by a less function. Use
// New or From to construct one.
type Heap[T any] struct {
	less func(a, b T) bool
	data []T
}

// New returns an empty heap ordered by less.
func New[T any](less func(a, b T) bool) *Heap[T] {
	return &Heap[T]{less: less}
}

// From returns a heap holding a copy of items, established in O(n).
func From[T any](less func(a, b T) bool, items []T) *Heap[T] {
	h := &Heap[T]{less: less, data: slices.Clone(items)}
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.trickleDown(i)
	}
	return h
}

// Len returns the number of elements.
func (h *Heap[T]) Len() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements.
func (h *Heap[T]) IsEmpty() bool { return len(h.data) == 0 }

// Push adds v.
func (h *Heap[T]) Push(v T) {
	h.data = append(h.data, v)
	h.bubbleUp(len(h.data) - 1)
}

// Min returns the smallest element. It panics on an empty heap.
func (h *Heap[T]) Min() T {
	if len(h.data) == 0 {
		panic("minmaxheap: Min on empty heap")
	}
	return h.data[0]
}

// Max returns the largest element. It panics on an empty heap.
func (h *Heap[T]) Max() T {
	if len(h.data) == 0 {
		panic("minmaxheap: Max on empty heap")
	}
	return h.data[h.maxIndex()]
}

// PopMin removes and returns the smallest element. It panics on an
// empty heap.
func (h *Heap[T]) PopMin() T {
	if len(h.data) == 0 {
		panic("minmaxheap: PopMin on empty heap")
	}
	v := h.data[0]
	h.removeAt(0)
	return v
}

// PopMax removes and returns the largest element. It panics on an empty
// heap.
func (h *Heap[T]) PopMax() T {
	if len(h.data) == 0 {
		panic("minmaxheap: PopMax on empty heap")
	}
	i := h.maxIndex()
	v := h.data[i]
	h.removeAt(i)
	return v
}

// The maximum sits at the root for a one-element heap, otherwise at the
// larger of the root's children (level 1 is a max level).
func (h *Heap[T]) maxIndex() int {
	switch {
	case len(h.data) <= 2:
		return len(h.data) - 1
	case h.less(h.data[1], h.data[2]):
		return 2
	default:
		return 1
	}
}

func (h *Heap[T]) removeAt(i int) {
	last := len(h.data) - 1
	h.data[i] = h.data[last]
	var zero T
	h.data[last] = zero
	h.data = h.data[:last]
	if i < last {
		h.trickleDown(i)
	}
}

// isMinLevel reports whether index i sits on an even (min) tree level.
func isMinLevel(i int) bool {
	return (bits.Len(uint(i)+1)-1)%2 == 0
}

func (h *Heap[T]) swap(i, j int) {
	h.data[i], h.data[j] = h.data[j], h.data[i]
}

// before orders elements for a level type: the min-level order is less,
// the max-level order its reverse.
func (h *Heap[T]) before(min bool, a, b T) bool {
	if min {
		return h.less(a, b)
	}
	return h.less(b, a)
}

func (h *Heap[T]) bubbleUp(i int) {
	if i == 0 {
		return
	}
	parent := (i - 1) / 2
	min := isMinLevel(i)
	if h.before(!min, h.data[i], h.data[parent]) {
		// Wrong side of the parent's level: swap over and continue in
		// the parent's ordering.
		h.swap(i, parent)
		h.bubbleUpGrand(parent, !min)
		return
	}
	h.bubbleUpGrand(i, min)
}

func (h *Heap[T]) bubbleUpGrand(i int, min bool) {
	for i > 2 {
		g := (((i - 1) / 2) - 1) / 2
		if !h.before(min, h.data[i], h.data[g]) {
			return
		}
		h.swap(i, g)
		i = g
	}
}

func (h *Heap[T]) trickleDown(i int) {
	min := isMinLevel(i)
	for {
		// Pick the extreme among children and grandchildren.
		m := -1
		grand := false
		for c := 2*i + 1; c <= 2*i+2 && c < len(h.data); c++ {
			if m < 0 || h.before(min, h.data[c], h.data[m]) {
				m, grand = c, false
			}
			for gc := 2*c + 1; gc <= 2*c+2 && gc < len(h.data); gc++ {
				if h.before(min, h.data[gc], h.data[m]) {
					m, grand = gc, true
				}
			}
		}
		if m < 0 || !h.before(min, h.data[m], h.data[i]) {
			return
		}
		h.swap(m, i)
		if !grand {
			return
		}
		parent := (m - 1) / 2
		if h.before(min, h.data[parent], h.data[m]) {
			h.swap(m, parent)
		}
		i = m
	}
}
