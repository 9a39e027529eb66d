package persistent

import (
	"iter"

	"github.com/TomTonic/collections/persistent/hamt"
)

// Set is a persistent set of elements: the Map machinery with unit
// values. The zero value is an empty set; mutating methods return a new
// Set.
type Set[K comparable] struct {
	m Map[K, struct{}]
}

// NewSet returns an empty set using the default hasher.
func NewSet[K comparable]() Set[K] {
	return Set[K]{m: New[K, struct{}]()}
}

// NewSetWithHasher returns an empty set built on h; see NewWithHasher.
func NewSetWithHasher[K comparable](h Hasher[K]) Set[K] {
	return Set[K]{m: NewWithHasher[K, struct{}](h)}
}

// CollectSet builds a set from a sequence of elements.
func CollectSet[K comparable](seq iter.Seq[K]) Set[K] {
	b := NewSetBuilder[K]()
	for k := range seq {
		b.Insert(k)
	}
	return b.Set()
}

// Len returns the number of elements, in constant time.
func (s Set[K]) Len() int { return s.m.Len() }

// IsEmpty reports whether the set holds no elements.
func (s Set[K]) IsEmpty() bool { return s.m.IsEmpty() }

// Contains reports whether elem is present.
func (s Set[K]) Contains(elem K) bool { return s.m.Contains(elem) }

// Insert returns a set containing elem.
func (s Set[K]) Insert(elem K) Set[K] {
	s.m = s.m.Set(elem, struct{}{})
	return s
}

// Delete returns a set without elem.
func (s Set[K]) Delete(elem K) Set[K] {
	s.m = s.m.Delete(elem)
	return s
}

// All yields every element exactly once, in an order deterministic for
// this set value but otherwise unspecified.
func (s Set[K]) All() iter.Seq[K] { return s.m.Keys() }

// Union returns a set holding every element of s and other.
func (s Set[K]) Union(other Set[K]) Set[K] {
	s.m = s.m.Merge(other.m, func(K, struct{}, struct{}) struct{} { return struct{}{} })
	return s
}

// Intersection returns a set holding the elements present in both.
func (s Set[K]) Intersection(other Set[K]) Set[K] {
	if s.IsEmpty() || other.IsEmpty() {
		s.m.tree = hamt.Tree[K, struct{}]{}
		return s
	}
	if s.m.href == other.m.href {
		s.m.tree = s.m.tree.Intersection(other.m.tree)
		return s
	}
	b := hamt.NewBuilder[K, struct{}]()
	for k := range s.All() {
		if other.Contains(k) {
			b.Insert(k, s.m.hash(k), struct{}{})
		}
	}
	s.m.tree = b.Tree()
	return s
}

// Difference returns a set holding s's elements that other lacks.
func (s Set[K]) Difference(other Set[K]) Set[K] {
	if other.IsEmpty() || s.IsEmpty() {
		return s
	}
	if s.m.href == other.m.href {
		s.m.tree = s.m.tree.Difference(other.m.tree)
		return s
	}
	b := hamt.BuilderOf(s.m.tree)
	for k := range other.All() {
		b.Remove(k, s.m.hash(k))
	}
	s.m.tree = b.Tree()
	return s
}

// SymmetricDifference returns a set holding the elements present in
// exactly one of s and other.
func (s Set[K]) SymmetricDifference(other Set[K]) Set[K] {
	if s.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return s
	}
	if s.m.href == other.m.href {
		s.m.tree = s.m.tree.SymmetricDifference(other.m.tree)
		return s
	}
	b := hamt.BuilderOf(s.m.tree)
	for k := range other.All() {
		h := s.m.hash(k)
		if !b.Remove(k, h) {
			b.Insert(k, h, struct{}{})
		}
	}
	s.m.tree = b.Tree()
	return s
}

// SubsetOf reports whether every element of s is in other.
func (s Set[K]) SubsetOf(other Set[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	if s.m.href == other.m.href {
		return s.m.tree.SubsetOf(other.m.tree)
	}
	for k := range s.All() {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// Equal reports whether both sets hold the same elements, regardless of
// construction order.
func (s Set[K]) Equal(other Set[K]) bool {
	return s.m.EqualFunc(other.m, func(struct{}, struct{}) bool { return true })
}
