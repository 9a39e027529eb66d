// Package persistent provides value-semantic, structurally shared
// collections: Map, a persistent key-value map, and Set, a persistent
// set of elements. Both are backed by a hash-array-mapped trie
// (persistent/hamt): updating a collection returns a new value that
// shares all untouched nodes with its input, so keeping many versions
// of large collections is cheap and old versions never observe later
// changes.
//
// Distinct values may be used concurrently without synchronization; a
// single value must not be mutated from multiple goroutines at once.
package persistent

import (
	"iter"

	"github.com/TomTonic/collections/persistent/hamt"
)

// Map is a persistent map from K to V. The zero value is an empty map
// ready for use; all mutating methods return a new Map and leave the
// receiver untouched.
type Map[K comparable, V any] struct {
	href *hasherRef[K]
	tree hamt.Tree[K, V]
}

// New returns an empty map using the default (randomly seeded) hasher.
func New[K comparable, V any]() Map[K, V] {
	return Map[K, V]{href: defaultHasher[K]()}
}

// NewWithHasher returns an empty map built on h. Every map derived from
// it keeps using h, and maps sharing one NewWithHasher origin support
// fast structural merging and comparison.
func NewWithHasher[K comparable, V any](h Hasher[K]) Map[K, V] {
	return Map[K, V]{href: refFor(h)}
}

// Collect builds a map from a sequence of key-value pairs; later pairs
// win on duplicate keys.
func Collect[K comparable, V any](seq iter.Seq2[K, V]) Map[K, V] {
	b := NewMapBuilder[K, V]()
	for k, v := range seq {
		b.Set(k, v)
	}
	return b.Map()
}

// withHasher equips a zero-value map with the default hasher on first
// mutation.
func (m Map[K, V]) withHasher() Map[K, V] {
	if m.href == nil {
		m.href = defaultHasher[K]()
	}
	return m
}

func (m Map[K, V]) hash(key K) hamt.Hash {
	return hamt.Hash(m.href.h.Hash(key))
}

// Len returns the number of entries, in constant time.
func (m Map[K, V]) Len() int { return m.tree.Len() }

// IsEmpty reports whether the map holds no entries.
func (m Map[K, V]) IsEmpty() bool { return m.tree.IsEmpty() }

// Get returns the value stored for key.
func (m Map[K, V]) Get(key K) (V, bool) {
	if m.href == nil || m.tree.IsEmpty() {
		var zero V
		return zero, false
	}
	return m.tree.Get(key, m.hash(key))
}

// Contains reports whether key is present.
func (m Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Set returns a map with value stored under key, overwriting any
// existing value.
func (m Map[K, V]) Set(key K, value V) Map[K, V] {
	m = m.withHasher()
	m.tree, _ = m.tree.Insert(key, m.hash(key), value)
	return m
}

// Delete returns a map without key. Deleting a missing key returns the
// receiver unchanged.
func (m Map[K, V]) Delete(key K) Map[K, V] {
	if m.href == nil || m.tree.IsEmpty() {
		return m
	}
	m.tree, _ = m.tree.Remove(key, m.hash(key))
	return m
}

// Update returns a map storing f(current, found) under key. f receives
// the current value (or V's zero value) and whether the key was
// present, and is invoked exactly once — the defaulted-update idiom
// m[key, default] += 1 in a single walk.
func (m Map[K, V]) Update(key K, f func(value V, found bool) V) Map[K, V] {
	m = m.withHasher()
	m.tree, _ = m.tree.Update(key, m.hash(key), f)
	return m
}

// Merge returns a map holding every entry of m and other. combine
// resolves duplicate keys — m's value first — and is invoked exactly
// once per duplicate. When both maps share one hasher origin the merge
// walks both tries structurally and preserves node sharing; keys in
// nodes the two maps share by identity keep m's entry without a
// combine call. Otherwise other's entries are folded in one by one
// under m's hasher.
func (m Map[K, V]) Merge(other Map[K, V], combine func(key K, left, right V) V) Map[K, V] {
	if other.tree.IsEmpty() {
		return m
	}
	m = m.withHasher()
	if m.href == other.href {
		m.tree = m.tree.Union(other.tree, combine)
		return m
	}
	b := hamt.BuilderOf(m.tree)
	for k, v := range other.All() {
		b.Update(k, m.hash(k), func(old V, found bool) V {
			if found {
				return combine(k, old, v)
			}
			return v
		})
	}
	m.tree = b.Tree()
	return m
}

// Filter returns a map holding the entries pred accepts.
func (m Map[K, V]) Filter(pred func(K, V) bool) Map[K, V] {
	m.tree = m.tree.Filter(pred)
	return m
}

// MapValues returns a map with f applied to every value. The trie
// structure is preserved, so the result iterates in the same order as
// the input.
func MapValues[K comparable, V, W any](m Map[K, V], f func(K, V) W) Map[K, W] {
	return Map[K, W]{href: m.href, tree: hamt.MapValues(m.tree, f)}
}

// All yields every entry exactly once. The order is deterministic for a
// given map value but otherwise unspecified.
func (m Map[K, V]) All() iter.Seq2[K, V] { return m.tree.All() }

// Keys yields every key once, in All order.
func (m Map[K, V]) Keys() iter.Seq[K] { return m.tree.Keys() }

// Values yields every value once, in All order.
func (m Map[K, V]) Values() iter.Seq[V] { return m.tree.Values() }

// EqualFunc reports whether both maps hold the same keys with values
// equal under eq, regardless of construction order. Maps sharing a
// hasher origin are compared structurally with an identity fast path.
func (m Map[K, V]) EqualFunc(other Map[K, V], eq func(V, V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	if m.href == other.href {
		return m.tree.EqualFunc(other.tree, eq)
	}
	for k, v := range m.All() {
		ov, ok := other.Get(k)
		if !ok || !eq(v, ov) {
			return false
		}
	}
	return true
}

// Equal reports whether two maps with comparable values hold the same
// entries.
func Equal[K, V comparable](a, b Map[K, V]) bool {
	return a.EqualFunc(b, func(x, y V) bool { return x == y })
}

// CursorFor returns a cursor to key's entry. Cursors are bound to the
// exact map value they came from; resolving one against any other map
// value panics.
func (m Map[K, V]) CursorFor(key K) (hamt.Cursor[K, V], bool) {
	if m.href == nil || m.tree.IsEmpty() {
		return hamt.Cursor[K, V]{}, false
	}
	return m.tree.CursorFor(key, m.hash(key))
}

// At resolves a cursor previously obtained from this exact map value.
func (m Map[K, V]) At(c hamt.Cursor[K, V]) (K, V) {
	return m.tree.At(c)
}
