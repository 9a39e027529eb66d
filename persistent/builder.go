package persistent

import "github.com/TomTonic/collections/persistent/hamt"

// MapBuilder accumulates entries through transient in-place mutation
// and freezes them into a Map: building from n entries costs amortized
// O(n), where n persistent Set calls would copy a path each. A builder
// is single-goroutine state.
type MapBuilder[K comparable, V any] struct {
	href *hasherRef[K]
	b    *hamt.Builder[K, V]
}

// NewMapBuilder returns an empty builder using the default hasher.
func NewMapBuilder[K comparable, V any]() *MapBuilder[K, V] {
	return &MapBuilder[K, V]{href: defaultHasher[K](), b: hamt.NewBuilder[K, V]()}
}

// NewMapBuilderWithHasher returns an empty builder on h.
func NewMapBuilderWithHasher[K comparable, V any](h Hasher[K]) *MapBuilder[K, V] {
	return &MapBuilder[K, V]{href: refFor(h), b: hamt.NewBuilder[K, V]()}
}

// BuilderOf returns a builder seeded with m's entries; m itself is
// never modified.
func BuilderOf[K comparable, V any](m Map[K, V]) *MapBuilder[K, V] {
	m = m.withHasher()
	return &MapBuilder[K, V]{href: m.href, b: hamt.BuilderOf(m.tree)}
}

// Len returns the current number of entries.
func (b *MapBuilder[K, V]) Len() int { return b.b.Len() }

// Get looks key up in the builder's current contents.
func (b *MapBuilder[K, V]) Get(key K) (V, bool) {
	return b.b.Get(key, hamt.Hash(b.href.h.Hash(key)))
}

// Set stores value under key.
func (b *MapBuilder[K, V]) Set(key K, value V) {
	b.b.Insert(key, hamt.Hash(b.href.h.Hash(key)), value)
}

// Update stores f(current, found) under key; see Map.Update.
func (b *MapBuilder[K, V]) Update(key K, f func(V, bool) V) {
	b.b.Update(key, hamt.Hash(b.href.h.Hash(key)), f)
}

// Delete removes key.
func (b *MapBuilder[K, V]) Delete(key K) {
	b.b.Remove(key, hamt.Hash(b.href.h.Hash(key)))
}

// Map freezes the current contents into a persistent Map. The builder
// stays usable; nodes now shared with the returned map are copied on
// the next write.
func (b *MapBuilder[K, V]) Map() Map[K, V] {
	return Map[K, V]{href: b.href, tree: b.b.Tree()}
}

// SetBuilder is MapBuilder with unit values.
type SetBuilder[K comparable] struct {
	mb *MapBuilder[K, struct{}]
}

// NewSetBuilder returns an empty set builder using the default hasher.
func NewSetBuilder[K comparable]() *SetBuilder[K] {
	return &SetBuilder[K]{mb: NewMapBuilder[K, struct{}]()}
}

// NewSetBuilderWithHasher returns an empty set builder on h.
func NewSetBuilderWithHasher[K comparable](h Hasher[K]) *SetBuilder[K] {
	return &SetBuilder[K]{mb: NewMapBuilderWithHasher[K, struct{}](h)}
}

// Len returns the current number of elements.
func (b *SetBuilder[K]) Len() int { return b.mb.Len() }

// Contains reports whether elem is currently present.
func (b *SetBuilder[K]) Contains(elem K) bool {
	_, ok := b.mb.Get(elem)
	return ok
}

// Insert adds elem.
func (b *SetBuilder[K]) Insert(elem K) { b.mb.Set(elem, struct{}{}) }

// Delete removes elem.
func (b *SetBuilder[K]) Delete(elem K) { b.mb.Delete(elem) }

// Set freezes the current contents into a persistent Set.
func (b *SetBuilder[K]) Set() Set[K] { return Set[K]{m: b.mb.Map()} }
