package hamt

// Builder constructs or reworks a tree through transient in-place
// mutation. All operations of one builder share a single generation, so
// nodes the builder allocated once are edited in place afterwards:
// building from n insertions costs amortized O(n) instead of the
// O(n log n) node copies of n persistent single-key updates.
//
// A Builder is single-goroutine state. Tree() freezes the current
// contents into an independent persistent value; the builder remains
// usable and will copy-on-write any node the frozen tree now shares.
type Builder[K comparable, V any] struct {
	gen  uint32
	root *node[K, V]
}

// NewBuilder returns an empty builder.
func NewBuilder[K comparable, V any]() *Builder[K, V] {
	return &Builder[K, V]{gen: nextGen()}
}

// BuilderOf returns a builder seeded with the contents of t. The input
// tree is never modified.
func BuilderOf[K comparable, V any](t Tree[K, V]) *Builder[K, V] {
	return &Builder[K, V]{gen: nextGen(), root: t.root}
}

// Len returns the current number of items.
func (b *Builder[K, V]) Len() int {
	if b.root == nil {
		return 0
	}
	return b.root.size
}

// Get looks key up in the builder's current contents.
func (b *Builder[K, V]) Get(key K, h Hash) (V, bool) {
	return nodeGet(b.root, key, pathFor(h))
}

// Insert stores value under key and reports whether the key was new.
func (b *Builder[K, V]) Insert(key K, h Hash, value V) bool {
	root, added := insertRoot(b.gen, b.root, key, h, value)
	b.root = root
	return added
}

// Update stores f(current, found) under key; see Tree.Update.
func (b *Builder[K, V]) Update(key K, h Hash, f func(V, bool) V) bool {
	root, added := updateRoot(b.gen, b.root, key, h, f)
	b.root = root
	return added
}

// Remove deletes key and reports whether it was present.
func (b *Builder[K, V]) Remove(key K, h Hash) bool {
	root, removed := removeRoot(b.gen, b.root, key, h)
	if removed {
		b.root = root
	}
	return removed
}

// Tree freezes the current contents. The builder moves to a fresh
// generation, so later builder mutations copy rather than touch nodes
// the returned tree holds.
func (b *Builder[K, V]) Tree() Tree[K, V] {
	t := Tree[K, V]{b.root}
	t.check()
	b.gen = nextGen()
	return t
}
