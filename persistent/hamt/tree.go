// Package hamt implements the persistent hash-array-mapped trie behind
// the persistent package's Map and Set. It is keyed by explicit hashes:
// every operation takes the key together with the Hash the external
// hasher produced for it, which keeps the engine independent of any
// particular hash function and makes collision behavior directly
// testable.
//
// Tree is a value type. Mutating operations return a new Tree that
// shares all untouched nodes with its input; a single-key update copies
// at most one node per level. Distinct Tree values may be used from
// different goroutines concurrently, a single value must not be.
package hamt

// Tree is a persistent map from keys to values. The zero value is an
// empty tree.
type Tree[K comparable, V any] struct {
	root *node[K, V]
}

// Len returns the number of items, in constant time.
func (t Tree[K, V]) Len() int {
	if t.root == nil {
		return 0
	}
	return t.root.size
}

// IsEmpty reports whether the tree holds no items.
func (t Tree[K, V]) IsEmpty() bool { return t.root == nil }

// Get returns the value stored for key, which must be presented with
// the same hash it was inserted under.
func (t Tree[K, V]) Get(key K, h Hash) (V, bool) {
	return nodeGet(t.root, key, pathFor(h))
}

// Contains reports whether key is present.
func (t Tree[K, V]) Contains(key K, h Hash) bool {
	_, ok := t.Get(key, h)
	return ok
}

// nodeGet looks key up in the subtree rooted at n, with p positioned at
// n's level.
func nodeGet[K comparable, V any](n *node[K, V], key K, p hashPath) (V, bool) {
	for n != nil {
		if n.isCollision() {
			if p.hash != n.collisionHash() {
				break
			}
			for i := range n.items {
				if n.items[i].key == key {
					return n.items[i].value, true
				}
			}
			break
		}
		bk := p.bucket()
		if n.itemMap.contains(bk) {
			e := &n.items[n.itemMap.rank(bk)]
			if e.key == key {
				return e.value, true
			}
			break
		}
		if !n.childMap.contains(bk) {
			break
		}
		n = n.children[n.childMap.rank(bk)]
		p = p.descend()
	}
	var zero V
	return zero, false
}

// Insert returns a tree that stores value under key, and whether the
// key was new. An existing value is overwritten.
func (t Tree[K, V]) Insert(key K, h Hash, value V) (Tree[K, V], bool) {
	root, added := insertRoot(nextGen(), t.root, key, h, value)
	nt := Tree[K, V]{root}
	nt.check()
	return nt, added
}

// Remove returns a tree without key, and whether the key was present.
// Removing a missing key is a no-op.
func (t Tree[K, V]) Remove(key K, h Hash) (Tree[K, V], bool) {
	root, removed := removeRoot(nextGen(), t.root, key, h)
	if !removed {
		return t, false
	}
	nt := Tree[K, V]{root}
	nt.check()
	return nt, true
}

// Update stores f(current, found) under key in one walk: f receives the
// existing value (or the zero value) and whether the key was present,
// and is invoked exactly once. The bool result reports an insertion.
// This is the defaulted-update primitive; it avoids hashing or walking
// twice for read-modify-write patterns.
func (t Tree[K, V]) Update(key K, h Hash, f func(V, bool) V) (Tree[K, V], bool) {
	root, added := updateRoot(nextGen(), t.root, key, h, f)
	nt := Tree[K, V]{root}
	nt.check()
	return nt, added
}

func insertRoot[K comparable, V any](gen uint32, root *node[K, V], key K, h Hash, value V) (*node[K, V], bool) {
	return updateRoot(gen, root, key, h, func(V, bool) V { return value })
}

func updateRoot[K comparable, V any](gen uint32, root *node[K, V], key K, h Hash, f func(V, bool) V) (*node[K, V], bool) {
	nn, added := upsert(gen, root, key, pathFor(h), f)
	return hoistRoot(nn), added
}

// hoistRoot repairs an atrophied root: a root left with nothing but a
// collision-node child hands its place to that child, so the collision
// node always sits as high as its hash allows.
func hoistRoot[K comparable, V any](n *node[K, V]) *node[K, V] {
	for n != nil && n.isAtrophied() {
		n = n.children[0]
	}
	return n
}

// check re-validates the whole tree when internal checks are compiled
// in. Invariant failures are not recoverable.
func (t Tree[K, V]) check() {
	if internalChecks {
		if err := t.Validate(); err != nil {
			panic(err)
		}
	}
}
