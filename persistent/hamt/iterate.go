package hamt

import "iter"

// All yields every key-value pair exactly once: depth first, ascending
// bucket order at each level. The order is deterministic for a given
// tree value but otherwise unspecified.
func (t Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if t.root != nil {
			t.root.walk(yield)
		}
	}
}

// Keys yields every key once, in All order.
func (t Tree[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range t.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values yields every value once, in All order.
func (t Tree[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range t.All() {
			if !yield(v) {
				return
			}
		}
	}
}

func (n *node[K, V]) walk(yield func(K, V) bool) bool {
	if n.isCollision() {
		for i := range n.items {
			if !yield(n.items[i].key, n.items[i].value) {
				return false
			}
		}
		return true
	}
	for bm := n.itemMap | n.childMap; bm != 0; {
		bk := bm.popFirst()
		if n.itemMap.contains(bk) {
			e := &n.items[n.itemMap.rank(bk)]
			if !yield(e.key, e.value) {
				return false
			}
		} else if !n.children[n.childMap.rank(bk)].walk(yield) {
			return false
		}
	}
	return true
}

// walkEntries is the internal variant handing out stored entries, so
// bulk algorithms can reuse the cached hashes.
func (n *node[K, V]) walkEntries(yield func(entry[K, V]) bool) bool {
	if n == nil {
		return true
	}
	for i := range n.items {
		if !yield(n.items[i]) {
			return false
		}
	}
	for _, c := range n.children {
		if !c.walkEntries(yield) {
			return false
		}
	}
	return true
}
