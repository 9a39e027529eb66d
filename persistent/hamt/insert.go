package hamt

// upsert walks to key's site in the subtree rooted at n (which may be
// nil), making every node on the path uniquely owned by gen, and stores
// resolve(existing, found) there. resolve is invoked exactly once per
// call. The bool result reports whether the key was new.
//
// The per-node case analysis:
//
//   - found: an item with an equal key exists; its value is replaced.
//   - insert: the bucket is vacant; a new item lands here.
//   - spawn child: the bucket holds an item with a different key; both
//     entries move into a fresh subtree below.
//   - descend: the bucket holds a child; recurse.
//   - append collision: collision node with a matching hash and a new
//     key.
//   - expansion: collision node whose shared hash differs from the new
//     key's; the collision node is wrapped under fresh normal nodes
//     until the two diverge.
func upsert[K comparable, V any](gen uint32, n *node[K, V], key K, p hashPath, resolve func(V, bool) V) (*node[K, V], bool) {
	var zero V
	if n == nil {
		e := entry[K, V]{hash: p.hash, key: key, value: resolve(zero, false)}
		return newItemNode(gen, p.bucket(), e), true
	}
	if n.isCollision() {
		if p.hash != n.collisionHash() {
			e := entry[K, V]{hash: p.hash, key: key, value: resolve(zero, false)}
			return expandCollision(gen, n, e, p), true
		}
		for i := range n.items {
			if n.items[i].key == key {
				n = n.editable(gen)
				n.items[i].value = resolve(n.items[i].value, true)
				return n, false
			}
		}
		n = n.editable(gen)
		n.appendCollisionItem(gen, entry[K, V]{hash: p.hash, key: key, value: resolve(zero, false)})
		n.size++
		return n, true
	}
	bk := p.bucket()
	switch {
	case n.itemMap.contains(bk):
		slot := n.itemMap.rank(bk)
		if n.items[slot].key == key {
			n = n.editable(gen)
			n.items[slot].value = resolve(n.items[slot].value, true)
			return n, false
		}
		e := entry[K, V]{hash: p.hash, key: key, value: resolve(zero, false)}
		n = n.editable(gen)
		sub := spawnSubtree(gen, n.items[slot], e, p.descend())
		n.replaceItemWithChild(gen, bk, sub)
		n.size++
		return n, true
	case n.childMap.contains(bk):
		slot := n.childMap.rank(bk)
		child, added := upsert(gen, n.children[slot], key, p.descend(), resolve)
		n = n.editable(gen)
		n.children[slot] = child
		if added {
			n.size++
		}
		return n, added
	default:
		e := entry[K, V]{hash: p.hash, key: key, value: resolve(zero, false)}
		n = n.editable(gen)
		n.insertItem(gen, bk, n.itemMap.rank(bk), e)
		n.size++
		return n, true
	}
}

// spawnSubtree resolves two distinct keys that met at one bucket of the
// parent: a chain of single-child nodes for as long as the two hashes
// keep agreeing, then a two-item node at the first diverging level. If
// the hashes are fully equal the keys can never diverge and a collision
// node holds both. p is positioned one level below the parent.
func spawnSubtree[K comparable, V any](gen uint32, e1, e2 entry[K, V], p hashPath) *node[K, V] {
	if e1.hash == e2.hash {
		return newCollisionNode(gen, e1, e2)
	}
	b1 := bucketAt(e1.hash, p.shift)
	b2 := bucketAt(e2.hash, p.shift)
	if b1 == b2 {
		n := &node[K, V]{gen: gen, size: 2}
		n.children = []*node[K, V]{spawnSubtree(gen, e1, e2, p.descend())}
		n.childMap.insert(b1)
		return n
	}
	n := &node[K, V]{gen: gen, size: 2}
	if b1 < b2 {
		n.items = []entry[K, V]{e1, e2}
	} else {
		n.items = []entry[K, V]{e2, e1}
	}
	n.itemMap.insert(b1)
	n.itemMap.insert(b2)
	return n
}

// expandCollision wraps a collision node whose shared hash differs from
// e's under fresh normal nodes until the two route to different
// buckets. The collision node itself is linked by reference and stays
// shared.
func expandCollision[K comparable, V any](gen uint32, c *node[K, V], e entry[K, V], p hashPath) *node[K, V] {
	b1 := bucketAt(c.collisionHash(), p.shift)
	b2 := bucketAt(e.hash, p.shift)
	n := &node[K, V]{gen: gen, size: c.size + 1}
	if b1 == b2 {
		n.children = []*node[K, V]{expandCollision(gen, c, e, p.descend())}
		n.childMap.insert(b1)
		return n
	}
	n.items = []entry[K, V]{e}
	n.itemMap.insert(b2)
	n.children = []*node[K, V]{c}
	n.childMap.insert(b1)
	return n
}
