package hamt

// The binary operations walk both trees' nodes in lockstep, classifying
// every bucket into item/item, item/child, child/item, child/child or
// one-sided cases via bitmap algebra, and keep subtrees shared by
// reference wherever a side passes through unchanged. All of them
// require the two trees to use the same hash function; the facade
// enforces that and falls back to element-wise merging otherwise.

// Union returns a tree holding every key of t and o. combine resolves
// duplicate keys and is invoked exactly once per duplicate, with t's
// value first. Subtrees the two trees share by identity (including
// identical roots) are taken over as they are: their keys keep t's
// entry and combine is not invoked for them.
func (t Tree[K, V]) Union(o Tree[K, V], combine func(K, V, V) V) Tree[K, V] {
	if t.root == o.root || o.root == nil {
		return t
	}
	if t.root == nil {
		return o
	}
	nt := Tree[K, V]{hoistRoot(unionNodes(nextGen(), t.root, o.root, 0, combine))}
	nt.check()
	return nt
}

// Intersection returns a tree holding t's entries whose keys o also
// contains. Values come from t.
func (t Tree[K, V]) Intersection(o Tree[K, V]) Tree[K, V] {
	if t.root == o.root {
		return t
	}
	if t.root == nil || o.root == nil {
		return Tree[K, V]{}
	}
	nt := Tree[K, V]{hoistRoot(intersectNodes(nextGen(), t.root, o.root, 0))}
	nt.check()
	return nt
}

// Difference returns a tree holding t's entries whose keys o does not
// contain.
func (t Tree[K, V]) Difference(o Tree[K, V]) Tree[K, V] {
	if t.root == o.root || t.root == nil {
		return Tree[K, V]{}
	}
	if o.root == nil {
		return t
	}
	nt := Tree[K, V]{hoistRoot(differenceNodes(nextGen(), t.root, o.root, 0))}
	nt.check()
	return nt
}

// SymmetricDifference returns a tree holding the entries whose keys
// appear in exactly one of t and o.
func (t Tree[K, V]) SymmetricDifference(o Tree[K, V]) Tree[K, V] {
	if t.root == o.root {
		return Tree[K, V]{}
	}
	if t.root == nil {
		return o
	}
	if o.root == nil {
		return t
	}
	nt := Tree[K, V]{hoistRoot(symmetricDifferenceNodes(nextGen(), t.root, o.root, 0))}
	nt.check()
	return nt
}

// SubsetOf reports whether every key of t is present in o.
func (t Tree[K, V]) SubsetOf(o Tree[K, V]) bool {
	if t.root == o.root {
		return true
	}
	if t.Len() > o.Len() {
		return false
	}
	ok := true
	t.root.walkEntries(func(e entry[K, V]) bool {
		if _, found := nodeGet(o.root, e.key, pathFor(e.hash)); !found {
			ok = false
			return false
		}
		return true
	})
	return ok
}

// EqualFunc reports whether t and o hold the same keys with values
// equal under eq. Identical roots short-circuit; otherwise both
// structures are walked in lockstep, which is sound because the
// maintained invariants make the node structure canonical for a given
// key-hash set.
func (t Tree[K, V]) EqualFunc(o Tree[K, V], eq func(V, V) bool) bool {
	if t.root == o.root {
		return true
	}
	if t.Len() != o.Len() {
		return false
	}
	return nodesEqual(t.root, o.root, eq)
}

func nodesEqual[K comparable, V any](l, r *node[K, V], eq func(V, V) bool) bool {
	if l == r {
		return true
	}
	if l == nil || r == nil {
		return false
	}
	if l.size != r.size || l.itemMap != r.itemMap || l.childMap != r.childMap {
		return false
	}
	if l.isCollision() {
		if l.collisionHash() != r.collisionHash() {
			return false
		}
		// Collision items carry no slot discipline; match as a multiset.
		for i := range l.items {
			le := &l.items[i]
			j := collisionIndex(r, le.key)
			if j < 0 || !eq(le.value, r.items[j].value) {
				return false
			}
		}
		return true
	}
	for i := range l.items {
		if l.items[i].key != r.items[i].key || !eq(l.items[i].value, r.items[i].value) {
			return false
		}
	}
	for i := range l.children {
		if !nodesEqual(l.children[i], r.children[i], eq) {
			return false
		}
	}
	return true
}

// Assembly helpers. The set operations build result nodes bucket by
// bucket in ascending order, so plain appends keep the slot discipline.

func (n *node[K, V]) appendItem(bk bucket, e entry[K, V]) {
	n.items = append(n.items, e)
	n.itemMap.insert(bk)
	n.size++
}

func (n *node[K, V]) appendChild(bk bucket, c *node[K, V]) {
	n.children = append(n.children, c)
	n.childMap.insert(bk)
	n.size += c.size
}

// appendResult links the outcome of a recursive set operation below
// bucket bk: empty results vanish, a single surviving item is inlined,
// a lone collision child is hoisted.
func (n *node[K, V]) appendResult(bk bucket, c *node[K, V]) {
	switch {
	case c == nil:
	case c.hasSingletonItem():
		n.appendItem(bk, c.items[0])
	case c.isAtrophied():
		n.appendChild(bk, c.children[0])
	default:
		n.appendChild(bk, c)
	}
}

// finish turns an assembled node into a linkable result; an empty
// assembly is no node at all.
func (n *node[K, V]) finish() *node[K, V] {
	if len(n.items) == 0 && len(n.children) == 0 {
		return nil
	}
	return n
}

// collisionFrom shapes surviving same-hash entries for return at shift:
// nothing, a lone item, or a collision node.
func collisionFrom[K comparable, V any](gen uint32, kept []entry[K, V], shift uint8) *node[K, V] {
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return newItemNode(gen, bucketAt(kept[0].hash, shift), kept[0])
	default:
		return newCollisionNode(gen, kept...)
	}
}

func collisionIndex[K comparable, V any](n *node[K, V], key K) int {
	for i := range n.items {
		if n.items[i].key == key {
			return i
		}
	}
	return -1
}

// removeFromSubtree removes key from the subtree rooted at n, keeping
// the result linkable at n's level: a collapsed survivor comes back as
// a one-item node for the caller to inline.
func removeFromSubtree[K comparable, V any](gen uint32, n *node[K, V], key K, p hashPath) *node[K, V] {
	nn, re, outcome := removeEntry(gen, n, key, p)
	switch outcome {
	case removeMissing:
		return n
	case removeEmptied:
		return nil
	case removeCollapsed:
		return newItemNode(gen, bucketAt(re.hash, p.shift), re)
	default:
		return nn
	}
}

func unionNodes[K comparable, V any](gen uint32, l, r *node[K, V], shift uint8, combine func(K, V, V) V) *node[K, V] {
	if l == r {
		return l
	}
	if l.isCollision() && r.isCollision() && l.collisionHash() == r.collisionHash() {
		out := l.dup(gen)
		for _, re := range r.items {
			if i := collisionIndex(out, re.key); i >= 0 {
				out.items[i].value = combine(re.key, out.items[i].value, re.value)
			} else {
				out.appendCollisionItem(gen, re)
				out.size++
			}
		}
		return out
	}
	if l.isCollision() {
		out := r
		for _, le := range l.items {
			out, _ = upsert(gen, out, le.key, hashPath{le.hash, shift}, func(old V, found bool) V {
				if found {
					return combine(le.key, le.value, old)
				}
				return le.value
			})
		}
		return out
	}
	if r.isCollision() {
		out := l
		for _, re := range r.items {
			out, _ = upsert(gen, out, re.key, hashPath{re.hash, shift}, func(old V, found bool) V {
				if found {
					return combine(re.key, old, re.value)
				}
				return re.value
			})
		}
		return out
	}
	out := &node[K, V]{gen: gen}
	childShift := shift + bucketBits
	for bm := l.itemMap | l.childMap | r.itemMap | r.childMap; bm != 0; {
		bk := bm.popFirst()
		lIt, lCh := l.itemMap.contains(bk), l.childMap.contains(bk)
		rIt, rCh := r.itemMap.contains(bk), r.childMap.contains(bk)
		switch {
		case lIt && rIt:
			le := l.items[l.itemMap.rank(bk)]
			re := r.items[r.itemMap.rank(bk)]
			if le.key == re.key {
				le.value = combine(le.key, le.value, re.value)
				out.appendItem(bk, le)
			} else {
				out.appendChild(bk, spawnSubtree(gen, le, re, hashPath{le.hash, childShift}))
			}
		case lIt && rCh:
			le := l.items[l.itemMap.rank(bk)]
			c, _ := upsert(gen, r.children[r.childMap.rank(bk)], le.key, hashPath{le.hash, childShift}, func(old V, found bool) V {
				if found {
					return combine(le.key, le.value, old)
				}
				return le.value
			})
			out.appendResult(bk, c)
		case lCh && rIt:
			re := r.items[r.itemMap.rank(bk)]
			c, _ := upsert(gen, l.children[l.childMap.rank(bk)], re.key, hashPath{re.hash, childShift}, func(old V, found bool) V {
				if found {
					return combine(re.key, old, re.value)
				}
				return re.value
			})
			out.appendResult(bk, c)
		case lCh && rCh:
			out.appendResult(bk, unionNodes(gen, l.children[l.childMap.rank(bk)], r.children[r.childMap.rank(bk)], childShift, combine))
		case lIt:
			out.appendItem(bk, l.items[l.itemMap.rank(bk)])
		case lCh:
			out.appendChild(bk, l.children[l.childMap.rank(bk)])
		case rIt:
			out.appendItem(bk, r.items[r.itemMap.rank(bk)])
		default:
			out.appendChild(bk, r.children[r.childMap.rank(bk)])
		}
	}
	return out
}

func intersectNodes[K comparable, V any](gen uint32, l, r *node[K, V], shift uint8) *node[K, V] {
	if l == r {
		return l
	}
	if l.isCollision() && r.isCollision() {
		if l.collisionHash() != r.collisionHash() {
			return nil
		}
		var kept []entry[K, V]
		for _, le := range l.items {
			if collisionIndex(r, le.key) >= 0 {
				kept = append(kept, le)
			}
		}
		if len(kept) == len(l.items) {
			return l
		}
		return collisionFrom(gen, kept, shift)
	}
	if l.isCollision() {
		var kept []entry[K, V]
		for _, le := range l.items {
			if _, ok := nodeGet(r, le.key, hashPath{le.hash, shift}); ok {
				kept = append(kept, le)
			}
		}
		if len(kept) == len(l.items) {
			return l
		}
		return collisionFrom(gen, kept, shift)
	}
	if r.isCollision() {
		var kept []entry[K, V]
		for _, re := range r.items {
			if v, ok := nodeGet(l, re.key, hashPath{re.hash, shift}); ok {
				kept = append(kept, entry[K, V]{hash: re.hash, key: re.key, value: v})
			}
		}
		return collisionFrom(gen, kept, shift)
	}
	out := &node[K, V]{gen: gen}
	childShift := shift + bucketBits
	for bm := (l.itemMap | l.childMap) & (r.itemMap | r.childMap); bm != 0; {
		bk := bm.popFirst()
		switch {
		case l.itemMap.contains(bk):
			le := l.items[l.itemMap.rank(bk)]
			if r.itemMap.contains(bk) {
				if le.key == r.items[r.itemMap.rank(bk)].key {
					out.appendItem(bk, le)
				}
			} else if _, ok := nodeGet(r.children[r.childMap.rank(bk)], le.key, hashPath{le.hash, childShift}); ok {
				out.appendItem(bk, le)
			}
		case r.itemMap.contains(bk):
			re := r.items[r.itemMap.rank(bk)]
			if v, ok := nodeGet(l.children[l.childMap.rank(bk)], re.key, hashPath{re.hash, childShift}); ok {
				out.appendItem(bk, entry[K, V]{hash: re.hash, key: re.key, value: v})
			}
		default:
			out.appendResult(bk, intersectNodes(gen, l.children[l.childMap.rank(bk)], r.children[r.childMap.rank(bk)], childShift))
		}
	}
	if out.size == l.size {
		// Everything survived; hand the input back and keep it shared.
		return l
	}
	return out.finish()
}

func differenceNodes[K comparable, V any](gen uint32, l, r *node[K, V], shift uint8) *node[K, V] {
	if l == r {
		return nil
	}
	if l.isCollision() {
		if r.isCollision() && l.collisionHash() != r.collisionHash() {
			return l
		}
		var kept []entry[K, V]
		for _, le := range l.items {
			if r.isCollision() {
				if collisionIndex(r, le.key) < 0 {
					kept = append(kept, le)
				}
			} else if _, ok := nodeGet(r, le.key, hashPath{le.hash, shift}); !ok {
				kept = append(kept, le)
			}
		}
		if len(kept) == len(l.items) {
			return l
		}
		return collisionFrom(gen, kept, shift)
	}
	if r.isCollision() {
		out := l
		for _, re := range r.items {
			out = removeFromSubtree(gen, out, re.key, hashPath{re.hash, shift})
			if out == nil {
				return nil
			}
		}
		return out
	}
	out := &node[K, V]{gen: gen}
	childShift := shift + bucketBits
	for bm := l.itemMap | l.childMap; bm != 0; {
		bk := bm.popFirst()
		if l.itemMap.contains(bk) {
			le := l.items[l.itemMap.rank(bk)]
			switch {
			case r.itemMap.contains(bk):
				if le.key != r.items[r.itemMap.rank(bk)].key {
					out.appendItem(bk, le)
				}
			case r.childMap.contains(bk):
				if _, ok := nodeGet(r.children[r.childMap.rank(bk)], le.key, hashPath{le.hash, childShift}); !ok {
					out.appendItem(bk, le)
				}
			default:
				out.appendItem(bk, le)
			}
			continue
		}
		lc := l.children[l.childMap.rank(bk)]
		switch {
		case r.itemMap.contains(bk):
			re := r.items[r.itemMap.rank(bk)]
			out.appendResult(bk, removeFromSubtree(gen, lc, re.key, hashPath{re.hash, childShift}))
		case r.childMap.contains(bk):
			out.appendResult(bk, differenceNodes(gen, lc, r.children[r.childMap.rank(bk)], childShift))
		default:
			out.appendChild(bk, lc)
		}
	}
	if out.size == l.size {
		return l
	}
	return out.finish()
}

func symmetricDifferenceNodes[K comparable, V any](gen uint32, l, r *node[K, V], shift uint8) *node[K, V] {
	if l == r {
		return nil
	}
	if l.isCollision() && r.isCollision() && l.collisionHash() == r.collisionHash() {
		var kept []entry[K, V]
		for _, le := range l.items {
			if collisionIndex(r, le.key) < 0 {
				kept = append(kept, le)
			}
		}
		for _, re := range r.items {
			if collisionIndex(l, re.key) < 0 {
				kept = append(kept, re)
			}
		}
		return collisionFrom(gen, kept, shift)
	}
	if l.isCollision() {
		return mergeExclusive(gen, r, l, shift)
	}
	if r.isCollision() {
		return mergeExclusive(gen, l, r, shift)
	}
	out := &node[K, V]{gen: gen}
	childShift := shift + bucketBits
	for bm := l.itemMap | l.childMap | r.itemMap | r.childMap; bm != 0; {
		bk := bm.popFirst()
		lIt, lCh := l.itemMap.contains(bk), l.childMap.contains(bk)
		rIt, rCh := r.itemMap.contains(bk), r.childMap.contains(bk)
		switch {
		case lIt && rIt:
			le := l.items[l.itemMap.rank(bk)]
			re := r.items[r.itemMap.rank(bk)]
			if le.key != re.key {
				out.appendChild(bk, spawnSubtree(gen, le, re, hashPath{le.hash, childShift}))
			}
		case lIt && rCh:
			out.appendResult(bk, toggleEntry(gen, r.children[r.childMap.rank(bk)], l.items[l.itemMap.rank(bk)], childShift))
		case lCh && rIt:
			out.appendResult(bk, toggleEntry(gen, l.children[l.childMap.rank(bk)], r.items[r.itemMap.rank(bk)], childShift))
		case lCh && rCh:
			out.appendResult(bk, symmetricDifferenceNodes(gen, l.children[l.childMap.rank(bk)], r.children[r.childMap.rank(bk)], childShift))
		case lIt:
			out.appendItem(bk, l.items[l.itemMap.rank(bk)])
		case lCh:
			out.appendChild(bk, l.children[l.childMap.rank(bk)])
		case rIt:
			out.appendItem(bk, r.items[r.itemMap.rank(bk)])
		default:
			out.appendChild(bk, r.children[r.childMap.rank(bk)])
		}
	}
	return out.finish()
}

// toggleEntry removes e's key from the subtree when present and adds e
// otherwise — the per-entry step of a symmetric difference.
func toggleEntry[K comparable, V any](gen uint32, n *node[K, V], e entry[K, V], shift uint8) *node[K, V] {
	p := hashPath{e.hash, shift}
	if _, ok := nodeGet(n, e.key, p); ok {
		return removeFromSubtree(gen, n, e.key, p)
	}
	nn, _ := upsert(gen, n, e.key, p, func(V, bool) V { return e.value })
	return nn
}

// mergeExclusive folds the items of collision node c into base (a
// subtree at shift, possibly itself a collision node of a different
// hash) with exclusive-or semantics: keys already present are removed,
// the rest are added.
func mergeExclusive[K comparable, V any](gen uint32, base, c *node[K, V], shift uint8) *node[K, V] {
	out := base
	for _, e := range c.items {
		if out == nil {
			out = newItemNode(gen, bucketAt(e.hash, shift), e)
			continue
		}
		out = toggleEntry(gen, out, e, shift)
	}
	return out
}
