package hamt

// Cursor identifies one item by its slot path from the root. A cursor
// is bound to the exact tree value it was derived from; any mutation
// produces a new tree for which old cursors are meaningless. Using a
// cursor against a different tree is a programmer error and panics.
type Cursor[K comparable, V any] struct {
	root *node[K, V]
	// path holds the child slot for every level above the item, then
	// the item slot itself.
	path []uint8
}

// CursorFor returns a cursor to key's item, if present.
func (t Tree[K, V]) CursorFor(key K, h Hash) (Cursor[K, V], bool) {
	c := Cursor[K, V]{root: t.root}
	n := t.root
	p := pathFor(h)
	for n != nil {
		if n.isCollision() {
			if p.hash != n.collisionHash() {
				break
			}
			for i := range n.items {
				if n.items[i].key == key {
					c.path = append(c.path, uint8(i))
					return c, true
				}
			}
			break
		}
		bk := p.bucket()
		if n.itemMap.contains(bk) {
			slot := n.itemMap.rank(bk)
			if n.items[slot].key == key {
				c.path = append(c.path, uint8(slot))
				return c, true
			}
			break
		}
		if !n.childMap.contains(bk) {
			break
		}
		slot := n.childMap.rank(bk)
		c.path = append(c.path, uint8(slot))
		n = n.children[slot]
		p = p.descend()
	}
	return Cursor[K, V]{}, false
}

// At resolves a cursor previously obtained from this exact tree value.
func (t Tree[K, V]) At(c Cursor[K, V]) (K, V) {
	if c.root != t.root || len(c.path) == 0 {
		panic("hamt: cursor does not belong to this tree")
	}
	n := c.root
	for _, slot := range c.path[:len(c.path)-1] {
		n = n.children[slot]
	}
	e := n.items[c.path[len(c.path)-1]]
	return e.key, e.value
}
