package hamt

// Filter returns a tree holding the entries pred accepts. Stored hashes
// are reused; keys are not rehashed.
func (t Tree[K, V]) Filter(pred func(K, V) bool) Tree[K, V] {
	if t.root == nil {
		return t
	}
	b := NewBuilder[K, V]()
	dropped := false
	t.root.walkEntries(func(e entry[K, V]) bool {
		if pred(e.key, e.value) {
			b.Insert(e.key, e.hash, e.value)
		} else {
			dropped = true
		}
		return true
	})
	if !dropped {
		return t
	}
	return b.Tree()
}

// MapValues returns a tree with f applied to every value. The node
// structure is rebuilt one-to-one, so the result routes and iterates
// exactly like the input.
func MapValues[K comparable, V, W any](t Tree[K, V], f func(K, V) W) Tree[K, W] {
	if t.root == nil {
		return Tree[K, W]{}
	}
	gen := nextGen()
	return Tree[K, W]{mapNode(gen, t.root, f)}
}

func mapNode[K comparable, V, W any](gen uint32, n *node[K, V], f func(K, V) W) *node[K, W] {
	out := &node[K, W]{
		gen:      gen,
		itemMap:  n.itemMap,
		childMap: n.childMap,
		size:     n.size,
	}
	if len(n.items) > 0 {
		out.items = make([]entry[K, W], len(n.items))
		for i := range n.items {
			e := &n.items[i]
			out.items[i] = entry[K, W]{hash: e.hash, key: e.key, value: f(e.key, e.value)}
		}
	}
	if len(n.children) > 0 {
		out.children = make([]*node[K, W], len(n.children))
		for i := range n.children {
			out.children[i] = mapNode(gen, n.children[i], f)
		}
	}
	return out
}
