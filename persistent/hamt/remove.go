package hamt

// removeOutcome tells the parent what became of a subtree after a
// removal inside it.
type removeOutcome int

const (
	// removeMissing: key not present, subtree unchanged.
	removeMissing removeOutcome = iota
	// removeDone: the returned node is the surviving subtree.
	removeDone
	// removeCollapsed: exactly one item survived; the parent deletes
	// the child slot and stores the item in its own item array instead.
	removeCollapsed
	// removeEmptied: nothing survived. Only a single-item subtree can
	// end up here, which below the root cannot exist.
	removeEmptied
)

func removeRoot[K comparable, V any](gen uint32, root *node[K, V], key K, h Hash) (*node[K, V], bool) {
	if root == nil {
		return nil, false
	}
	nn, re, outcome := removeEntry(gen, root, key, pathFor(h))
	switch outcome {
	case removeMissing:
		return root, false
	case removeEmptied:
		return nil, true
	case removeCollapsed:
		// The tree shrank to a single item; rebuild a one-item root.
		return newItemNode(gen, bucketAt(re.hash, 0), re), true
	default:
		return hoistRoot(nn), true
	}
}

// removeEntry removes key from the subtree rooted at n and restores the
// structural invariants on the way back up: a subtree down to one item
// is handed to the parent as an item, and a node left with nothing but
// a collision-node child is replaced by that child.
func removeEntry[K comparable, V any](gen uint32, n *node[K, V], key K, p hashPath) (*node[K, V], entry[K, V], removeOutcome) {
	var zero entry[K, V]
	if n.isCollision() {
		if p.hash != n.collisionHash() {
			return n, zero, removeMissing
		}
		for i := range n.items {
			if n.items[i].key != key {
				continue
			}
			if len(n.items) == 2 {
				// A one-item collision node is illegal; hand the
				// survivor up for inlining.
				return nil, n.items[1-i], removeCollapsed
			}
			n = n.editable(gen)
			n.removeCollisionItem(gen, i)
			n.size--
			return n, zero, removeDone
		}
		return n, zero, removeMissing
	}
	bk := p.bucket()
	switch {
	case n.itemMap.contains(bk):
		slot := n.itemMap.rank(bk)
		if n.items[slot].key != key {
			return n, zero, removeMissing
		}
		if len(n.children) == 0 {
			switch len(n.items) {
			case 1:
				return nil, zero, removeEmptied
			case 2:
				return nil, n.items[1-slot], removeCollapsed
			}
		}
		n = n.editable(gen)
		n.removeItem(gen, bk, slot)
		n.size--
		if n.isAtrophied() {
			return n.children[0], zero, removeDone
		}
		return n, zero, removeDone
	case n.childMap.contains(bk):
		slot := n.childMap.rank(bk)
		child, re, outcome := removeEntry(gen, n.children[slot], key, p.descend())
		switch outcome {
		case removeMissing:
			return n, zero, removeMissing
		case removeEmptied:
			// Unreachable for a canonical tree: every non-root subtree
			// holds at least two items.
			n = n.editable(gen)
			n.removeChild(gen, bk, slot)
			n.size--
		case removeCollapsed:
			n = n.editable(gen)
			n.removeChild(gen, bk, slot)
			n.insertItem(gen, bk, n.itemMap.rank(bk), re)
			n.size--
		default:
			n = n.editable(gen)
			n.children[slot] = child
			n.size--
		}
		if n.hasSingletonItem() {
			return nil, n.items[0], removeCollapsed
		}
		if n.isAtrophied() {
			return n.children[0], zero, removeDone
		}
		return n, zero, removeDone
	default:
		return n, zero, removeMissing
	}
}
