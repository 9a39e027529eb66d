package hamt

import "math/bits"

// bucket is a 5-bit index in [0, bucketCount) sliced out of a hash at
// one level of the trie. invalidBucket is an out-of-range value reserved
// for positions where bucket identity is meaningless; the trie does not
// store it anywhere, and collision-node items are recognized through
// isCollision rather than by a bucket.
type bucket uint8

const invalidBucket bucket = 0xFF

// bitmap is a 32-bit set of buckets. Every node carries two: one for
// its item slots and one for its child slots. The slot of a bucket is
// the rank of that bucket in the corresponding bitmap.
type bitmap uint32

func (b bitmap) contains(bk bucket) bool { return b&(1<<bk) != 0 }

func (b *bitmap) insert(bk bucket) { *b |= 1 << bk }

func (b *bitmap) remove(bk bucket) { *b &^= 1 << bk }

func (b bitmap) count() int { return bits.OnesCount32(uint32(b)) }

func (b bitmap) first() bucket { return bucket(bits.TrailingZeros32(uint32(b))) }

func (b *bitmap) popFirst() bucket {
	bk := b.first()
	b.remove(bk)
	return bk
}

// rank returns the number of set buckets strictly below bk, i.e. the
// slot bk occupies (or would occupy) in this bitmap.
func (b bitmap) rank(bk bucket) int {
	return bits.OnesCount32(uint32(b) & (1<<bk - 1))
}

// selectBucket returns the bucket of the k-th lowest set bit. k must be
// below count.
func (b bitmap) selectBucket(k int) bucket {
	for ; k > 0; k-- {
		b.remove(b.first())
	}
	return b.first()
}
