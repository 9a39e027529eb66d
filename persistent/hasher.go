package persistent

import "github.com/dolthub/maphash"

// Hasher is the hashing collaborator every Map and Set is built on.
// Implementations must be deterministic and consistent with key
// equality: equal keys produce equal hashes for the life of the
// collection. Hash quality affects performance only; even a constant
// hash stays correct.
//
// The default hasher wraps dolthub/maphash and carries a random
// per-instance seed. For reproducible iteration order across runs,
// construct collections with NewWithHasher and a fixed hasher.
type Hasher[K comparable] interface {
	Hash(key K) uint64
}

// hasherRef pins one Hasher instance. Collections compare these by
// pointer to tell whether their hashes live in the same hash space;
// only then can two trees be walked node by node against each other.
type hasherRef[K comparable] struct {
	h Hasher[K]
}

func defaultHasher[K comparable]() *hasherRef[K] {
	return &hasherRef[K]{h: maphash.NewHasher[K]()}
}

func refFor[K comparable](h Hasher[K]) *hasherRef[K] {
	if h == nil {
		panic("persistent: nil Hasher")
	}
	return &hasherRef[K]{h: h}
}
