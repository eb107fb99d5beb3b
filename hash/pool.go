package hash

import (
	"hash"
	"sync"
)

// Pool is a global blake2b hasher pool. It is meant to amortize allocations
// of hashers over time by allowing clients to reuse them.
var pool = &sync.Pool{
	New: func() any {
		return New()
	},
}

// GetHasher will get a blake2b hasher from the pool.
// It may or may not allocate a new one.
func GetHasher() hash.Hash {
	return pool.Get().(hash.Hash)
}

// PutHasher resets the hasher and returns it back to the pool.
func PutHasher(hasher hash.Hash) {
	hasher.Reset()
	pool.Put(hasher)
}
