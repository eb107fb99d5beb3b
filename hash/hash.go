package hash

import (
	"hash"

	"github.com/minio/blake2b-simd"

	"github.com/spacemeshos/go-checkpointvm/common/types"
)

const (
	// Size of the digest produced by Sum.
	Size = 32
	// Personalization used by the ledger for every blake2b hash.
	Personalization = "ckb-default-hash"
)

var config = blake2b.Config{
	Size:   Size,
	Person: []byte(Personalization),
}

// New returns blake2b-256 hasher with ledger personalization.
func New() hash.Hash {
	cfg := config
	h, err := blake2b.New(&cfg)
	if err != nil {
		// config is static and valid
		panic(err)
	}
	return h
}

// Sum computes blake2b-256 of the concatenated chunks.
func Sum(chunks ...[]byte) (rst types.Hash32) {
	hh := GetHasher()
	defer PutHasher(hh)
	for _, chunk := range chunks {
		hh.Write(chunk)
	}
	hh.Sum(rst[:0])
	return rst
}

// Blake160 is the 20-byte prefix of Sum. Used as a public key fingerprint.
func Blake160(data []byte) types.Hash20 {
	return Sum(data).ToHash20()
}
