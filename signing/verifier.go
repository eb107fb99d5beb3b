package signing

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/hash"
)

type verifierOption struct {
	cacheSize int
}

// VerifierOptionFunc to modify verifier.
type VerifierOptionFunc func(*verifierOption) error

// WithCacheSize sets number of recovered keys kept in memory. Zero disables the cache.
func WithCacheSize(size int) VerifierOptionFunc {
	return func(opts *verifierOption) error {
		if size < 0 {
			return fmt.Errorf("invalid cache size %d", size)
		}
		opts.cacheSize = size
		return nil
	}
}

type recoveryKey struct {
	sig    [SignatureSize]byte
	digest types.Hash32
}

// Secp256k1Verifier recovers public key from the signature and compares its
// fingerprint with the identity. It is safe for concurrent use.
type Secp256k1Verifier struct {
	cache *lru.Cache[recoveryKey, types.Hash20]
}

// NewSecp256k1Verifier creates verifier.
func NewSecp256k1Verifier(opts ...VerifierOptionFunc) (*Secp256k1Verifier, error) {
	cfg := &verifierOption{cacheSize: 1024}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	verifier := &Secp256k1Verifier{}
	if cfg.cacheSize > 0 {
		cache, err := lru.New[recoveryKey, types.Hash20](cfg.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
		verifier.cache = cache
	}
	return verifier, nil
}

// Verify that sig over digest was produced by the key with the identity.
func (v *Secp256k1Verifier) Verify(sig []byte, id types.Identity, digest types.Hash32) bool {
	if id.Flag != types.IdentitySecp256k1 {
		return false
	}
	fingerprint, ok := v.recover(sig, digest)
	return ok && fingerprint == id.Content
}

func (v *Secp256k1Verifier) recover(sig []byte, digest types.Hash32) (types.Hash20, bool) {
	if len(sig) != SignatureSize || sig[SignatureSize-1] > 3 {
		return types.Hash20{}, false
	}
	key := recoveryKey{digest: digest}
	copy(key.sig[:], sig)
	if v.cache != nil {
		if fingerprint, ok := v.cache.Get(key); ok {
			return fingerprint, true
		}
	}
	compact := make([]byte, SignatureSize)
	compact[0] = sig[SignatureSize-1] + compactHeaderCompressed
	copy(compact[1:], sig[:SignatureSize-1])
	pub, _, err := ecdsa.RecoverCompact(compact, digest[:])
	if err != nil {
		return types.Hash20{}, false
	}
	fingerprint := hash.Blake160(pub.SerializeCompressed())
	if v.cache != nil {
		v.cache.Add(key, fingerprint)
	}
	return fingerprint, true
}
