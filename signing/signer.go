package signing

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path/filepath"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/ecdsa"
	"github.com/spf13/afero"

	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/hash"
)

const (
	// PrivateKeySize is the size of serialized secp256k1 private key.
	PrivateKeySize = 32
	// PublicKeySize is the size of compressed secp256k1 public key.
	PublicKeySize = 33
	// SignatureSize is the size of recoverable signature: r(32) | s(32) | recovery id(1).
	SignatureSize = 65

	// btcec compact signatures start with 27 + recovery id, plus 4 for compressed keys.
	compactHeaderCompressed = 27 + 4
)

type signerOption struct {
	fs   afero.Fs
	priv []byte
	file string
	save bool
}

// SignerOptionFunc modifies Secp256k1Signer.
type SignerOptionFunc func(*signerOption) error

// WithFs sets filesystem used by FromFile and ToFile. Defaults to the OS filesystem.
func WithFs(fs afero.Fs) SignerOptionFunc {
	return func(opt *signerOption) error {
		opt.fs = fs
		return nil
	}
}

// WithPrivateKey sets the private key used by the signer.
func WithPrivateKey(priv []byte) SignerOptionFunc {
	return func(opt *signerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithPrivateKey: private key already set")
		}
		if len(priv) != PrivateKeySize {
			return fmt.Errorf("invalid key length %d", len(priv))
		}
		opt.priv = priv
		return nil
	}
}

// WithKeyFromRand generates the private key using the provided randomness source.
func WithKeyFromRand(rand io.Reader) SignerOptionFunc {
	return func(opt *signerOption) error {
		if opt.priv != nil {
			return errors.New("invalid option WithKeyFromRand: private key already set")
		}
		priv := make([]byte, PrivateKeySize)
		if _, err := io.ReadFull(rand, priv); err != nil {
			return fmt.Errorf("could not generate key: %w", err)
		}
		opt.priv = priv
		return nil
	}
}

// FromFile loads hex encoded private key from a file.
func FromFile(path string) SignerOptionFunc {
	return func(opt *signerOption) error {
		if opt.file != "" {
			return errors.New("invalid option FromFile: file already set")
		}
		opt.file = path
		return nil
	}
}

// ToFile writes generated private key to a file. The file must not exist.
func ToFile(path string) SignerOptionFunc {
	return func(opt *signerOption) error {
		if opt.file != "" {
			return errors.New("invalid option ToFile: file already set")
		}
		opt.file = path
		opt.save = true
		return nil
	}
}

func (opt *signerOption) load() error {
	data, err := afero.ReadFile(opt.fs, opt.file)
	if err != nil {
		return fmt.Errorf("failed to open key file at %s: %w", opt.file, err)
	}
	if n := hex.DecodedLen(len(data)); n != PrivateKeySize {
		return fmt.Errorf("invalid key size %d/%d for %s", n, PrivateKeySize, filepath.Base(opt.file))
	}
	priv := make([]byte, PrivateKeySize)
	if _, err := hex.Decode(priv, data); err != nil {
		return fmt.Errorf("decoding private key in %s: %w", filepath.Base(opt.file), err)
	}
	opt.priv = priv
	return nil
}

func (opt *signerOption) store() error {
	_, err := opt.fs.Stat(opt.file)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("stat key file %s: %w", filepath.Base(opt.file), err)
	default:
		return fmt.Errorf("save key file %s: %w", filepath.Base(opt.file), fs.ErrExist)
	}
	if err := afero.WriteFile(opt.fs, opt.file, []byte(hex.EncodeToString(opt.priv)), 0o600); err != nil {
		return fmt.Errorf("failed to write key file: %w", err)
	}
	return nil
}

// Secp256k1Signer produces recoverable secp256k1 signatures over 32-byte digests.
type Secp256k1Signer struct {
	priv *btcec.PrivateKey
}

// NewSecp256k1Signer returns a signer with the key from options, or a random key.
func NewSecp256k1Signer(opts ...SignerOptionFunc) (*Secp256k1Signer, error) {
	cfg := &signerOption{fs: afero.NewOsFs()}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	if cfg.file != "" && !cfg.save {
		if cfg.priv != nil {
			return nil, errors.New("invalid option FromFile: private key already set")
		}
		if err := cfg.load(); err != nil {
			return nil, err
		}
	}
	var priv *btcec.PrivateKey
	if cfg.priv == nil {
		generated, err := btcec.NewPrivateKey()
		if err != nil {
			return nil, fmt.Errorf("could not generate key: %w", err)
		}
		priv = generated
		cfg.priv = priv.Serialize()
	} else {
		priv, _ = btcec.PrivKeyFromBytes(cfg.priv)
		if priv.Key.IsZero() {
			return nil, errors.New("private key is zero")
		}
	}
	if cfg.save {
		if err := cfg.store(); err != nil {
			return nil, err
		}
	}
	return &Secp256k1Signer{priv: priv}, nil
}

// Sign digest. Signature is r | s | recovery id.
func (s *Secp256k1Signer) Sign(digest types.Hash32) []byte {
	compact := ecdsa.SignCompact(s.priv, digest[:], true)
	sig := make([]byte, SignatureSize)
	copy(sig, compact[1:])
	sig[SignatureSize-1] = compact[0] - compactHeaderCompressed
	return sig
}

// PrivateKey returns serialized private key.
func (s *Secp256k1Signer) PrivateKey() []byte {
	return s.priv.Serialize()
}

// PublicKey returns compressed public key.
func (s *Secp256k1Signer) PublicKey() []byte {
	return s.priv.PubKey().SerializeCompressed()
}

// Identity returns blake160 fingerprint of the public key.
func (s *Secp256k1Signer) Identity() types.Identity {
	return types.Identity{
		Flag:    types.IdentitySecp256k1,
		Content: hash.Blake160(s.PublicKey()),
	}
}
