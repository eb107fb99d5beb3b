package signing

import (
	"bytes"
	"encoding/hex"
	"io/fs"
	"math/rand"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/hash"
)

func TestSignVerify(t *testing.T) {
	signer, err := NewSecp256k1Signer(WithKeyFromRand(rand.New(rand.NewSource(1001))))
	require.NoError(t, err)
	verifier, err := NewSecp256k1Verifier()
	require.NoError(t, err)

	digest := hash.Sum([]byte("checkpoint"))
	sig := signer.Sign(digest)
	require.Len(t, sig, SignatureSize)
	require.LessOrEqual(t, sig[SignatureSize-1], byte(3))
	require.True(t, verifier.Verify(sig, signer.Identity(), digest))
	// cached
	require.True(t, verifier.Verify(sig, signer.Identity(), digest))

	t.Run("other digest", func(t *testing.T) {
		require.False(t, verifier.Verify(sig, signer.Identity(), hash.Sum([]byte("other"))))
	})
	t.Run("other identity", func(t *testing.T) {
		other := signer.Identity()
		other.Content[0] ^= 1
		require.False(t, verifier.Verify(sig, other, digest))
	})
	t.Run("unknown flag", func(t *testing.T) {
		id := signer.Identity()
		id.Flag = 1
		require.False(t, verifier.Verify(sig, id, digest))
	})
	t.Run("short signature", func(t *testing.T) {
		require.False(t, verifier.Verify(sig[:64], signer.Identity(), digest))
		require.False(t, verifier.Verify(nil, signer.Identity(), digest))
	})
	t.Run("bad recovery id", func(t *testing.T) {
		bad := bytes.Clone(sig)
		bad[SignatureSize-1] = 4
		require.False(t, verifier.Verify(bad, signer.Identity(), digest))
	})
	t.Run("corrupted", func(t *testing.T) {
		bad := bytes.Clone(sig)
		bad[10] ^= 0xff
		require.False(t, verifier.Verify(bad, signer.Identity(), digest))
	})
}

func TestVerifierWithoutCache(t *testing.T) {
	signer, err := NewSecp256k1Signer()
	require.NoError(t, err)
	verifier, err := NewSecp256k1Verifier(WithCacheSize(0))
	require.NoError(t, err)
	digest := types.Hash32{1, 2, 3}
	require.True(t, verifier.Verify(signer.Sign(digest), signer.Identity(), digest))

	_, err = NewSecp256k1Verifier(WithCacheSize(-1))
	require.Error(t, err)
}

func TestIdentity(t *testing.T) {
	signer, err := NewSecp256k1Signer()
	require.NoError(t, err)
	pub := signer.PublicKey()
	require.Len(t, pub, PublicKeySize)
	id := signer.Identity()
	require.Equal(t, types.IdentitySecp256k1, id.Flag)
	require.Equal(t, hash.Blake160(pub), id.Content)
}

func TestSignerOptions(t *testing.T) {
	t.Run("private key", func(t *testing.T) {
		signer, err := NewSecp256k1Signer()
		require.NoError(t, err)
		restored, err := NewSecp256k1Signer(WithPrivateKey(signer.PrivateKey()))
		require.NoError(t, err)
		require.Equal(t, signer.Identity(), restored.Identity())
	})
	t.Run("invalid length", func(t *testing.T) {
		_, err := NewSecp256k1Signer(WithPrivateKey(make([]byte, 31)))
		require.Error(t, err)
	})
	t.Run("zero key", func(t *testing.T) {
		_, err := NewSecp256k1Signer(WithPrivateKey(make([]byte, PrivateKeySize)))
		require.Error(t, err)
	})
	t.Run("key twice", func(t *testing.T) {
		_, err := NewSecp256k1Signer(
			WithPrivateKey(bytes.Repeat([]byte{1}, PrivateKeySize)),
			WithKeyFromRand(rand.New(rand.NewSource(1))),
		)
		require.Error(t, err)
	})
	t.Run("deterministic from rand", func(t *testing.T) {
		first, err := NewSecp256k1Signer(WithKeyFromRand(rand.New(rand.NewSource(7))))
		require.NoError(t, err)
		second, err := NewSecp256k1Signer(WithKeyFromRand(rand.New(rand.NewSource(7))))
		require.NoError(t, err)
		require.Equal(t, first.PrivateKey(), second.PrivateKey())
	})
}

func TestKeyFile(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		memfs := afero.NewMemMapFs()
		signer, err := NewSecp256k1Signer(WithFs(memfs), ToFile("/keys/admin.key"))
		require.NoError(t, err)

		data, err := afero.ReadFile(memfs, "/keys/admin.key")
		require.NoError(t, err)
		require.Equal(t, hex.EncodeToString(signer.PrivateKey()), string(data))

		loaded, err := NewSecp256k1Signer(WithFs(memfs), FromFile("/keys/admin.key"))
		require.NoError(t, err)
		require.Equal(t, signer.Identity(), loaded.Identity())
	})
	t.Run("refuses to overwrite", func(t *testing.T) {
		memfs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(memfs, "admin.key", []byte("x"), 0o600))
		_, err := NewSecp256k1Signer(WithFs(memfs), ToFile("admin.key"))
		require.ErrorIs(t, err, fs.ErrExist)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := NewSecp256k1Signer(WithFs(afero.NewMemMapFs()), FromFile("missing.key"))
		require.ErrorIs(t, err, fs.ErrNotExist)
	})
	t.Run("invalid size", func(t *testing.T) {
		memfs := afero.NewMemMapFs()
		require.NoError(t, afero.WriteFile(memfs, "admin.key", []byte("abcd"), 0o600))
		_, err := NewSecp256k1Signer(WithFs(memfs), FromFile("admin.key"))
		require.ErrorContains(t, err, "invalid key size")
	})
}
