package types

import (
	"encoding/hex"
	"fmt"

	"github.com/spacemeshos/go-scale"
)

const (
	// Hash32Length is 32, the expected length of the hash.
	Hash32Length = 32
	// Hash20Length is 20, the length of a blake160 fingerprint.
	Hash20Length = 20
)

// Hash32 represents the 32-byte blake2b hash of arbitrary data.
// Type hashes, code hashes and transaction hashes are all Hash32.
type Hash32 [Hash32Length]byte

// Hash20 represents the 20-byte prefix of a blake2b hash (blake160).
type Hash20 [Hash20Length]byte

// BytesToHash sets b to hash.
// If b is larger than len(h), b will be cropped from the left.
func BytesToHash(b []byte) Hash32 {
	var h Hash32
	h.SetBytes(b)
	return h
}

// HexToHash32 decodes hex string (with or without 0x prefix) into a hash.
func HexToHash32(s string) (Hash32, error) {
	var h Hash32
	if err := h.UnmarshalText([]byte(s)); err != nil {
		return h, err
	}
	return h, nil
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash32) Bytes() []byte { return h[:] }

// Hex converts a hash to a 0x prefixed hex string.
func (h Hash32) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements the stringer interface.
func (h Hash32) String() string {
	return h.Hex()
}

// ShortString returns the first 5 bytes of the hash in hex, for logging purposes.
func (h Hash32) ShortString() string {
	return hex.EncodeToString(h[:5])
}

// Empty returns true if all bytes are zero.
func (h Hash32) Empty() bool {
	return h == Hash32{}
}

// SetBytes sets the hash to the value of b.
// If b is larger than len(h), b will be cropped from the left.
func (h *Hash32) SetBytes(b []byte) {
	if len(b) > len(h) {
		b = b[len(b)-Hash32Length:]
	}
	copy(h[Hash32Length-len(b):], b)
}

// ToHash20 returns a Hash20 made of the 20-byte prefix of this Hash32.
func (h Hash32) ToHash20() (h20 Hash20) {
	copy(h20[:], h[:])
	return
}

// MarshalText returns the hex representation of h.
func (h Hash32) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash32) UnmarshalText(input []byte) error {
	return unmarshalFixedHex("Hash32", input, h[:])
}

// EncodeScale implements scale codec interface.
func (h *Hash32) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash32) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}

// Bytes gets the byte representation of the underlying hash.
func (h Hash20) Bytes() []byte { return h[:] }

// Hex converts a hash to a 0x prefixed hex string.
func (h Hash20) Hex() string { return "0x" + hex.EncodeToString(h[:]) }

// String implements the stringer interface.
func (h Hash20) String() string {
	return h.Hex()
}

// MarshalText returns the hex representation of h.
func (h Hash20) MarshalText() ([]byte, error) {
	return []byte(h.Hex()), nil
}

// UnmarshalText parses a hash in hex syntax.
func (h *Hash20) UnmarshalText(input []byte) error {
	return unmarshalFixedHex("Hash20", input, h[:])
}

// EncodeScale implements scale codec interface.
func (h *Hash20) EncodeScale(e *scale.Encoder) (int, error) {
	return scale.EncodeByteArray(e, h[:])
}

// DecodeScale implements scale codec interface.
func (h *Hash20) DecodeScale(d *scale.Decoder) (int, error) {
	return scale.DecodeByteArray(d, h[:])
}

func unmarshalFixedHex(typ string, input, out []byte) error {
	raw, err := DecodeHex(string(input))
	if err != nil {
		return fmt.Errorf("%s: %w", typ, err)
	}
	if len(raw) != len(out) {
		return fmt.Errorf("%s: hex string has length %d, want %d", typ, len(raw), len(out))
	}
	copy(out, raw)
	return nil
}
