package types

import (
	"encoding/hex"
	"strings"
)

// HexBytes is a byte slice that marshals to 0x prefixed hex in text formats.
// Cell data and witnesses in json fixtures use it.
type HexBytes []byte

// DecodeHex decodes hex string with optional 0x prefix.
func DecodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}

// MarshalText implements encoding.TextMarshaler.
func (b HexBytes) MarshalText() ([]byte, error) {
	return []byte("0x" + hex.EncodeToString(b)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *HexBytes) UnmarshalText(input []byte) error {
	raw, err := DecodeHex(string(input))
	if err != nil {
		return err
	}
	*b = raw
	return nil
}

// String returns 0x prefixed hex.
func (b HexBytes) String() string {
	return "0x" + hex.EncodeToString(b)
}
