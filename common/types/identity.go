package types

import (
	"fmt"

	"github.com/spacemeshos/go-scale"
	"go.uber.org/zap/zapcore"
)

// IdentitySize is the size of encoded Identity.
const IdentitySize = 1 + Hash20Length

// IdentityFlag tells which scheme produced the fingerprint in Identity.
type IdentityFlag uint8

// IdentitySecp256k1 is blake160 of a compressed secp256k1 public key.
const IdentitySecp256k1 IdentityFlag = 0

// String returns the name of the identity scheme.
func (f IdentityFlag) String() string {
	switch f {
	case IdentitySecp256k1:
		return "secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(f))
	}
}

// Identity is a public key fingerprint tagged with the scheme that produced it.
type Identity struct {
	Flag    IdentityFlag
	Content Hash20
}

// String implements fmt.Stringer.
func (id Identity) String() string {
	return fmt.Sprintf("%s:%s", id.Flag, id.Content)
}

// MarshalLogObject implements logging interface.
func (id *Identity) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddString("flag", id.Flag.String())
	encoder.AddString("content", id.Content.Hex())
	return nil
}

// EncodeScale implements scale codec interface.
func (id *Identity) EncodeScale(e *scale.Encoder) (int, error) {
	total := 0
	n, err := scale.EncodeByte(e, byte(id.Flag))
	if err != nil {
		return total, err
	}
	total += n
	n, err = id.Content.EncodeScale(e)
	if err != nil {
		return total, err
	}
	total += n
	return total, nil
}

// DecodeScale implements scale codec interface.
func (id *Identity) DecodeScale(d *scale.Decoder) (int, error) {
	total := 0
	flag, n, err := scale.DecodeByte(d)
	if err != nil {
		return total, err
	}
	total += n
	id.Flag = IdentityFlag(flag)
	n, err = id.Content.DecodeScale(d)
	if err != nil {
		return total, err
	}
	total += n
	return total, nil
}
