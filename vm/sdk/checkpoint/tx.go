package checkpoint

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
	"lukechampine.com/uint128"

	"github.com/spacemeshos/go-checkpointvm/codec"
	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/signing"
	"github.com/spacemeshos/go-checkpointvm/vm/core"
	"github.com/spacemeshos/go-checkpointvm/vm/ledger"
	"github.com/spacemeshos/go-checkpointvm/vm/sdk"
	"github.com/spacemeshos/go-checkpointvm/vm/templates/checkpoint"
)

// Args encodes script args.
func Args(admin types.Identity, typeID types.Hash32) []byte {
	return codec.MustEncode(&checkpoint.Args{AdminIdentity: admin, TypeIDHash: typeID})
}

// Record encodes checkpoint cell data.
func Record(rec *checkpoint.Record) []byte {
	return codec.MustEncode(rec)
}

// TokenData encodes token cell data with the amount.
func TokenData(amount uint128.Uint128) []byte {
	buf := make([]byte, checkpoint.AmountSize)
	amount.PutBytes(buf)
	return buf
}

// AdminWitness returns administrative witness with a placeholder lock of the signature size.
func AdminWitness() []byte {
	return codec.MustEncode(&core.WitnessArgs{
		Lock:      fn.Some(make([]byte, signing.SignatureSize)),
		InputType: fn.Some([]byte{checkpoint.ModeAdministrative}),
	})
}

// PeriodicWitness returns periodic update witness.
func PeriodicWitness(opts ...sdk.Opt) []byte {
	options := sdk.Defaults()
	for _, opt := range opts {
		opt(options)
	}
	return codec.MustEncode(&core.WitnessArgs{
		Lock:      fn.Some(options.Proof),
		InputType: fn.Some([]byte{options.PeriodicMode}),
	})
}

// SignAdmin signs the transaction and writes the signature into the lock of the
// first group input witness. Witness is set to AdminWitness if it is absent.
// Transaction must be sealed before signing.
func SignAdmin(tx *ledger.Transaction, signer *signing.Secp256k1Signer, opts ...sdk.Opt) error {
	options := sdk.Defaults()
	for _, opt := range opts {
		opt(options)
	}
	if len(tx.GroupInputs) == 0 {
		return fmt.Errorf("%w: transaction has no group inputs", core.ErrIndexOutOfBound)
	}
	index := tx.GroupInputs[0]
	if index >= len(tx.Witnesses) || len(tx.Witnesses[index]) == 0 {
		tx.SetWitness(index, AdminWitness())
	}
	var witness core.WitnessArgs
	if err := codec.DecodeExact(tx.Witnesses[index], &witness); err != nil {
		return fmt.Errorf("%w: %s", core.ErrEncoding, err.Error())
	}
	witness.Lock = fn.Some(make([]byte, signing.SignatureSize))
	tx.Witnesses[index] = codec.MustEncode(&witness)

	digest, err := core.SigningDigest(core.NewContext(tx, nil, options.MaxCycles, nil))
	if err != nil {
		return fmt.Errorf("signing digest: %w", err)
	}
	witness.Lock = fn.Some(signer.Sign(digest))
	tx.Witnesses[index] = codec.MustEncode(&witness)
	return nil
}
