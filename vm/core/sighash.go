package core

import (
	"errors"
	"fmt"
	"hash"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/spacemeshos/go-scale"

	"github.com/spacemeshos/go-checkpointvm/codec"
	hasher "github.com/spacemeshos/go-checkpointvm/hash"
)

// SigningDigest computes the message that is signed by the owner of the group.
//
//	blake2b(tx_hash | len | first group witness with zeroed lock | len | other group witnesses | len | extra witnesses)
//
// Every witness is prefixed by its length encoded as u64 le. Extra witnesses
// are those that have no matching input.
func SigningDigest(ctx *Context) (Hash32, error) {
	first, err := ctx.LoadWitnessArgs(0, SourceGroupInput)
	if err != nil {
		return Hash32{}, err
	}
	zeroed := *first
	first.Lock.WhenSome(func(lock []byte) {
		zeroed.Lock = fn.Some(make([]byte, len(lock)))
	})
	buf, err := codec.Encode(&zeroed)
	if err != nil {
		return Hash32{}, fmt.Errorf("%w: encode witness: %s", ErrEncoding, err.Error())
	}

	hh := hasher.GetHasher()
	defer hasher.PutHasher(hh)
	txHash := ctx.Host.TxHash()
	hh.Write(txHash[:])
	if err := writeWitness(ctx, hh, buf); err != nil {
		return Hash32{}, err
	}
	for i := 1; ; i++ {
		witness, err := ctx.LoadWitness(i, SourceGroupInput)
		if errors.Is(err, ErrIndexOutOfBound) {
			break
		} else if err != nil {
			return Hash32{}, err
		}
		if err := writeWitness(ctx, hh, witness); err != nil {
			return Hash32{}, err
		}
	}
	inputs, err := ctx.Count(SourceInput)
	if err != nil {
		return Hash32{}, err
	}
	for i := inputs; i < ctx.Host.WitnessCount(); i++ {
		witness, err := ctx.LoadWitness(i, SourceInput)
		if err != nil {
			return Hash32{}, err
		}
		if err := writeWitness(ctx, hh, witness); err != nil {
			return Hash32{}, err
		}
	}
	var digest Hash32
	hh.Sum(digest[:0])
	return digest, nil
}

func writeWitness(ctx *Context, hh hash.Hash, witness []byte) error {
	if err := ctx.Consume(SizeGas(HASH, 8+len(witness))); err != nil {
		return err
	}
	if _, err := scale.EncodeUint64(scale.NewEncoder(hh), uint64(len(witness))); err != nil {
		return err
	}
	hh.Write(witness)
	return nil
}
