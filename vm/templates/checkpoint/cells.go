package checkpoint

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
	"lukechampine.com/uint128"

	"github.com/spacemeshos/go-checkpointvm/vm/core"
)

// recordCell is the checkpoint cell found on one side of the transaction.
type recordCell struct {
	Capacity uint64
	Record   *Record
}

func matches(typeHash fn.Option[core.Hash32], target core.Hash32) bool {
	return fn.MapOptionZ(typeHash, func(hash core.Hash32) bool {
		return hash == target
	})
}

// locateRecord finds the only cell of the source with the target type hash.
func locateRecord(ctx *core.Context, target core.Hash32, src core.Source) (*recordCell, error) {
	count, err := ctx.Count(src)
	if err != nil {
		return nil, err
	}
	found := -1
	for i := 0; i < count; i++ {
		typeHash, err := ctx.LoadTypeHash(i, src)
		if err != nil {
			return nil, err
		}
		if !matches(typeHash, target) {
			continue
		}
		if found >= 0 {
			return nil, fmt.Errorf("%w: %s cells %d and %d share type hash %s",
				core.ErrCheckpointCell, src, found, i, target.ShortString())
		}
		found = i
	}
	if found < 0 {
		return nil, fmt.Errorf("%w: no %s cell with type hash %s", core.ErrCheckpointCell, src, target.ShortString())
	}
	capacity, err := ctx.LoadCapacity(found, src)
	if err != nil {
		return nil, err
	}
	data, err := ctx.LoadData(found, src)
	if err != nil {
		return nil, err
	}
	if err := ctx.Consume(core.SizeGas(core.DECODE, len(data))); err != nil {
		return nil, err
	}
	rec, err := DecodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("%s cell %d: %w", src, found, err)
	}
	return &recordCell{Capacity: capacity, Record: rec}, nil
}

// sumTokens adds up amounts of every cell of the source with the target type hash.
func sumTokens(ctx *core.Context, target core.Hash32, src core.Source) (uint128.Uint128, error) {
	count, err := ctx.Count(src)
	if err != nil {
		return uint128.Zero, err
	}
	total := uint128.Zero
	for i := 0; i < count; i++ {
		typeHash, err := ctx.LoadTypeHash(i, src)
		if err != nil {
			return uint128.Zero, err
		}
		if !matches(typeHash, target) {
			continue
		}
		data, err := ctx.LoadData(i, src)
		if err != nil {
			return uint128.Zero, err
		}
		if len(data) < AmountSize {
			return uint128.Zero, fmt.Errorf("%w: %s cell %d has %d bytes", core.ErrBadSudtDataFormat, src, i, len(data))
		}
		amount := uint128.FromBytes(data[:AmountSize])
		sum := total.AddWrap(amount)
		if sum.Cmp(total) < 0 {
			return uint128.Zero, fmt.Errorf("%w: %s cell %d", core.ErrAmountOverflow, src, i)
		}
		total = sum
	}
	return total, nil
}
