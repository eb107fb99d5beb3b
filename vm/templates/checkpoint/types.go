package checkpoint

import (
	"fmt"

	"go.uber.org/zap/zapcore"
	"lukechampine.com/uint128"

	"github.com/spacemeshos/go-checkpointvm/codec"
	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/vm/core"
)

const (
	// RecordSize is the size of the encoded Record.
	RecordSize = 182
	// ArgsSize is the size of the encoded Args.
	ArgsSize = types.IdentitySize + types.Hash32Length
	// AmountSize is the size of the token amount at the start of token cell data.
	AmountSize = 16
)

// Record is a state of the checkpoint cell.
//
// Version, PeriodInterval, EraPeriod, BaseReward, HalfPeriod and the three
// type hashes are configuration and never change after the cell is created.
type Record struct {
	Version                uint8
	State                  uint8
	Period                 uint64
	Era                    uint64
	BlockHash              types.Hash32
	PeriodInterval         uint32
	EraPeriod              uint32
	UnlockPeriod           uint32
	BaseReward             uint128.Uint128
	HalfPeriod             uint64
	SudtTypeHash           types.Hash32
	StakeTypeHash          types.Hash32
	WithdrawalLockCodeHash types.Hash32
}

// DecodeRecord decodes cell data into a Record. Data must be exactly RecordSize long.
func DecodeRecord(data []byte) (*Record, error) {
	if len(data) != RecordSize {
		return nil, fmt.Errorf("%w: record size %d, expected %d", core.ErrEncoding, len(data), RecordSize)
	}
	var rec Record
	if err := codec.DecodeExact(data, &rec); err != nil {
		return nil, fmt.Errorf("%w: record: %s", core.ErrEncoding, err.Error())
	}
	return &rec, nil
}

// MarshalLogObject implements logging interface.
func (r *Record) MarshalLogObject(encoder zapcore.ObjectEncoder) error {
	encoder.AddUint8("version", r.Version)
	encoder.AddUint8("state", r.State)
	encoder.AddUint64("period", r.Period)
	encoder.AddUint64("era", r.Era)
	encoder.AddString("block_hash", r.BlockHash.ShortString())
	encoder.AddUint32("period_interval", r.PeriodInterval)
	encoder.AddUint32("era_period", r.EraPeriod)
	encoder.AddUint32("unlock_period", r.UnlockPeriod)
	encoder.AddString("base_reward", r.BaseReward.String())
	encoder.AddUint64("half_period", r.HalfPeriod)
	encoder.AddString("sudt_type_hash", r.SudtTypeHash.ShortString())
	return nil
}

// Args are the script args of the checkpoint type script.
type Args struct {
	// AdminIdentity is allowed to sign administrative transitions.
	AdminIdentity types.Identity
	// TypeIDHash is the type hash of the checkpoint cell lineage.
	TypeIDHash types.Hash32
}

// DecodeArgs decodes script args. Args must be exactly ArgsSize long.
func DecodeArgs(raw []byte) (*Args, error) {
	if len(raw) != ArgsSize {
		return nil, fmt.Errorf("%w: args size %d, expected %d", core.ErrEncoding, len(raw), ArgsSize)
	}
	var args Args
	if err := codec.DecodeExact(raw, &args); err != nil {
		return nil, fmt.Errorf("%w: args: %s", core.ErrEncoding, err.Error())
	}
	return &args, nil
}
