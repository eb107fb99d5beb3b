package checkpoint

import (
	"fmt"

	"go.uber.org/zap"
	"lukechampine.com/uint128"

	"github.com/spacemeshos/go-checkpointvm/vm/core"
)

// New creates checkpoint script instance for the args.
func New(args *Args) *Checkpoint {
	return &Checkpoint{Args: *args}
}

// Checkpoint type script instance.
type Checkpoint struct {
	Args Args
}

// Verify checks that the transaction is a valid transition of the checkpoint cell.
func (c *Checkpoint) Verify(ctx *core.Context) error {
	input, err := locateRecord(ctx, c.Args.TypeIDHash, core.SourceInput)
	if err != nil {
		return err
	}
	output, err := locateRecord(ctx, c.Args.TypeIDHash, core.SourceOutput)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("located checkpoint cells",
		zap.Uint64("input_capacity", input.Capacity),
		zap.Object("input", input.Record),
		zap.Uint64("output_capacity", output.Capacity),
		zap.Object("output", output.Record),
	)
	if err := checkInvariants(input, output); err != nil {
		return err
	}
	witness, err := ctx.LoadWitnessArgs(0, core.SourceGroupInput)
	if err != nil {
		return err
	}
	transition, err := selectTransition(witness)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("selected transition", zap.Stringer("mode", transition))
	switch tr := transition.(type) {
	case Administrative:
		return c.verifyAdministrative(ctx, tr, input.Record)
	case PeriodicUpdate:
		return verifyPeriodicUpdate(ctx, tr, input.Record, output.Record)
	default:
		panic(fmt.Sprintf("unknown transition %T", transition))
	}
}

// checkInvariants requires capacity and configuration to be the same on both sides.
func checkInvariants(input, output *recordCell) error {
	if input.Capacity != output.Capacity {
		return fmt.Errorf("%w: input %d, output %d",
			core.ErrCheckpointCapacityMismatch, input.Capacity, output.Capacity)
	}
	in, out := input.Record, output.Record
	for _, field := range []struct {
		name  string
		equal bool
	}{
		{"version", in.Version == out.Version},
		{"period_interval", in.PeriodInterval == out.PeriodInterval},
		{"era_period", in.EraPeriod == out.EraPeriod},
		{"base_reward", in.BaseReward.Equals(out.BaseReward)},
		{"half_period", in.HalfPeriod == out.HalfPeriod},
		{"sudt_type_hash", in.SudtTypeHash == out.SudtTypeHash},
		{"stake_type_hash", in.StakeTypeHash == out.StakeTypeHash},
		{"withdrawal_lock_code_hash", in.WithdrawalLockCodeHash == out.WithdrawalLockCodeHash},
	} {
		if !field.equal {
			return fmt.Errorf("%w: %s changed", core.ErrCheckpointDataMismatch, field.name)
		}
	}
	return nil
}

// balances sums token amounts on both sides of the transaction.
func balances(ctx *core.Context, sudt core.Hash32) (in, out uint128.Uint128, err error) {
	in, err = sumTokens(ctx, sudt, core.SourceInput)
	if err != nil {
		return in, out, err
	}
	out, err = sumTokens(ctx, sudt, core.SourceOutput)
	if err != nil {
		return in, out, err
	}
	ctx.Logger.Debug("token balances",
		zap.Stringer("input", in),
		zap.Stringer("output", out),
	)
	return in, out, nil
}

// verifyAdministrative checks admin signature. Admin is allowed to burn tokens but not to mint them.
func (c *Checkpoint) verifyAdministrative(ctx *core.Context, tr Administrative, input *Record) error {
	digest, err := core.SigningDigest(ctx)
	if err != nil {
		return err
	}
	valid, err := ctx.VerifySignature(tr.Signature, c.Args.AdminIdentity, digest)
	if err != nil {
		return err
	}
	if !valid {
		return fmt.Errorf("%w: admin %s", core.ErrSignatureMismatch, c.Args.AdminIdentity)
	}
	in, out, err := balances(ctx, input.SudtTypeHash)
	if err != nil {
		return err
	}
	if out.Cmp(in) > 0 {
		return fmt.Errorf("%w: admin can't mint, input %s, output %s", core.ErrATAmountMismatch, in, out)
	}
	return nil
}

// Reward computes amount minted for the period: base reward halved once every half period.
func Reward(baseReward uint128.Uint128, period, halfPeriod uint64) (uint128.Uint128, error) {
	if halfPeriod == 0 {
		return uint128.Zero, fmt.Errorf("%w: half period is zero", core.ErrCheckpointData)
	}
	halvings := period / halfPeriod
	if halvings >= 128 {
		return uint128.Zero, nil
	}
	return baseReward.Rsh(uint(halvings)), nil
}

// verifyPeriodicUpdate checks that exactly the period reward was minted.
func verifyPeriodicUpdate(ctx *core.Context, tr PeriodicUpdate, input, output *Record) error {
	if len(tr.Proof) == 0 {
		return fmt.Errorf("%w: lock is empty", core.ErrWitnessLock)
	}
	if input.State != output.State {
		return fmt.Errorf("%w: state changed", core.ErrCheckpointDataMismatch)
	}
	if input.UnlockPeriod != output.UnlockPeriod {
		return fmt.Errorf("%w: unlock_period changed", core.ErrCheckpointDataMismatch)
	}
	reward, err := Reward(input.BaseReward, input.Period, input.HalfPeriod)
	if err != nil {
		return err
	}
	in, out, err := balances(ctx, input.SudtTypeHash)
	if err != nil {
		return err
	}
	if out.Cmp(in) < 0 || !out.Sub(in).Equals(reward) {
		return fmt.Errorf("%w: expected reward %s, input %s, output %s",
			core.ErrATAmountMismatch, reward, in, out)
	}
	return nil
}
