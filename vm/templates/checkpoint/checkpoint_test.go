package checkpoint_test

import (
	"math/rand"
	"testing"

	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
	"lukechampine.com/uint128"

	"github.com/spacemeshos/go-checkpointvm/codec"
	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/signing"
	"github.com/spacemeshos/go-checkpointvm/vm/core"
	"github.com/spacemeshos/go-checkpointvm/vm/core/mocks"
	"github.com/spacemeshos/go-checkpointvm/vm/ledger"
	"github.com/spacemeshos/go-checkpointvm/vm/registry"
	"github.com/spacemeshos/go-checkpointvm/vm/sdk"
	checkpointsdk "github.com/spacemeshos/go-checkpointvm/vm/sdk/checkpoint"
	"github.com/spacemeshos/go-checkpointvm/vm/templates/checkpoint"
)

var (
	typeID = types.Hash32{0xc1}
	sudt   = types.Hash32{0x5d}
)

func baseRecord() checkpoint.Record {
	return checkpoint.Record{
		Version:                1,
		State:                  1,
		Period:                 0,
		Era:                    0,
		BlockHash:              types.Hash32{0xbb},
		PeriodInterval:         100,
		EraPeriod:              10,
		UnlockPeriod:           2,
		BaseReward:             uint128.From64(100),
		HalfPeriod:             1,
		SudtTypeHash:           sudt,
		StakeTypeHash:          types.Hash32{0x57},
		WithdrawalLockCodeHash: types.Hash32{0x3d},
	}
}

func amounts(values ...uint64) []uint128.Uint128 {
	rst := make([]uint128.Uint128, 0, len(values))
	for _, v := range values {
		rst = append(rst, uint128.From64(v))
	}
	return rst
}

type tester struct {
	testing.TB

	admin *signing.Secp256k1Signer

	inputCapacity, outputCapacity uint64
	input, output                 checkpoint.Record
	inputTokens, outputTokens     []uint128.Uint128

	inputRecords, outputRecords int

	mutate func(*ledger.Transaction)
}

func newTester(tb testing.TB) *tester {
	admin, err := signing.NewSecp256k1Signer(signing.WithKeyFromRand(rand.New(rand.NewSource(42))))
	require.NoError(tb, err)
	return &tester{
		TB:             tb,
		admin:          admin,
		inputCapacity:  1000,
		outputCapacity: 1000,
		input:          baseRecord(),
		output:         baseRecord(),
		inputRecords:   1,
		outputRecords:  1,
	}
}

func (t *tester) withTokens(in, out []uint128.Uint128) *tester {
	t.inputTokens, t.outputTokens = in, out
	return t
}

func (t *tester) withCapacity(in, out uint64) *tester {
	t.inputCapacity, t.outputCapacity = in, out
	return t
}

func (t *tester) withRecords(in, out int) *tester {
	t.inputRecords, t.outputRecords = in, out
	return t
}

func (t *tester) withMutation(f func(*ledger.Transaction)) *tester {
	t.mutate = f
	return t
}

func (t *tester) args() []byte {
	return checkpointsdk.Args(t.admin.Identity(), typeID)
}

func (t *tester) build(witness []byte) *ledger.Transaction {
	tx := &ledger.Transaction{Args: t.args()}
	for i := 0; i < t.inputRecords; i++ {
		tx.AddInput(ledger.Cell{
			Capacity: t.inputCapacity,
			Data:     checkpointsdk.Record(&t.input),
			Type:     fn.Some(typeID),
		}, true)
	}
	for _, amount := range t.inputTokens {
		tx.AddInput(ledger.Cell{Capacity: 142, Data: checkpointsdk.TokenData(amount), Type: fn.Some(sudt)}, false)
	}
	// plain capacity cell without type script
	tx.AddInput(ledger.Cell{Capacity: 10_000}, false)
	for i := 0; i < t.outputRecords; i++ {
		tx.AddOutput(ledger.Cell{
			Capacity: t.outputCapacity,
			Data:     checkpointsdk.Record(&t.output),
			Type:     fn.Some(typeID),
		}, true)
	}
	for _, amount := range t.outputTokens {
		tx.AddOutput(ledger.Cell{Capacity: 142, Data: checkpointsdk.TokenData(amount), Type: fn.Some(sudt)}, false)
	}
	if t.mutate != nil {
		t.mutate(tx)
	}
	require.NoError(t, tx.Seal())
	if witness != nil && len(tx.GroupInputs) > 0 {
		tx.SetWitness(tx.GroupInputs[0], witness)
	}
	return tx
}

func (t *tester) adminTx() *ledger.Transaction {
	tx := t.build(checkpointsdk.AdminWitness())
	require.NoError(t, checkpointsdk.SignAdmin(tx, t.admin))
	return tx
}

func (t *tester) periodicTx(opts ...sdk.Opt) *ledger.Transaction {
	return t.build(checkpointsdk.PeriodicWitness(opts...))
}

func (t *tester) verifier() core.SignatureVerifier {
	verifier, err := signing.NewSecp256k1Verifier()
	require.NoError(t, err)
	return verifier
}

func (t *tester) exec(tx *ledger.Transaction) error {
	return t.execWith(tx, t.verifier(), core.DefaultMaxCycles)
}

func (t *tester) execWith(tx *ledger.Transaction, verifier core.SignatureVerifier, maxCycles uint64) error {
	reg := registry.New()
	checkpoint.Register(reg)
	handler := reg.Get(checkpoint.CodeHash)
	require.NotNil(t, handler)
	return handler.Exec(core.NewContext(tx, verifier, maxCycles, zaptest.NewLogger(t)))
}

func TestScenarios(t *testing.T) {
	t.Run("A admin success", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(2000, 3000), amounts(5000))
		require.NoError(t, tt.exec(tt.adminTx()))
	})
	t.Run("B admin mint rejected", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(2000, 3000), amounts(5001))
		require.ErrorIs(t, tt.exec(tt.adminTx()), core.ErrATAmountMismatch)
	})
	t.Run("C periodic reward success", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(700), amounts(800))
		require.NoError(t, tt.exec(tt.periodicTx()))
	})
	t.Run("D periodic wrong reward", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(700), amounts(750))
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrATAmountMismatch)
	})
	t.Run("E missing output record", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(700), amounts(800)).withRecords(1, 0)
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrCheckpointCell)
	})
	t.Run("F capacity drift", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(700), amounts(800)).withCapacity(1000, 999)
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrCheckpointCapacityMismatch)
	})
}

func TestCardinality(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		in, out int
	}{
		{"no input", 0, 1},
		{"no output", 1, 0},
		{"two inputs", 2, 1},
		{"two outputs", 1, 2},
		{"none", 0, 0},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			tt := newTester(t).withTokens(amounts(700), amounts(800)).withRecords(tc.in, tc.out)
			tx := tt.build(checkpointsdk.PeriodicWitness())
			err := tt.exec(tx)
			require.ErrorIs(t, err, core.ErrCheckpointCell)
			require.Equal(t, int8(5), core.ExitCode(err))
		})
	}
}

func TestImmutableFields(t *testing.T) {
	for _, tc := range []struct {
		desc   string
		change func(*checkpoint.Record)
	}{
		{"version", func(r *checkpoint.Record) { r.Version++ }},
		{"period interval", func(r *checkpoint.Record) { r.PeriodInterval++ }},
		{"era period", func(r *checkpoint.Record) { r.EraPeriod++ }},
		{"base reward", func(r *checkpoint.Record) { r.BaseReward = r.BaseReward.Add64(1) }},
		{"base reward high bits", func(r *checkpoint.Record) { r.BaseReward.Hi = 1 }},
		{"half period", func(r *checkpoint.Record) { r.HalfPeriod++ }},
		{"sudt type hash", func(r *checkpoint.Record) { r.SudtTypeHash[31] = 1 }},
		{"stake type hash", func(r *checkpoint.Record) { r.StakeTypeHash[0] = 0 }},
		{"withdrawal lock code hash", func(r *checkpoint.Record) { r.WithdrawalLockCodeHash[5] = 5 }},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			t.Run("admin", func(t *testing.T) {
				tt := newTester(t).withTokens(amounts(100), amounts(100))
				tc.change(&tt.output)
				require.ErrorIs(t, tt.exec(tt.adminTx()), core.ErrCheckpointDataMismatch)
			})
			t.Run("periodic", func(t *testing.T) {
				tt := newTester(t).withTokens(amounts(100), amounts(200))
				tc.change(&tt.output)
				require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrCheckpointDataMismatch)
			})
		})
	}
}

func TestInvariantsBeforeModeSelection(t *testing.T) {
	tt := newTester(t).withTokens(amounts(100), amounts(100))
	tt.output.Version = 2
	tx := tt.build(codec.MustEncode(&core.WitnessArgs{}))
	require.ErrorIs(t, tt.exec(tx), core.ErrCheckpointDataMismatch)
}

func TestModeSelection(t *testing.T) {
	t.Run("absent input type", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		tx := tt.build(codec.MustEncode(&core.WitnessArgs{Lock: fn.Some([]byte{1})}))
		require.ErrorIs(t, tt.exec(tx), core.ErrBadWitnessInputType)
	})
	t.Run("empty input type", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		tx := tt.build(codec.MustEncode(&core.WitnessArgs{
			Lock:      fn.Some([]byte{1}),
			InputType: fn.Some([]byte{}),
		}))
		require.ErrorIs(t, tt.exec(tx), core.ErrBadWitnessInputType)
	})
	t.Run("missing witness", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		require.ErrorIs(t, tt.exec(tt.build(nil)), core.ErrIndexOutOfBound)
	})
	t.Run("malformed witness", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		require.ErrorIs(t, tt.exec(tt.build([]byte{1, 2, 3, 4})), core.ErrEncoding)
	})
	t.Run("only first byte selects mode", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(100))
		tx := tt.build(codec.MustEncode(&core.WitnessArgs{
			Lock:      fn.Some(make([]byte, signing.SignatureSize)),
			InputType: fn.Some([]byte{0, 1}),
		}))
		require.NoError(t, checkpointsdk.SignAdmin(tx, tt.admin))
		require.NoError(t, tt.exec(tx))
	})
	t.Run("any non zero byte is periodic", func(t *testing.T) {
		for _, mode := range []byte{1, 2, 0x7f, 0xff} {
			tt := newTester(t).withTokens(amounts(100), amounts(200))
			require.NoError(t, tt.exec(tt.periodicTx(sdk.WithPeriodicMode(mode))))
		}
	})
}

func TestModeExclusivity(t *testing.T) {
	t.Run("admin witness with reward balances", func(t *testing.T) {
		// reward would be valid for periodic update, but admin path can't mint
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		require.ErrorIs(t, tt.exec(tt.adminTx()), core.ErrATAmountMismatch)
	})
	t.Run("periodic witness with admin balances", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(100))
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrATAmountMismatch)
	})
	t.Run("periodic does not verify signature", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		verifier := mocks.NewMockSignatureVerifier(gomock.NewController(t))
		require.NoError(t, tt.execWith(tt.periodicTx(), verifier, core.DefaultMaxCycles))
	})
}

func TestAdministrative(t *testing.T) {
	t.Run("equal balance", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(5000), amounts(2500, 2500))
		require.NoError(t, tt.exec(tt.adminTx()))
	})
	t.Run("burn", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(5000), amounts(1))
		require.NoError(t, tt.exec(tt.adminTx()))
	})
	t.Run("burn everything", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(5000), nil)
		require.NoError(t, tt.exec(tt.adminTx()))
	})
	t.Run("mint from nothing", func(t *testing.T) {
		tt := newTester(t).withTokens(nil, amounts(1))
		require.ErrorIs(t, tt.exec(tt.adminTx()), core.ErrATAmountMismatch)
	})
	t.Run("mutable fields are free", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(10), amounts(10))
		tt.output.State = 0
		tt.output.Period = 77
		tt.output.Era = 7
		tt.output.UnlockPeriod = 9
		tt.output.BlockHash = types.Hash32{0xee}
		require.NoError(t, tt.exec(tt.adminTx()))
	})
	t.Run("zero half period", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(10), amounts(10))
		tt.input.HalfPeriod = 0
		tt.output.HalfPeriod = 0
		require.NoError(t, tt.exec(tt.adminTx()))
	})
	t.Run("wrong signer", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(10), amounts(10))
		tx := tt.build(checkpointsdk.AdminWitness())
		other, err := signing.NewSecp256k1Signer()
		require.NoError(t, err)
		require.NoError(t, checkpointsdk.SignAdmin(tx, other))
		err = tt.exec(tx)
		require.ErrorIs(t, err, core.ErrSignatureMismatch)
		require.Equal(t, int8(11), core.ExitCode(err))
	})
	t.Run("placeholder signature", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(10), amounts(10))
		require.ErrorIs(t, tt.exec(tt.build(checkpointsdk.AdminWitness())), core.ErrSignatureMismatch)
	})
	t.Run("absent lock", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(10), amounts(10))
		tx := tt.build(codec.MustEncode(&core.WitnessArgs{InputType: fn.Some([]byte{0})}))
		require.ErrorIs(t, tt.exec(tx), core.ErrSignatureMismatch)
	})
	t.Run("tampered after signing", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(5000), amounts(5000))
		tx := tt.adminTx()
		tx.Outputs[1].Data = checkpointsdk.TokenData(uint128.From64(4000))
		require.NoError(t, tx.Seal())
		require.ErrorIs(t, tt.exec(tx), core.ErrSignatureMismatch)
	})
	t.Run("extra witness is signed", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(5000), amounts(5000))
		tx := tt.build(checkpointsdk.AdminWitness())
		tx.SetWitness(len(tx.Inputs), []byte{1, 2, 3})
		require.NoError(t, checkpointsdk.SignAdmin(tx, tt.admin))
		require.NoError(t, tt.exec(tx))
		tx.Witnesses[len(tx.Inputs)] = []byte{1, 2, 4}
		require.ErrorIs(t, tt.exec(tx), core.ErrSignatureMismatch)
	})
	t.Run("oracle receives admin identity", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(10), amounts(10))
		tx := tt.adminTx()
		verifier := mocks.NewMockSignatureVerifier(gomock.NewController(t))
		verifier.EXPECT().Verify(gomock.Len(signing.SignatureSize), tt.admin.Identity(), gomock.Any()).Return(false)
		require.ErrorIs(t, tt.execWith(tx, verifier, core.DefaultMaxCycles), core.ErrSignatureMismatch)
	})
	t.Run("signature checked before balances", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(10), amounts(11))
		require.ErrorIs(t, tt.exec(tt.build(checkpointsdk.AdminWitness())), core.ErrSignatureMismatch)
	})
}

func TestPeriodicUpdate(t *testing.T) {
	t.Run("absent lock", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		tx := tt.build(codec.MustEncode(&core.WitnessArgs{InputType: fn.Some([]byte{1})}))
		err := tt.exec(tx)
		require.ErrorIs(t, err, core.ErrWitnessLock)
		require.Equal(t, int8(10), core.ExitCode(err))
	})
	t.Run("empty lock", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		require.ErrorIs(t, tt.exec(tt.periodicTx(sdk.WithProof([]byte{}))), core.ErrWitnessLock)
	})
	t.Run("state changed", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		tt.output.State = 2
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrCheckpointDataMismatch)
	})
	t.Run("unlock period changed", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		tt.output.UnlockPeriod++
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrCheckpointDataMismatch)
	})
	t.Run("period era and block hash are unconstrained", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200))
		tt.output.Period = 1
		tt.output.Era = 3
		tt.output.BlockHash = types.Hash32{1, 2, 3}
		require.NoError(t, tt.exec(tt.periodicTx()))
	})
	t.Run("reward uses input period", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(150))
		tt.input.Period = 1
		tt.output.Period = 2
		require.NoError(t, tt.exec(tt.periodicTx()))
	})
	t.Run("decrease", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(0))
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrATAmountMismatch)
	})
	t.Run("no token cells", func(t *testing.T) {
		tt := newTester(t).withTokens(nil, amounts(100))
		require.NoError(t, tt.exec(tt.periodicTx()))
	})
	t.Run("zero reward", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(100))
		tt.input.Period = 200
		tt.output.Period = 200
		require.NoError(t, tt.exec(tt.periodicTx()))
	})
	t.Run("zero half period", func(t *testing.T) {
		for _, out := range []uint64{100, 200, 0} {
			tt := newTester(t).withTokens(amounts(100), amounts(out))
			tt.input.HalfPeriod = 0
			tt.output.HalfPeriod = 0
			err := tt.exec(tt.periodicTx())
			require.ErrorIs(t, err, core.ErrCheckpointData)
			require.Equal(t, int8(13), core.ExitCode(err))
		}
	})
}

func TestBalances(t *testing.T) {
	t.Run("short token data", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200)).withMutation(func(tx *ledger.Transaction) {
			tx.AddOutput(ledger.Cell{Data: make([]byte, 15), Type: fn.Some(sudt)}, false)
		})
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrBadSudtDataFormat)
	})
	t.Run("trailing token data ignored", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(150)).withMutation(func(tx *ledger.Transaction) {
			data := append(checkpointsdk.TokenData(uint128.From64(50)), 0xff, 0xff)
			tx.AddOutput(ledger.Cell{Data: data, Type: fn.Some(sudt)}, false)
		})
		require.NoError(t, tt.exec(tt.periodicTx()))
	})
	t.Run("other tokens ignored", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200)).withMutation(func(tx *ledger.Transaction) {
			tx.AddOutput(ledger.Cell{Data: checkpointsdk.TokenData(uint128.From64(1)), Type: fn.Some(types.Hash32{9})}, false)
			tx.AddOutput(ledger.Cell{Data: checkpointsdk.TokenData(uint128.From64(1))}, false)
		})
		require.NoError(t, tt.exec(tt.periodicTx()))
	})
	t.Run("overflow", func(t *testing.T) {
		tt := newTester(t).withTokens([]uint128.Uint128{uint128.Max, uint128.From64(1)}, amounts(0))
		err := tt.exec(tt.adminTx())
		require.ErrorIs(t, err, core.ErrAmountOverflow)
		require.Equal(t, int8(14), core.ExitCode(err))
	})
	t.Run("large amounts", func(t *testing.T) {
		half := uint128.Max.Rsh(1)
		tt := newTester(t).withTokens([]uint128.Uint128{half, half}, []uint128.Uint128{uint128.Max.Sub64(1)})
		require.NoError(t, tt.exec(tt.adminTx()))
	})
}

func TestMalformedData(t *testing.T) {
	t.Run("record too short", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200)).withMutation(func(tx *ledger.Transaction) {
			tx.Outputs[0].Data = tx.Outputs[0].Data[:checkpoint.RecordSize-1]
		})
		err := tt.exec(tt.periodicTx())
		require.ErrorIs(t, err, core.ErrEncoding)
		require.Equal(t, int8(4), core.ExitCode(err))
	})
	t.Run("record too long", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200)).withMutation(func(tx *ledger.Transaction) {
			tx.Inputs[0].Data = append(tx.Inputs[0].Data, 0)
		})
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrEncoding)
	})
	t.Run("args", func(t *testing.T) {
		tt := newTester(t).withTokens(amounts(100), amounts(200)).withMutation(func(tx *ledger.Transaction) {
			tx.Args = tx.Args[:checkpoint.ArgsSize-1]
		})
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrEncoding)
	})
}

func TestMaxCycles(t *testing.T) {
	tt := newTester(t).withTokens(amounts(2000, 3000), amounts(5000))
	tx := tt.adminTx()
	err := tt.execWith(tx, tt.verifier(), core.SECP256K1VERIFY)
	require.ErrorIs(t, err, core.ErrMaxCycles)
	require.Equal(t, int8(15), core.ExitCode(err))

	ctx := core.NewContext(tx, tt.verifier(), core.DefaultMaxCycles, zaptest.NewLogger(t))
	reg := registry.New()
	checkpoint.Register(reg)
	require.NoError(t, reg.Get(checkpoint.CodeHash).Exec(ctx))
	require.Greater(t, ctx.Consumed(), core.SECP256K1VERIFY)
	require.Less(t, ctx.Consumed(), core.DefaultMaxCycles)
}

func TestRandomPeriodicTransitions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 50; i++ {
		tt := newTester(t)
		tt.input.BaseReward = uint128.New(rng.Uint64(), rng.Uint64()>>1)
		tt.input.HalfPeriod = uint64(rng.Intn(1000)) + 1
		tt.input.Period = uint64(rng.Intn(200_000))
		tt.output = tt.input
		tt.output.Period++

		reward, err := checkpoint.Reward(tt.input.BaseReward, tt.input.Period, tt.input.HalfPeriod)
		require.NoError(t, err)
		in := uint128.From64(rng.Uint64() >> 1)
		tt.withTokens([]uint128.Uint128{in}, []uint128.Uint128{in.Add(reward)})
		require.NoError(t, tt.exec(tt.periodicTx()), "iteration %d", i)

		tt.withTokens([]uint128.Uint128{in}, []uint128.Uint128{in.Add(reward).Add64(1)})
		require.ErrorIs(t, tt.exec(tt.periodicTx()), core.ErrATAmountMismatch, "iteration %d", i)
	}
}
