package vm

import (
	"math/rand"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/lightningnetwork/lnd/fn/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap/zaptest"
	"lukechampine.com/uint128"

	"github.com/spacemeshos/go-checkpointvm/common/types"
	"github.com/spacemeshos/go-checkpointvm/signing"
	"github.com/spacemeshos/go-checkpointvm/vm/core"
	"github.com/spacemeshos/go-checkpointvm/vm/core/mocks"
	"github.com/spacemeshos/go-checkpointvm/vm/ledger"
	checkpointsdk "github.com/spacemeshos/go-checkpointvm/vm/sdk/checkpoint"
	"github.com/spacemeshos/go-checkpointvm/vm/templates/checkpoint"
)

func newTester(tb testing.TB) *tester {
	signer, err := signing.NewSecp256k1Signer(signing.WithKeyFromRand(rand.New(rand.NewSource(time.Now().UnixNano()))))
	require.NoError(tb, err)
	return &tester{
		TB:     tb,
		VM:     New(WithLogger(zaptest.NewLogger(tb))),
		admin:  signer,
		typeID: types.Hash32{0xc1},
		record: checkpoint.Record{
			Version:      1,
			BaseReward:   uint128.From64(1000),
			HalfPeriod:   10,
			SudtTypeHash: types.Hash32{0x5d},
		},
	}
}

type tester struct {
	testing.TB
	*VM

	admin  *signing.Secp256k1Signer
	typeID types.Hash32
	record checkpoint.Record
}

func (t *tester) withMaxCycles(cycles uint64) *tester {
	t.VM.cfg.MaxCycles = cycles
	return t
}

func (t *tester) withPeriod(period uint64) *tester {
	t.record.Period = period
	return t
}

// transition builds a transaction that moves the checkpoint cell and
// changes token supply from in to out.
func (t *tester) transition(in, out uint64) *ledger.Transaction {
	tx := &ledger.Transaction{Args: checkpointsdk.Args(t.admin.Identity(), t.typeID)}
	cell := ledger.Cell{Capacity: 1000, Data: checkpointsdk.Record(&t.record), Type: fn.Some(t.typeID)}
	tx.AddInput(cell, true)
	tx.AddInput(ledger.Cell{Data: checkpointsdk.TokenData(uint128.From64(in)), Type: fn.Some(t.record.SudtTypeHash)}, false)
	next := t.record
	next.Period++
	cell.Data = checkpointsdk.Record(&next)
	tx.AddOutput(cell, true)
	tx.AddOutput(ledger.Cell{Data: checkpointsdk.TokenData(uint128.From64(out)), Type: fn.Some(t.record.SudtTypeHash)}, false)
	require.NoError(t, tx.Seal())
	return tx
}

func (t *tester) adminTx(in, out uint64) *ledger.Transaction {
	tx := t.transition(in, out)
	require.NoError(t, checkpointsdk.SignAdmin(tx, t.admin))
	return tx
}

func (t *tester) periodicTx(in, out uint64) *ledger.Transaction {
	tx := t.transition(in, out)
	tx.SetWitness(0, checkpointsdk.PeriodicWitness())
	return tx
}

func (t *tester) verify(tx *ledger.Transaction) Result {
	return t.VM.Verify(tx, checkpoint.CodeHash)
}

func TestVerify(t *testing.T) {
	for _, tc := range []struct {
		desc string
		tx   func(*tester) *ledger.Transaction
		code int8
	}{
		{
			desc: "admin transfer",
			tx:   func(tt *tester) *ledger.Transaction { return tt.adminTx(100, 100) },
		},
		{
			desc: "admin burn",
			tx:   func(tt *tester) *ledger.Transaction { return tt.adminTx(100, 10) },
		},
		{
			desc: "admin mint",
			tx:   func(tt *tester) *ledger.Transaction { return tt.adminTx(100, 101) },
			code: 12,
		},
		{
			desc: "periodic reward",
			tx:   func(tt *tester) *ledger.Transaction { return tt.periodicTx(0, 1000) },
		},
		{
			desc: "periodic halved reward",
			tx:   func(tt *tester) *ledger.Transaction { return tt.withPeriod(25).periodicTx(7, 257) },
		},
		{
			desc: "periodic wrong reward",
			tx:   func(tt *tester) *ledger.Transaction { return tt.periodicTx(0, 999) },
			code: 12,
		},
		{
			desc: "no witness",
			tx:   func(tt *tester) *ledger.Transaction { return tt.transition(0, 0) },
			code: 1,
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			tt := newTester(t)
			rst := tt.verify(tc.tx(tt))
			require.Equal(t, tc.code, rst.ExitCode(), "error: %v", rst.Err)
			if tc.code == 0 {
				require.NoError(t, rst.Err)
			}
			require.NotZero(t, rst.Cycles)
		})
	}
}

func TestUnknownScript(t *testing.T) {
	tt := newTester(t)
	rst := tt.VM.Verify(tt.adminTx(1, 1), types.Hash32{1})
	require.ErrorIs(t, rst.Err, core.ErrUnknownScript)
	require.Equal(t, int8(16), rst.ExitCode())
	require.Zero(t, rst.Cycles)
}

func TestMaxCycles(t *testing.T) {
	tt := newTester(t).withMaxCycles(core.SECP256K1VERIFY)
	rst := tt.verify(tt.adminTx(1, 1))
	require.ErrorIs(t, rst.Err, core.ErrMaxCycles)
	require.Equal(t, core.SECP256K1VERIFY, rst.Cycles)

	rst = tt.verify(tt.periodicTx(0, 1000))
	require.NoError(t, rst.Err)
	require.Less(t, rst.Cycles, core.SECP256K1VERIFY)
}

func TestConfig(t *testing.T) {
	vm := New(WithConfig(Config{MaxCycles: 1}))
	require.Equal(t, uint64(1), vm.cfg.MaxCycles)
	require.NotNil(t, vm.verifier)
	require.NotNil(t, vm.registry.Get(checkpoint.CodeHash))
	require.Equal(t, core.DefaultMaxCycles, DefaultConfig().MaxCycles)
}

func TestWithVerifier(t *testing.T) {
	verifier := mocks.NewMockSignatureVerifier(gomock.NewController(t))
	tt := newTester(t)
	tt.VM = New(WithLogger(zaptest.NewLogger(t)), WithVerifier(verifier))

	tx := tt.adminTx(5, 5)
	verifier.EXPECT().Verify(gomock.Any(), tt.admin.Identity(), gomock.Any()).Return(true)
	require.NoError(t, tt.verify(tx).Err)

	verifier.EXPECT().Verify(gomock.Any(), tt.admin.Identity(), gomock.Any()).Return(false)
	require.ErrorIs(t, tt.verify(tx).Err, core.ErrSignatureMismatch)
}

func TestDuration(t *testing.T) {
	clock := clockwork.NewFakeClock()
	tt := newTester(t)
	tt.VM = New(WithLogger(zaptest.NewLogger(t)), WithClock(clock))
	rst := tt.verify(tt.periodicTx(0, 1000))
	require.NoError(t, rst.Err)
	require.Zero(t, rst.Duration)
}

func TestConcurrentVerify(t *testing.T) {
	tt := newTester(t)
	txs := make([]*ledger.Transaction, 8)
	for i := range txs {
		txs[i] = tt.adminTx(uint64(i), uint64(i))
	}
	errs := make(chan error, len(txs))
	for _, tx := range txs {
		go func() {
			errs <- tt.verify(tx).Err
		}()
	}
	for range txs {
		require.NoError(t, <-errs)
	}
}
