package core

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-checkpointvm/codec"
)

// NewContext creates context for a single script execution.
func NewContext(host Host, verifier SignatureVerifier, maxCycles uint64, logger *zap.Logger) *Context {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Context{
		Host:      host,
		Verifier:  verifier,
		MaxCycles: maxCycles,
		Logger:    logger,
	}
}

// Context serves as an interface between the script and the transaction.
// Every load through the context is charged against MaxCycles.
// It is not safe for concurrent use.
type Context struct {
	Host      Host
	Verifier  SignatureVerifier
	MaxCycles uint64
	Logger    *zap.Logger

	consumed uint64
}

// Consume charges cycles. Fails with ErrMaxCycles once the budget is exceeded,
// consumed counter is capped by MaxCycles in that case.
func (c *Context) Consume(cycles uint64) error {
	if c.MaxCycles-c.consumed < cycles {
		c.consumed = c.MaxCycles
		return fmt.Errorf("%w: limit %d", ErrMaxCycles, c.MaxCycles)
	}
	c.consumed += cycles
	return nil
}

// Consumed returns number of cycles used so far.
func (c *Context) Consumed() uint64 {
	return c.consumed
}

// Args returns script args.
func (c *Context) Args() ([]byte, error) {
	args := c.Host.ScriptArgs()
	if err := c.Consume(CELL_ACCESS + SizeGas(LOAD, len(args))); err != nil {
		return nil, err
	}
	return args, nil
}

// Count returns number of cells in the source.
func (c *Context) Count(src Source) (int, error) {
	if err := c.Consume(CELL_ACCESS); err != nil {
		return 0, err
	}
	return c.Host.Count(src), nil
}

// LoadCapacity loads capacity of the cell.
func (c *Context) LoadCapacity(i int, src Source) (uint64, error) {
	if err := c.Consume(CELL_ACCESS + SizeGas(LOAD, 8)); err != nil {
		return 0, err
	}
	capacity, err := c.Host.Capacity(i, src)
	if err != nil {
		return 0, fmt.Errorf("load capacity %d from %s: %w", i, src, err)
	}
	return capacity, nil
}

// LoadData loads data of the cell.
func (c *Context) LoadData(i int, src Source) ([]byte, error) {
	if err := c.Consume(CELL_ACCESS); err != nil {
		return nil, err
	}
	data, err := c.Host.Data(i, src)
	if err != nil {
		return nil, fmt.Errorf("load data %d from %s: %w", i, src, err)
	}
	if err := c.Consume(SizeGas(LOAD, len(data))); err != nil {
		return nil, err
	}
	return data, nil
}

// LoadTypeHash loads type script hash of the cell.
func (c *Context) LoadTypeHash(i int, src Source) (fn.Option[Hash32], error) {
	if err := c.Consume(CELL_ACCESS + SizeGas(LOAD, 32)); err != nil {
		return fn.None[Hash32](), err
	}
	hash, err := c.Host.TypeHash(i, src)
	if err != nil {
		return fn.None[Hash32](), fmt.Errorf("load type hash %d from %s: %w", i, src, err)
	}
	return hash, nil
}

// LoadWitness loads raw witness.
func (c *Context) LoadWitness(i int, src Source) ([]byte, error) {
	if err := c.Consume(WITNESS_ACCESS); err != nil {
		return nil, err
	}
	witness, err := c.Host.Witness(i, src)
	if err != nil {
		return nil, fmt.Errorf("load witness %d from %s: %w", i, src, err)
	}
	if err := c.Consume(SizeGas(LOAD, len(witness))); err != nil {
		return nil, err
	}
	return witness, nil
}

// LoadWitnessArgs loads witness and decodes it as WitnessArgs.
func (c *Context) LoadWitnessArgs(i int, src Source) (*WitnessArgs, error) {
	witness, err := c.LoadWitness(i, src)
	if err != nil {
		return nil, err
	}
	if err := c.Consume(SizeGas(DECODE, len(witness))); err != nil {
		return nil, err
	}
	var args WitnessArgs
	if err := codec.DecodeExact(witness, &args); err != nil {
		return nil, fmt.Errorf("%w: witness args %d from %s: %s", ErrEncoding, i, src, err.Error())
	}
	return &args, nil
}

// VerifySignature charges for and runs signature verification.
func (c *Context) VerifySignature(sig []byte, id Identity, digest Hash32) (bool, error) {
	if err := c.Consume(SECP256K1VERIFY); err != nil {
		return false, err
	}
	return c.Verifier.Verify(sig, id, digest), nil
}
