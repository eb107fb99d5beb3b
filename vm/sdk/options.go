package sdk

import "github.com/spacemeshos/go-checkpointvm/vm/core"

// Opt modifies Options.
type Opt func(*Options)

// Defaults returns default Options.
func Defaults() *Options {
	return &Options{
		PeriodicMode: 1,
		Proof:        []byte{0},
		MaxCycles:    core.DefaultMaxCycles,
	}
}

// Options to modify common witness fields.
type Options struct {
	// PeriodicMode is the input type byte of periodic update witness. Must not be zero.
	PeriodicMode byte
	// Proof is the lock of periodic update witness.
	Proof []byte
	// MaxCycles is a budget for computing signing digest.
	MaxCycles uint64
}

// WithPeriodicMode modifies PeriodicMode.
func WithPeriodicMode(mode byte) Opt {
	return func(opts *Options) {
		opts.PeriodicMode = mode
	}
}

// WithProof modifies Proof.
func WithProof(proof []byte) Opt {
	return func(opts *Options) {
		opts.Proof = proof
	}
}

// WithMaxCycles modifies MaxCycles.
func WithMaxCycles(cycles uint64) Opt {
	return func(opts *Options) {
		opts.MaxCycles = cycles
	}
}
