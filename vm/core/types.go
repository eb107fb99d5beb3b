package core

import (
	"fmt"

	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/spacemeshos/go-checkpointvm/common/types"
)

type (
	// Hash32 is an alias to types.Hash32.
	Hash32 = types.Hash32
	// Identity is an alias to types.Identity.
	Identity = types.Identity
)

// Source selects which set of cells (or witnesses) a host call reads from.
type Source uint8

const (
	// SourceInput is every input of the transaction.
	SourceInput Source = iota + 1
	// SourceOutput is every output of the transaction.
	SourceOutput
	// SourceGroupInput is the inputs that run the current script.
	SourceGroupInput
	// SourceGroupOutput is the outputs that run the current script.
	SourceGroupOutput
)

func (s Source) String() string {
	switch s {
	case SourceInput:
		return "input"
	case SourceOutput:
		return "output"
	case SourceGroupInput:
		return "group_input"
	case SourceGroupOutput:
		return "group_output"
	default:
		return fmt.Sprintf("source(%d)", uint8(s))
	}
}

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./types.go

// Host provides read-only access to the transaction that is being verified.
//
// Index based methods return ErrIndexOutOfBound if index is not smaller than Count
// for the same source.
type Host interface {
	// ScriptArgs returns args of the script that is executed.
	ScriptArgs() []byte
	// TxHash returns hash of the transaction without witnesses.
	TxHash() Hash32
	// Count returns number of cells in the source.
	Count(Source) int
	// Capacity returns capacity of the cell.
	Capacity(int, Source) (uint64, error)
	// Data returns data of the cell.
	Data(int, Source) ([]byte, error)
	// TypeHash returns hash of the type script of the cell, none if cell has no type script.
	TypeHash(int, Source) (fn.Option[Hash32], error)
	// Witness returns witness at the index. For group sources index is resolved
	// to the position of the group cell in the transaction, otherwise index
	// addresses the witness list directly and is bounded by WitnessCount.
	Witness(int, Source) ([]byte, error)
	// WitnessCount returns total number of witnesses in the transaction.
	WitnessCount() int
}

// SignatureVerifier checks that signature over digest was produced by the key
// with the given identity.
type SignatureVerifier interface {
	Verify(sig []byte, id Identity, digest Hash32) bool
}

// Handler is a script that can be registered in the vm.
type Handler interface {
	// Exec runs script against the transaction available in the context.
	// Nil means that transaction is accepted by the script.
	Exec(*Context) error
}
