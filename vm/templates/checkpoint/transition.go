package checkpoint

import (
	"fmt"

	"github.com/spacemeshos/go-checkpointvm/vm/core"
)

// Transition is either Administrative or PeriodicUpdate.
type Transition interface {
	fmt.Stringer
	transition()
}

// Administrative transition is signed by the admin identity from the script args.
type Administrative struct {
	// Signature is a 65 bytes recoverable secp256k1 signature.
	Signature []byte
}

func (Administrative) transition() {}

func (Administrative) String() string { return "administrative" }

// PeriodicUpdate advances the checkpoint and mints the period reward.
type PeriodicUpdate struct {
	// Proof is reserved for block finality proof. Only its presence is checked.
	Proof []byte
}

func (PeriodicUpdate) transition() {}

func (PeriodicUpdate) String() string { return "periodic_update" }

// ModeAdministrative is the value of the first input type byte that selects Administrative.
const ModeAdministrative byte = 0

// selectTransition picks transition mode from the witness of the first group input.
func selectTransition(witness *core.WitnessArgs) (Transition, error) {
	mode, err := witness.InputType.UnwrapOrErr(fmt.Errorf("%w: input type is absent", core.ErrBadWitnessInputType))
	if err != nil {
		return nil, err
	}
	if len(mode) == 0 {
		return nil, fmt.Errorf("%w: input type is empty", core.ErrBadWitnessInputType)
	}
	lock := witness.Lock.UnwrapOr(nil)
	if mode[0] == ModeAdministrative {
		return Administrative{Signature: lock}, nil
	}
	return PeriodicUpdate{Proof: lock}, nil
}
