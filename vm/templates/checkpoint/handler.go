package checkpoint

import (
	"go.uber.org/zap"

	"github.com/spacemeshos/go-checkpointvm/vm/core"
	"github.com/spacemeshos/go-checkpointvm/vm/registry"
)

func init() {
	CodeHash[len(CodeHash)-1] = 1
}

var (
	_ core.Handler = (*handler)(nil)
	// CodeHash is a code hash of the checkpoint type script.
	CodeHash core.Hash32
)

// Register checkpoint script.
func Register(registry *registry.Registry) {
	registry.Register(CodeHash, &handler{})
}

type handler struct{}

// Exec decodes script args and verifies the checkpoint transition.
func (*handler) Exec(ctx *core.Context) error {
	raw, err := ctx.Args()
	if err != nil {
		return err
	}
	args, err := DecodeArgs(raw)
	if err != nil {
		return err
	}
	ctx.Logger.Debug("checkpoint script",
		zap.Object("admin", &args.AdminIdentity),
		zap.Stringer("type_id_hash", args.TypeIDHash),
	)
	return New(args).Verify(ctx)
}
