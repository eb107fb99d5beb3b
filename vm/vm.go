package vm

import (
	"fmt"
	"strconv"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-checkpointvm/signing"
	"github.com/spacemeshos/go-checkpointvm/vm/core"
	"github.com/spacemeshos/go-checkpointvm/vm/registry"
	"github.com/spacemeshos/go-checkpointvm/vm/templates/checkpoint"
)

// Config defines the configuration options for vm.
type Config struct {
	MaxCycles uint64 `mapstructure:"max-cycles"`
}

// DefaultConfig returns the default Config.
func DefaultConfig() Config {
	return Config{
		MaxCycles: core.DefaultMaxCycles,
	}
}

// Opt is for changing VM during initialization.
type Opt func(*VM)

// WithLogger sets logger for VM.
func WithLogger(logger *zap.Logger) Opt {
	return func(vm *VM) {
		vm.logger = logger
	}
}

// WithConfig updates config on the vm.
func WithConfig(cfg Config) Opt {
	return func(vm *VM) {
		vm.cfg = cfg
	}
}

// WithVerifier sets signature verifier that is used by scripts.
func WithVerifier(verifier core.SignatureVerifier) Opt {
	return func(vm *VM) {
		vm.verifier = verifier
	}
}

// WithClock sets clock for measuring script runs.
func WithClock(clock clockwork.Clock) Opt {
	return func(vm *VM) {
		vm.clock = clock
	}
}

// New returns VM instance with every known script registered.
func New(opts ...Opt) *VM {
	vm := &VM{
		logger:   zap.NewNop(),
		cfg:      DefaultConfig(),
		clock:    clockwork.NewRealClock(),
		registry: registry.New(),
	}
	for _, opt := range opts {
		opt(vm)
	}
	if vm.verifier == nil {
		verifier, err := signing.NewSecp256k1Verifier()
		if err != nil {
			panic(err)
		}
		vm.verifier = verifier
	}
	checkpoint.Register(vm.registry)
	return vm
}

// VM runs type scripts against transactions.
// It is safe to call Verify concurrently if the hosts are not shared.
type VM struct {
	logger   *zap.Logger
	cfg      Config
	verifier core.SignatureVerifier
	clock    clockwork.Clock
	registry *registry.Registry
}

// Result of a single script run.
type Result struct {
	// Cycles consumed by the script.
	Cycles   uint64
	Duration time.Duration
	// Err is nil if the transition was accepted.
	Err error
}

// ExitCode of the script, zero on success.
func (r *Result) ExitCode() int8 {
	return core.ExitCode(r.Err)
}

// Verify runs script with the code hash over the transaction served by host.
func (vm *VM) Verify(host core.Host, codeHash core.Hash32) Result {
	script := codeHash.ShortString()
	handler := vm.registry.Get(codeHash)
	if handler == nil {
		err := fmt.Errorf("%w: code hash %s", core.ErrUnknownScript, codeHash)
		verdicts.WithLabelValues(script, strconv.Itoa(int(core.ExitCode(err)))).Inc()
		return Result{Err: err}
	}
	var (
		start = vm.clock.Now()
		ctx   = core.NewContext(host, vm.verifier, vm.cfg.MaxCycles, vm.logger.With(zap.String("script", script)))
		err   = handler.Exec(ctx)
		rst   = Result{Cycles: ctx.Consumed(), Duration: vm.clock.Since(start), Err: err}
	)
	code := rst.ExitCode()
	verdicts.WithLabelValues(script, strconv.Itoa(int(code))).Inc()
	consumedCycles.WithLabelValues(script).Observe(float64(rst.Cycles))
	runDuration.WithLabelValues(script).Observe(rst.Duration.Seconds())
	if err != nil {
		vm.logger.Debug("transition rejected",
			zap.Stringer("tx", host.TxHash()),
			zap.Int8("code", code),
			zap.Uint64("cycles", rst.Cycles),
			zap.Error(err),
		)
	} else {
		vm.logger.Debug("transition accepted",
			zap.Stringer("tx", host.TxHash()),
			zap.Uint64("cycles", rst.Cycles),
			zap.Duration("duration", rst.Duration),
		)
	}
	return rst
}
