package checkpointvm

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/go-checkpointvm/cmd"
	"github.com/spacemeshos/go-checkpointvm/metrics"
	"github.com/spacemeshos/go-checkpointvm/signing"
	"github.com/spacemeshos/go-checkpointvm/vm"
	"github.com/spacemeshos/go-checkpointvm/vm/txfile"
)

func (a *app) verifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <fixture>...",
		Short: "run checkpoint script against transaction fixtures",
		Long: "Runs the script of every fixture and prints the verdicts. " +
			"Fixture passes if the exit code matches the expected one, zero if fixture doesn't declare it. " +
			"Process exits with the exit code of the first failed fixture, or 1 if it was unexpectedly accepted.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			return a.verify(c.Context(), c.OutOrStdout(), args)
		},
	}
}

type outcome struct {
	name   string
	expect int8
	result vm.Result
}

func (o *outcome) passed() bool {
	return o.result.ExitCode() == o.expect
}

func (a *app) verify(ctx context.Context, w io.Writer, paths []string) error {
	verifier, err := signing.NewSecp256k1Verifier(signing.WithCacheSize(a.conf.Signing.CacheSize))
	if err != nil {
		return err
	}
	logger := a.logger.With(zap.Stringer("run", uuid.New()))
	machine := vm.New(
		vm.WithLogger(logger.Named("vm")),
		vm.WithConfig(a.conf.VM),
		vm.WithVerifier(verifier),
	)

	outcomes := make([]outcome, len(paths))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.conf.Workers)
	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := txfile.Load(a.fs, path)
			if err != nil {
				return err
			}
			outcomes[i] = outcome{
				name:   c.Name,
				expect: c.Expect.UnwrapOr(0),
				result: machine.Verify(c.Tx, c.CodeHash),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return err
	}

	var (
		failed *outcome
		nfail  int
	)
	for i := range outcomes {
		o := &outcomes[i]
		verdict := "PASS"
		if !o.passed() {
			verdict = "FAIL"
			nfail++
			if failed == nil {
				failed = o
			}
		}
		fmt.Fprintf(w, "%s\t%s\tcode=%d\texpect=%d\tcycles=%d", verdict, o.name, o.result.ExitCode(), o.expect, o.result.Cycles)
		if o.result.Err != nil {
			fmt.Fprintf(w, "\terror=%q", o.result.Err.Error())
		}
		fmt.Fprintln(w)
	}
	logger.Info("verification finished", zap.Int("fixtures", len(outcomes)), zap.Int("failed", nfail))
	a.pushMetrics(ctx, logger)

	if failed == nil {
		return nil
	}
	code := int(uint8(failed.result.ExitCode()))
	if code == 0 {
		code = 1
	}
	return &cmd.ExitError{Code: code, Msg: fmt.Sprintf("fixture %s failed", failed.name)}
}

func (a *app) pushMetrics(ctx context.Context, logger *zap.Logger) {
	if a.conf.MetricsPush == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.conf.MetricsPushTimeout)
	defer cancel()
	err := metrics.PushMetrics(ctx, a.conf.MetricsPush, prometheus.DefaultGatherer, nil,
		metrics.WithRetries(a.conf.MetricsPushRetries, time.Second),
		metrics.WithLogger(logger.Named("push")),
	)
	if err != nil {
		logger.Warn("failed to push metrics", zap.Error(err))
	}
}
