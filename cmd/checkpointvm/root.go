// Package checkpointvm is the command line interface of the checkpoint verifier.
package checkpointvm

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-checkpointvm/cmd"
	"github.com/spacemeshos/go-checkpointvm/config"
)

type app struct {
	fs     afero.Fs
	vip    *viper.Viper
	conf   *config.Config
	logger *zap.Logger
}

// New creates root command. Every file is accessed through fs.
func New(fs afero.Fs) *cobra.Command {
	a := &app{fs: fs, vip: viper.New(), logger: zap.NewNop()}
	root := &cobra.Command{
		Use:               "checkpointvm",
		Short:             "verify checkpoint cell transitions",
		Version:           cmd.FullVersion(),
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}
	a.addFlags(root.PersistentFlags())
	root.AddCommand(a.verifyCmd(), a.keygenCmd())
	return root
}

func (a *app) addFlags(flags *pflag.FlagSet) {
	defaults := config.DefaultConfig()
	flags.StringP("config", "c", "", "load configuration from file")
	flags.IntP("workers", "j", defaults.Workers, "number of fixtures verified concurrently")
	flags.String("metrics-push", defaults.MetricsPush, "push metrics to the pushgateway url after the run")
	flags.Duration("metrics-push-timeout", defaults.MetricsPushTimeout, "timeout for pushing metrics")
	flags.Int("metrics-push-retries", defaults.MetricsPushRetries, "number of retries if pushing metrics failed")
	flags.Uint64("max-cycles", defaults.VM.MaxCycles, "cycles budget of a single script run")
	flags.Int("signature-cache-size", defaults.Signing.CacheSize, "number of recovered public keys kept in memory")
	flags.String("log-level", defaults.LOGGING.Level, "log level (debug, info, warn, error)")
	flags.String("log-encoder", defaults.LOGGING.Encoder, "log encoder (console, json)")

	for key, name := range map[string]string{
		"main.workers":              "workers",
		"main.metrics-push":         "metrics-push",
		"main.metrics-push-timeout": "metrics-push-timeout",
		"main.metrics-push-retries": "metrics-push-retries",
		"vm.max-cycles":             "max-cycles",
		"signing.cache-size":        "signature-cache-size",
		"logging.log-level":         "log-level",
		"logging.log-encoder":       "log-encoder",
	} {
		if err := a.vip.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(err)
		}
	}
}

// initialize loads config and sets up logger.
func (a *app) initialize(c *cobra.Command, _ []string) error {
	path, err := c.Flags().GetString("config")
	if err != nil {
		return err
	}
	if err := config.LoadConfig(a.fs, path, a.vip); err != nil {
		return err
	}
	conf, err := config.Unmarshal(a.vip)
	if err != nil {
		return err
	}
	conf.ConfigFile = path
	logger, err := config.NewLogger(conf.LOGGING, c.ErrOrStderr())
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	a.conf = conf
	a.logger = logger
	a.logger.Debug("loaded config",
		zap.String("file", path),
		zap.Int("workers", conf.Workers),
		zap.Uint64("max_cycles", conf.VM.MaxCycles),
	)
	return nil
}
