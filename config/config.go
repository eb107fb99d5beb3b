// Package config contains the configuration of the checkpoint verifier.
package config

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/spacemeshos/go-checkpointvm/vm"
)

const defaultConfigFileName = "./config.toml"

// Config defines the top level configuration of the verifier.
type Config struct {
	BaseConfig `mapstructure:"main"`
	VM         vm.Config     `mapstructure:"vm"`
	Signing    SigningConfig `mapstructure:"signing"`
	LOGGING    LoggerConfig  `mapstructure:"logging"`
}

// BaseConfig defines the default configuration options.
type BaseConfig struct {
	ConfigFile string `mapstructure:"config"`
	// Workers is the number of fixtures verified concurrently.
	Workers            int           `mapstructure:"workers"`
	MetricsPush        string        `mapstructure:"metrics-push"`
	MetricsPushTimeout time.Duration `mapstructure:"metrics-push-timeout"`
	MetricsPushRetries int           `mapstructure:"metrics-push-retries"`
}

// SigningConfig configures signature verification.
type SigningConfig struct {
	// CacheSize is the number of recovered public keys kept in memory. Zero disables the cache.
	CacheSize int `mapstructure:"cache-size"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BaseConfig: DefaultBaseConfig(),
		VM:         vm.DefaultConfig(),
		Signing:    SigningConfig{CacheSize: 1024},
		LOGGING:    DefaultLoggingConfig(),
	}
}

// DefaultBaseConfig returns a default configuration.
func DefaultBaseConfig() BaseConfig {
	return BaseConfig{
		Workers:            4,
		MetricsPushTimeout: 10 * time.Second,
		MetricsPushRetries: 3,
	}
}

// Validate checks values that can't be used.
func (cfg *Config) Validate() error {
	if cfg.Workers <= 0 {
		return fmt.Errorf("workers should be positive: %d", cfg.Workers)
	}
	if cfg.MetricsPushRetries < 0 {
		return fmt.Errorf("invalid metrics push retries %d", cfg.MetricsPushRetries)
	}
	if cfg.VM.MaxCycles == 0 {
		return fmt.Errorf("vm max cycles should be positive")
	}
	if cfg.Signing.CacheSize < 0 {
		return fmt.Errorf("invalid signature cache size %d", cfg.Signing.CacheSize)
	}
	if _, err := ParseLevel(cfg.LOGGING.Level); err != nil {
		return err
	}
	switch cfg.LOGGING.Encoder {
	case ConsoleLogEncoder, JSONLogEncoder:
	default:
		return fmt.Errorf("unknown log encoder %q", cfg.LOGGING.Encoder)
	}
	return nil
}

// LoadConfig reads config file into viper. Empty location means the default file,
// it is not an error if the default file doesn't exist.
func LoadConfig(fs afero.Fs, fileLocation string, vip *viper.Viper) error {
	explicit := fileLocation != ""
	if !explicit {
		fileLocation = defaultConfigFileName
	}
	vip.SetFs(fs)
	vip.SetConfigFile(fileLocation)
	if err := vip.ReadInConfig(); err != nil {
		if !explicit {
			if exists, _ := afero.Exists(fs, fileLocation); !exists {
				return nil
			}
		}
		return fmt.Errorf("failed to read config file %v: %w", fileLocation, err)
	}
	return nil
}

// Unmarshal decodes config from viper on top of the defaults.
func Unmarshal(vip *viper.Viper) (*Config, error) {
	conf := DefaultConfig()
	hook := mapstructure.ComposeDecodeHookFunc(
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)
	if err := vip.Unmarshal(&conf, viper.DecodeHook(hook)); err != nil {
		return nil, fmt.Errorf("unmarshal viper: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return &conf, nil
}
