package config

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogEncoder defines a log encoder kind.
type LogEncoder = string

const (
	defaultLoggingLevel = zapcore.WarnLevel
	// ConsoleLogEncoder represents logging with plain text.
	ConsoleLogEncoder LogEncoder = "console"
	// JSONLogEncoder represents logging with JSON.
	JSONLogEncoder LogEncoder = "json"
)

// LoggerConfig holds the logging configuration.
type LoggerConfig struct {
	Encoder LogEncoder `mapstructure:"log-encoder"`
	Level   string     `mapstructure:"log-level"`
}

// DefaultLoggingConfig returns warn level console logging.
func DefaultLoggingConfig() LoggerConfig {
	return LoggerConfig{
		Encoder: ConsoleLogEncoder,
		Level:   defaultLoggingLevel.String(),
	}
}

// ParseLevel parses zap level name.
func ParseLevel(level string) (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return lvl, fmt.Errorf("parse log level: %w", err)
	}
	return lvl, nil
}

// NewLogger creates a logger that writes to w.
func NewLogger(cfg LoggerConfig, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	var encoder zapcore.Encoder
	switch cfg.Encoder {
	case JSONLogEncoder:
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case ConsoleLogEncoder:
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("unknown log encoder %q", cfg.Encoder)
	}
	core := zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))
	return zap.New(core).Named("checkpointvm"), nil
}
