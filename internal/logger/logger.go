package logger

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config defines logging configuration
type Config struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // console or json
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the configuration used when nothing else is set
func DefaultConfig() Config {
	return Config{
		Level:       "info",
		Format:      "console",
		Development: true,
	}
}

// New builds a zap logger from cfg. Unknown levels fall back to info.
func New(cfg Config) (*zap.Logger, error) {
	var zapConfig zap.Config

	if cfg.Development {
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		zapConfig = zap.NewProductionConfig()
	}

	zapConfig.Level = zap.NewAtomicLevelAt(ParseLevel(cfg.Level))

	if cfg.Format == "json" {
		zapConfig.Encoding = "json"
		zapConfig.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	} else {
		zapConfig.Encoding = "console"
	}

	// The frame loop logs per pickup, never per frame, so sampling only hides events.
	zapConfig.Sampling = nil

	logger, err := zapConfig.Build(zap.AddCaller())
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

// ParseLevel maps a level name onto a zap level, defaulting to info.
func ParseLevel(level string) zapcore.Level {
	l, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return l
}

// WithSession tags every line written through the returned logger with a
// fresh session id, and returns that id.
func WithSession(l *zap.Logger) (*zap.Logger, string) {
	id := uuid.NewString()
	return l.With(zap.String("session", id)), id
}
