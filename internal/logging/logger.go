// Package logging sets up and carries the process logger in contexts.
package logging

import (
	"context"
	"strings"
	"sync"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type contextKey string

const loggerKey = contextKey("logger")

var (
	defaultLogger     *zap.SugaredLogger
	defaultLoggerOnce sync.Once
)

// NewLogger creates a logger writing to stderr at the given level. Unknown levels
// fall back to info.
func NewLogger(level string, development bool) *zap.SugaredLogger {
	var config zap.Config
	if development {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "timestamp"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}
	config.Level = zap.NewAtomicLevelAt(levelFor(level))
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger.Sugar()
}

type Config struct {
	Level       string `envconfig:"KNNCV_LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"KNNCV_LOG_DEVELOPMENT" default:"false"`
}

// NewLoggerFromEnv builds a logger from KNNCV_LOG_LEVEL and KNNCV_LOG_DEVELOPMENT.
// Malformed values fall back to a production logger at info level.
func NewLoggerFromEnv() *zap.SugaredLogger {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return NewLogger("info", false)
	}
	return NewLogger(cfg.Level, cfg.Development)
}

// DefaultLogger returns the process wide logger built from the environment.
func DefaultLogger() *zap.SugaredLogger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = NewLoggerFromEnv()
	})
	return defaultLogger
}

// WithLogger returns a context carrying logger.
func WithLogger(ctx context.Context, logger *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger stored in ctx or the default logger.
func FromContext(ctx context.Context) *zap.SugaredLogger {
	if logger, ok := ctx.Value(loggerKey).(*zap.SugaredLogger); ok {
		return logger
	}
	return DefaultLogger()
}

func levelFor(level string) zapcore.Level {
	var l zapcore.Level
	if err := l.UnmarshalText([]byte(strings.ToLower(strings.TrimSpace(level)))); err != nil {
		return zapcore.InfoLevel
	}
	return l
}
