package cache

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var ErrNilLogger = errors.New("logger cannot be nil")

type options struct {
	logger  *zap.Logger
	logFile *os.File
}

// Option configures a Cache at construction time.
type Option func(*options) error

// WithLogger makes the cache log through l instead of staying silent.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) error {
		if l == nil {
			return ErrNilLogger
		}
		o.logger = l
		return nil
	}
}

// WithLogFile appends debug logs to the file at path. The file is closed by
// Cache.Close.
func WithLogFile(path string) Option {
	return func(o *options) error {
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		if o.logFile != nil {
			_ = o.logFile.Close()
		}
		o.logFile = f
		o.logger = NewFileLogger(f)
		return nil
	}
}

// EncoderConfig controls what appears in each log entry.
func EncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder, // 2025-04-12T18:30:00Z
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
}

// NewFileLogger builds a debug level console-format logger writing to w.
func NewFileLogger(w zapcore.WriteSyncer) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(EncoderConfig()),
		w,
		zap.DebugLevel,
	)
	return zap.New(core)
}

// NewConsoleLogger is NewFileLogger with colored levels, for terminals.
func NewConsoleLogger(w zapcore.WriteSyncer, level zapcore.Level) *zap.Logger {
	cfg := EncoderConfig()
	cfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(cfg), w, level)
	return zap.New(core)
}
