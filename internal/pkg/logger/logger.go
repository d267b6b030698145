// Package logger is a thin context-aware wrapper around a global zap logger.
package logger

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config описывает настройки логирования из config.yaml.
type Config struct {
	Level      string `mapstructure:"level"`       // debug, info, warn, error
	Format     string `mapstructure:"format"`      // json, console
	OutputFile string `mapstructure:"output_file"` // optional
}

type ctxKey struct{}

var (
	global   = zap.NewNop()
	globalMx sync.RWMutex
)

// Init builds the global logger. An empty level means info, an empty format means json.
func Init(cfg Config) error {
	l, err := Build(cfg)
	if err != nil {
		return err
	}
	SetLogger(l)
	return nil
}

// Build creates a zap logger without installing it globally.
func Build(cfg Config) (*zap.Logger, error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	var zapCfg zap.Config
	switch cfg.Format {
	case "", "json":
		zapCfg = zap.NewProductionConfig()
	case "console":
		zapCfg = zap.NewDevelopmentConfig()
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	if cfg.OutputFile != "" {
		if dir := filepath.Dir(cfg.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %w", dir, err)
			}
		}
		zapCfg.OutputPaths = []string{cfg.OutputFile}
		zapCfg.ErrorOutputPaths = []string{cfg.OutputFile}
	}

	return zapCfg.Build()
}

func ParseLevel(level string) (zapcore.Level, error) {
	switch level {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("invalid log level: %s", level)
	}
}

func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	globalMx.Lock()
	defer globalMx.Unlock()
	global = l
}

func Sync() {
	_ = L().Sync()
}

// L returns the global logger.
func L() *zap.Logger {
	globalMx.RLock()
	defer globalMx.RUnlock()
	return global
}

// WithFields returns a context whose log lines carry the given fields.
func WithFields(ctx context.Context, fields ...zap.Field) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]zap.Field)
	merged := make([]zap.Field, 0, len(existing)+len(fields))
	merged = append(merged, existing...)
	merged = append(merged, fields...)
	return context.WithValue(ctx, ctxKey{}, merged)
}

func fromContext(ctx context.Context) *zap.Logger {
	l := L()
	if ctx == nil {
		return l
	}
	if fields, ok := ctx.Value(ctxKey{}).([]zap.Field); ok && len(fields) > 0 {
		return l.With(fields...)
	}
	return l
}

func Debug(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Debug(msg, fields...)
}

func Debugf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Debug(fmt.Sprintf(format, args...))
}

func Info(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Info(msg, fields...)
}

func Infof(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Info(fmt.Sprintf(format, args...))
}

func Warn(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Warn(msg, fields...)
}

func Warnf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Warn(fmt.Sprintf(format, args...))
}

func Error(ctx context.Context, msg string, fields ...zap.Field) {
	fromContext(ctx).Error(msg, fields...)
}

func Errorf(ctx context.Context, format string, args ...interface{}) {
	fromContext(ctx).Error(fmt.Sprintf(format, args...))
}

func Fatal(ctx context.Context, err error, fields ...zap.Field) {
	fromContext(ctx).Fatal(err.Error(), fields...)
}
