// Package logger wraps zap behind a small interface shared by every package.
package logger

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Field is a structured log field.
type Field = zap.Field

type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	Fatal(msg string, fields ...Field)

	Debugf(template string, args ...any)
	Infof(template string, args ...any)
	Warnf(template string, args ...any)
	Errorf(template string, args ...any)

	// With returns a child logger carrying fields on every entry.
	With(fields ...Field) Logger
	Sync() error
}

type zapLogger struct {
	base    *zap.Logger
	sugared *zap.SugaredLogger
}

// New builds a production JSON logger, or a colored console one when pretty
// is set. Unknown levels keep the config default.
func New(level string, pretty bool) Logger {
	cfg := zap.NewProductionConfig()
	if pretty {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	if lvl, ok := parseLevel(level); ok {
		cfg.Level = zap.NewAtomicLevelAt(lvl)
	}

	base, err := cfg.Build(zap.AddStacktrace(zapcore.FatalLevel))
	if err != nil {
		panic(err)
	}
	return wrap(base)
}

// NewNop discards everything. Used by tests and one-shot CLI commands.
func NewNop() Logger {
	return wrap(zap.NewNop())
}

func wrap(base *zap.Logger) Logger {
	return &zapLogger{base: base, sugared: base.Sugar()}
}

func parseLevel(lvl string) (zapcore.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(lvl)) {
	case "debug":
		return zapcore.DebugLevel, true
	case "info":
		return zapcore.InfoLevel, true
	case "warn", "warning":
		return zapcore.WarnLevel, true
	case "error":
		return zapcore.ErrorLevel, true
	}
	return zapcore.InfoLevel, false
}

func (l *zapLogger) Debug(msg string, fields ...Field) { l.base.Debug(msg, fields...) }
func (l *zapLogger) Info(msg string, fields ...Field)  { l.base.Info(msg, fields...) }
func (l *zapLogger) Warn(msg string, fields ...Field)  { l.base.Warn(msg, fields...) }
func (l *zapLogger) Error(msg string, fields ...Field) { l.base.Error(msg, fields...) }
func (l *zapLogger) Fatal(msg string, fields ...Field) { l.base.Fatal(msg, fields...) }

func (l *zapLogger) Debugf(t string, args ...any) { l.sugared.Debugf(t, args...) }
func (l *zapLogger) Infof(t string, args ...any)  { l.sugared.Infof(t, args...) }
func (l *zapLogger) Warnf(t string, args ...any)  { l.sugared.Warnf(t, args...) }
func (l *zapLogger) Errorf(t string, args ...any) { l.sugared.Errorf(t, args...) }

func (l *zapLogger) With(fields ...Field) Logger { return wrap(l.base.With(fields...)) }

func (l *zapLogger) Sync() error { return l.base.Sync() }

// Field constructors, so callers never import zap directly.
func String(key, val string) Field                 { return zap.String(key, val) }
func Int(key string, val int) Field                { return zap.Int(key, val) }
func Int64(key string, val int64) Field            { return zap.Int64(key, val) }
func Bool(key string, val bool) Field              { return zap.Bool(key, val) }
func Duration(key string, val time.Duration) Field { return zap.Duration(key, val) }
func Strings(key string, val []string) Field       { return zap.Strings(key, val) }
func Error(err error) Field                        { return zap.Error(err) }
