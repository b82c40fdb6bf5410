// Package logger provides a zap-based application logger.
package logger

import (
	"context"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Level is the minimum severity a Logger writes.
type Level = zapcore.Level

const (
	LevelDebug = zapcore.DebugLevel
	LevelInfo  = zapcore.InfoLevel
	LevelWarn  = zapcore.WarnLevel
	LevelError = zapcore.ErrorLevel
)

// TraceIDFunc extracts a trace id from a context, or "" when none is active.
type TraceIDFunc func(ctx context.Context) string

// Logger wraps a zap logger and stamps every entry with the active trace id.
// The zero value and a nil *Logger are usable and discard output.
type Logger struct {
	z       *zap.SugaredLogger
	traceID TraceIDFunc
}

// New builds a console logger writing to w.
func New(w io.Writer, level Level, service string, traceID TraceIDFunc) *Logger {
	enc := zap.NewDevelopmentEncoderConfig()
	enc.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), level)
	z := zap.New(core).Named(service)
	return &Logger{z: z.Sugar(), traceID: traceID}
}

// FromZap wraps an existing zap logger. Tests use it with zaptest/observer.
func FromZap(z *zap.Logger) *Logger {
	return &Logger{z: z.Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

// ParseLevel maps a textual level ("debug", "info", ...) to a Level.
func ParseLevel(s string) (Level, error) {
	return zapcore.ParseLevel(s)
}

func (l *Logger) Debug(ctx context.Context, msg string, kv ...any) {
	l.sugar().Debugw(msg, l.fields(ctx, kv)...)
}

func (l *Logger) Info(ctx context.Context, msg string, kv ...any) {
	l.sugar().Infow(msg, l.fields(ctx, kv)...)
}

func (l *Logger) Warn(ctx context.Context, msg string, kv ...any) {
	l.sugar().Warnw(msg, l.fields(ctx, kv)...)
}

func (l *Logger) Error(ctx context.Context, msg string, kv ...any) {
	l.sugar().Errorw(msg, l.fields(ctx, kv)...)
}

// Sync flushes buffered entries.
func (l *Logger) Sync() error {
	return l.sugar().Sync()
}

// A nil *Logger discards everything.
func (l *Logger) sugar() *zap.SugaredLogger {
	if l == nil || l.z == nil {
		return nop
	}
	return l.z
}

var nop = zap.NewNop().Sugar()

func (l *Logger) fields(ctx context.Context, kv []any) []any {
	if l == nil || l.traceID == nil || ctx == nil {
		return kv
	}
	if id := l.traceID(ctx); id != "" {
		return append(kv, "trace_id", id)
	}
	return kv
}
