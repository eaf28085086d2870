// Package logx provides structured logging functionality
package logx

import (
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.Logger to provide a consistent interface.
type Logger struct {
	zap   *zap.Logger
	sugar *zap.SugaredLogger
	scope string
}

var (
	mu           sync.RWMutex
	globalLogger *Logger
	scopes       = map[string]*Logger{}
)

func init() {
	globalLogger = build("info", "text", "")
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("2006-01-02 15:04:05.000"))
}

func loggerConfig(level, format string) zap.Config {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.Sampling = nil
	config.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}
	switch strings.ToLower(format) {
	case "json":
		config.Encoding = "json"
		config.EncoderConfig.EncodeLevel = zapcore.LowercaseLevelEncoder
	default:
		config.Encoding = "console"
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	return config
}

func build(level, format, scope string) *Logger {
	config := loggerConfig(level, format)
	zl, err := config.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}
	if scope != "" {
		zl = zl.Named(scope)
	}
	return &Logger{zap: zl, sugar: zl.Sugar(), scope: scope}
}

// Init configures the global logger and rebuilds all scoped loggers.
func Init(level, format string) {
	mu.Lock()
	defer mu.Unlock()
	globalLogger = build(level, format, "")
	for name, l := range scopes {
		*l = *build(level, format, name)
	}
}

// GetScope returns a named logger, creating it on first use. Scoped loggers
// are rebuilt in place by Init so packages can hold them in package vars.
func GetScope(name string) *Logger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := scopes[name]; ok {
		return l
	}
	l := build("info", "text", name)
	scopes[name] = l
	return l
}

// L returns the global sugared logger.
func L() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger.sugar
}

// Global returns the global logger instance.
func Global() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return globalLogger
}

func parseLevel(s string) zapcore.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// Sugar returns the sugared logger for key-value style logging.
func (l *Logger) Sugar() *zap.SugaredLogger { return l.sugar }

// Zap returns the underlying zap logger.
func (l *Logger) Zap() *zap.Logger { return l.zap }

// Close flushes any buffered log entries.
func (l *Logger) Close() error {
	if l.zap != nil {
		return l.zap.Sync()
	}
	return nil
}

// Debug logs a debug message with structured fields.
func (l *Logger) Debug(msg string, fields ...zap.Field) { l.zap.Debug(msg, fields...) }

// Info logs an info message with structured fields.
func (l *Logger) Info(msg string, fields ...zap.Field) { l.zap.Info(msg, fields...) }

// Warn logs a warning message with structured fields.
func (l *Logger) Warn(msg string, fields ...zap.Field) { l.zap.Warn(msg, fields...) }

// Error logs an error message with structured fields.
func (l *Logger) Error(msg string, fields ...zap.Field) { l.zap.Error(msg, fields...) }

// Fatal logs a fatal message and exits.
func (l *Logger) Fatal(msg string, fields ...zap.Field) { l.zap.Fatal(msg, fields...) }
