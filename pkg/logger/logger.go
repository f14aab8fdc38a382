package logger

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// globalLogger is the global logger instance
	globalLogger *zap.Logger
)

// ParseLevel maps a level name to a zap level, falling back to info
func ParseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// New builds a logger for the given level and environment. Production
// output is JSON with ISO8601 timestamps, development output is colored
// console text.
func New(level string, environment string) (*zap.Logger, error) {
	zapLevel := ParseLevel(level)

	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if environment == "development" {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	// CLI output goes to stdout, keep logs apart
	config.OutputPaths = []string{"stderr"}

	logger, err := config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}

// Init initializes the global logger
func Init(level string, environment string) error {
	logger, err := New(level, environment)
	if err != nil {
		return err
	}
	globalLogger = logger
	return nil
}

// Get returns the global logger, or a no-op logger before Init
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// Sync flushes any buffered log entries
func Sync() error {
	if globalLogger != nil {
		return globalLogger.Sync()
	}
	return nil
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	Get().Debug(msg, fields...)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	Get().Info(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	Get().Warn(msg, fields...)
}

// Field constructors re-exported so callers only import this package
var (
	String     = zap.String
	Strings    = zap.Strings
	Int        = zap.Int
	Float64    = zap.Float64
	Duration   = zap.Duration
	Time       = zap.Time
	ErrorField = zap.Error
)

// Symbol tags a log entry with a ticker symbol
func Symbol(symbol string) zap.Field {
	return zap.String("symbol", symbol)
}

// Indicator tags a log entry with an indicator name
func Indicator(name string) zap.Field {
	return zap.String("indicator", name)
}
