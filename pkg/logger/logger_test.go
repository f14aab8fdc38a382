package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warn"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("info"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestNew(t *testing.T) {
	for _, env := range []string{"development", "production"} {
		l, err := New("warn", env)
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel), env)
		assert.True(t, l.Core().Enabled(zapcore.ErrorLevel), env)
	}
}

func TestGet_BeforeInit(t *testing.T) {
	globalLogger = nil
	assert.NotNil(t, Get())
	assert.NoError(t, Sync())

	require.NoError(t, Init("debug", "development"))
	assert.True(t, Get().Core().Enabled(zapcore.DebugLevel))
	globalLogger = nil
}

func TestGlobalHelpers(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	globalLogger = zap.New(core)
	defer func() { globalLogger = nil }()

	Debug("pipeline selected", Strings("indicators", []string{"rsi", "macd"}))
	Info("chart written", Symbol("AAPL"), Indicator("rsi"), Float64("tolerance", 1e-6))
	Warn("close failed", ErrorField(assert.AnError))

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "AAPL", entries[1].ContextMap()["symbol"])
	assert.Equal(t, "rsi", entries[1].ContextMap()["indicator"])
	assert.Equal(t, 1e-6, entries[1].ContextMap()["tolerance"])
	assert.Equal(t, assert.AnError.Error(), entries[2].ContextMap()["error"])
}
