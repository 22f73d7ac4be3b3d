package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestSetLoggerRestore(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	restore := SetLogger(zap.New(core))

	Info("lookup done", zap.String("zipcode", "01310-100"))
	Debug("hidden")

	restore()
	Info("after restore")

	assert.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "lookup done", entry.Message)
	assert.Equal(t, "01310-100", entry.ContextMap()["zipcode"])
}

func TestSetupLoggerLevel(t *testing.T) {
	defer SetLogger(Logger())()

	l := SetupLogger("prod", "warn")

	assert.Same(t, l, Logger())
	assert.False(t, l.Core().Enabled(zap.InfoLevel))
	assert.True(t, l.Core().Enabled(zap.WarnLevel))
}
