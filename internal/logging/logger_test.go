package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)

	logger.Debug("hidden")
	logger.Info("batch finished", "error", errors.New("boom"), "elapsed", 1500*time.Millisecond)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "err=boom")
	assert.Contains(t, out, "elapsed=1.5s")
}

func TestLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, Level(true))
	assert.Equal(t, slog.LevelWarn, Level(false))
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Error("ignored") })
}
