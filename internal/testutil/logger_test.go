package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRecordingLogger(t *testing.T) {
	logger, logs := NewRecordingLogger(t)

	logger.Debug("evaluated", "expression", "1+1")
	logger.Info("repl started")
	logger.With("session", "abc").Warn("evaluation failed")

	assert.Len(t, logs.Lines("evaluated"), 1)
	assert.Contains(t, logs.Lines("evaluated")[0], "expression=1+1")
	assert.Len(t, logs.Lines("repl started"), 1)
	assert.Contains(t, logs.Lines("evaluation failed")[0], "session=abc")
	assert.Empty(t, logs.Lines("missing"))
}
