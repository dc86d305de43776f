package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("Should write warnings with structured fields", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, zapcore.WarnLevel)
		log.Warn("stale tags", zap.String("baseline", "0.12.0"))
		assert.Contains(t, buf.String(), "WARN")
		assert.Contains(t, buf.String(), "stale tags")
		assert.Contains(t, buf.String(), `"baseline": "0.12.0"`)
	})
	t.Run("Should drop entries below the level", func(t *testing.T) {
		var buf bytes.Buffer
		log := New(&buf, zapcore.WarnLevel)
		log.Info("noise")
		log.Debug("more noise")
		assert.Empty(t, buf.String())
	})
}
