package internal

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	level, ok := ParseLogLevel(" debug ")
	assert.True(t, ok)
	assert.Equal(t, LogLevelDebug, level)
	assert.Equal(t, "DEBUG", level.String())

	_, ok = ParseLogLevel("verbose")
	assert.False(t, ok)

	for _, level := range []LogLevel{LogLevelError, LogLevelWarn, LogLevelInfo, LogLevelDebug, LogLevelTrace} {
		parsed, ok := ParseLogLevel(level.String())
		assert.True(t, ok)
		assert.Equal(t, level, parsed)
	}
	assert.Equal(t, "UNKNOWN", LogLevel(42).String())
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLoggerTo(&buf, LogLevelWarn).WithComponent("boxplot")

	logger.Debug("hidden %d", 1)
	logger.Info("hidden too")
	logger.Warn("column %s is empty", "age")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN] [boxplot] column age is empty")
}
