package logger_test

import (
	"bytes"
	"testing"

	"github.com/Lutefd/curconv/internal/logger"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestInit_Level(t *testing.T) {
	original := logger.Log
	defer func() { logger.Log = original }()

	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{"debug", "debug", logrus.DebugLevel},
		{"info", "info", logrus.InfoLevel},
		{"error", "error", logrus.ErrorLevel},
		{"unknown falls back to warn", "verbose", logrus.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger.Init(tt.level, &buf)

			assert.Equal(t, tt.expected, logger.Log.GetLevel())
		})
	}
}

func TestInit_UnknownLevelIsReported(t *testing.T) {
	original := logger.Log
	defer func() { logger.Log = original }()

	var buf bytes.Buffer
	logger.Init("verbose", &buf)

	assert.Contains(t, buf.String(), `unknown log level \"verbose\"`)
}

func TestLogger_FiltersByLevel(t *testing.T) {
	original := logger.Log
	defer func() { logger.Log = original }()

	var buf bytes.Buffer
	logger.Init("info", &buf)

	logger.Debugf("hidden %d", 1)
	logger.Infof("fetched %s", "USD")
	logger.Error("Test error message")

	out := buf.String()
	assert.NotContains(t, out, "hidden 1")
	assert.Contains(t, out, "fetched USD")
	assert.Contains(t, out, "Test error message")
	assert.Contains(t, out, "level=error")
}

func TestWithField(t *testing.T) {
	original := logger.Log
	defer func() { logger.Log = original }()

	var buf bytes.Buffer
	logger.Init("debug", &buf)

	logger.WithField("base", "EUR").Debug("fetching rates")

	assert.Contains(t, buf.String(), "base=EUR")
	assert.Contains(t, buf.String(), "fetching rates")
}
