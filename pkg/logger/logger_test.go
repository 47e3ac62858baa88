package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"ecertify/pkg/logger"
	"ecertify/pkg/utilities/timeutil"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFromConfig(t *testing.T) {
	tests := []struct {
		name     string
		config   logger.LoggerConfig
		expected zerolog.Level
	}{
		{"Default log level when no level specified", logger.LoggerConfig{LogLevel: zerolog.NoLevel}, zerolog.InfoLevel},
		{"Debug log level", logger.LoggerConfig{LogLevel: zerolog.DebugLevel}, zerolog.DebugLevel},
		{"Error log level", logger.LoggerConfig{LogLevel: zerolog.ErrorLevel}, zerolog.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := logger.NewFromConfig(tt.config)
			require.NotNil(t, l)
			assert.Equal(t, tt.expected, l.Level())
		})
	}
}

func TestLoggerWithLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.ErrorLevel)

	l.Info("info message")
	l.Error(errors.New("test error"), "error message")

	output := buf.String()
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "error message")
	assert.Contains(t, output, "test error")
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name  string
		write func(l *logger.Logger)
		msg   string
		level string
	}{
		{"debug", func(l *logger.Logger) { l.Debug("debug message") }, "debug message", "debug"},
		{"debugf", func(l *logger.Logger) { l.Debugf("debug message with %s", "formatting") }, "debug message with formatting", "debug"},
		{"info", func(l *logger.Logger) { l.Info("info message") }, "info message", "info"},
		{"infof", func(l *logger.Logger) { l.Infof("info message with %d items", 5) }, "info message with 5 items", "info"},
		{"warn", func(l *logger.Logger) { l.Warn("warning message") }, "warning message", "warn"},
		{"warnf", func(l *logger.Logger) { l.Warnf("warning message with %s", "details") }, "warning message with details", "warn"},
		{"errorf", func(l *logger.Logger) { l.Errorf(errors.New("boom"), "error with %s", "context") }, "error with context", "error"},
		{"log", func(l *logger.Logger) { l.Log(zerolog.WarnLevel, "custom level message") }, "custom level message", "warn"},
		{"logf", func(l *logger.Logger) { l.Logf(zerolog.InfoLevel, "custom %d", 42) }, "custom 42", "info"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			l := logger.New().WithOutput(&buf).WithLevel(zerolog.DebugLevel)

			tt.write(l)

			output := buf.String()
			assert.Contains(t, output, tt.msg)
			assert.Contains(t, output, `"level":"`+tt.level+`"`)
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithFields(map[string]string{"component": "directory"})

	l.Info("registered")

	assert.Contains(t, buf.String(), `"component":"directory"`)
}

func TestLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf)

	l.Info("test json format")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(strings.TrimSpace(buf.String())), &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "test json format", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestLoggerSink(t *testing.T) {
	var (
		mu       sync.Mutex
		received []string
		levels   []zerolog.Level
	)

	var buf bytes.Buffer
	l := logger.New().WithOutput(&buf).WithLevel(zerolog.InfoLevel)
	logger.AddSinkToLoggerInstance(l, func(msg string, level zerolog.Level, _ timeutil.TimeUTC) {
		mu.Lock()
		defer mu.Unlock()
		received = append(received, msg)
		levels = append(levels, level)
	})

	l.Debug("filtered out")
	l.Infof("certificate %d approved", 7)
	l.Error(errors.New("x"), "store failed")

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"certificate 7 approved", "store failed"}, received)
	assert.Equal(t, []zerolog.Level{zerolog.InfoLevel, zerolog.ErrorLevel}, levels)
}

func TestDefaultLogger(t *testing.T) {
	logger.InitDefaultLogger(logger.GlobalLoggerConfig{
		Args: []logger.LoggerArg{{Key: "service", Value: "test"}},
	})

	assert.NotNil(t, logger.Default())
}

func TestLoggerConfigConvertToDomain(t *testing.T) {
	cfg := logger.LoggerConfigJson{LogLevel: int8(zerolog.WarnLevel)}
	assert.Equal(t, zerolog.WarnLevel, cfg.ConvertToDomain().LogLevel)
}
