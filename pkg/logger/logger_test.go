package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

type logEntry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
	Query   string `json:"query,omitempty"`
}

func TestLogger(t *testing.T) {
	tests := []struct {
		name           string
		verbosityLevel int
		logFunc        func(Logger)
		expectedLevel  string
		expectedMsg    string
		shouldLog      bool
	}{
		{
			name:           "info level with default verbosity",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Info("info message")
			},
			expectedLevel: "info",
			expectedMsg:   "info message",
			shouldLog:     true,
		},
		{
			name:           "debug level with insufficient verbosity",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			shouldLog: false,
		},
		{
			name:           "debug level with sufficient verbosity",
			verbosityLevel: 1,
			logFunc: func(l Logger) {
				l.Debug("debug message")
			},
			expectedLevel: "debug",
			expectedMsg:   "debug message",
			shouldLog:     true,
		},
		{
			name:           "trace level with insufficient verbosity",
			verbosityLevel: 1,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			shouldLog: false,
		},
		{
			name:           "trace level with sufficient verbosity",
			verbosityLevel: 2,
			logFunc: func(l Logger) {
				l.Trace("trace message")
			},
			expectedLevel: "debug",
			expectedMsg:   "TRACE: trace message",
			shouldLog:     true,
		},
		{
			name:           "warn level always shown",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Warn("warn message")
			},
			expectedLevel: "warn",
			expectedMsg:   "warn message",
			shouldLog:     true,
		},
		{
			name:           "error level always shown",
			verbosityLevel: 0,
			logFunc: func(l Logger) {
				l.Error("error message")
			},
			expectedLevel: "error",
			expectedMsg:   "error message",
			shouldLog:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := NewLogger(Config{
				Verbosity: tt.verbosityLevel,
				Output:    &buf,
			})

			tt.logFunc(log)

			if !tt.shouldLog {
				assert.Empty(t, buf.String())
				return
			}

			var entry logEntry
			err := json.Unmarshal(buf.Bytes(), &entry)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, entry.Level)
			assert.Equal(t, tt.expectedMsg, entry.Message)
		})
	}
}

func TestLoggerWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(Config{
		Verbosity: 0,
		Output:    &buf,
	})

	log.WithFields(Fields{
		"query": "duct",
	}).Info("search completed")

	var entry logEntry
	err := json.Unmarshal(buf.Bytes(), &entry)
	assert.NoError(t, err)
	assert.Equal(t, "info", entry.Level)
	assert.Equal(t, "search completed", entry.Message)
	assert.Equal(t, "duct", entry.Query)
}

func TestLoggerDefaultOutput(t *testing.T) {
	// Must not panic when no output writer is configured
	log := NewLogger(Config{Verbosity: 0})
	assert.NotNil(t, log)
}
