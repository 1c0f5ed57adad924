package logger_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"catalog/internal/logger"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zerolog.WarnLevel, logger.ParseLevel(" WARN "))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, logger.ParseLevel("loud"))
}

func TestNewWithWriter_FiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewWithWriter(&buf, "warn")

	l.Info().Msg("hidden")
	l.Warn().Msg("shown")

	var line struct {
		Level   string `json:"level"`
		Service string `json:"service"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "warn", line.Level)
	assert.Equal(t, "catalog", line.Service)
	assert.Equal(t, "shown", line.Message)
}

func TestParseLevel_Trace(t *testing.T) {
	assert.Equal(t, zerolog.TraceLevel, logger.ParseLevel(zerolog.LevelTraceValue))
}
