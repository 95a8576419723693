package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"nagarsetu/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSON(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "nagarsetu"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := NewWithWriter(cfg, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", "stops", 3)

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "nagarsetu", record["service"])
	assert.Equal(t, "develop", record["env"])
	assert.EqualValues(t, 3, record["stops"])
}

func TestNewWithWriter_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := NewWithWriter(cfg, &bytes.Buffer{})
	assert.Error(t, err)
}

func TestParseLogLevel_DefaultsToInfo(t *testing.T) {
	level, err := parseLogLevel("")
	require.NoError(t, err)
	assert.Equal(t, "INFO", level.String())
}
