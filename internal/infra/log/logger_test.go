package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"storefront/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_AddsServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "storefront"
	cfg.Env.Env = "staging"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "storefront", line["service"])
	assert.Equal(t, "staging", line["env"])
}

func TestParseLogLevel_Unknown(t *testing.T) {
	_, err := parseLogLevel("verbose")

	assert.Error(t, err)
}
