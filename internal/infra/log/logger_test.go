package logs

import (
	"bytes"
	"encoding/json"
	"testing"

	"macrolog/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_JSONWithServiceAttr(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "macrolog"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := build(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["msg"])
	assert.Equal(t, "macrolog", line["service"])
}

func TestBuild_UnknownLevel(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Level = "verbose"

	_, err := build(&bytes.Buffer{}, cfg)

	assert.Error(t, err)
}
