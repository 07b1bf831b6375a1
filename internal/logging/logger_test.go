package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, "warn", GetLogLevel())

	t.Setenv(EnvLogLevel, "debug")
	assert.Equal(t, "debug", GetLogLevel())
}

func TestNewLogger_Level(t *testing.T) {
	t.Setenv(EnvJSONLog, "")

	var buf bytes.Buffer

	log := NewLogger("vkgen", "warn", &buf)
	assert.Equal(t, hclog.Warn, log.GetLevel())

	log.Info("hidden")
	log.Warn("shown", "enum", "VkResult")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "[WARN]  vkgen: shown: enum=VkResult")
}

func TestNewLogger_JSON(t *testing.T) {
	t.Setenv(EnvJSONLog, "1")

	var buf bytes.Buffer

	NewLogger("vkgen", "info", &buf).Info("resolved", "enums", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "resolved", entry["@message"])
	assert.Equal(t, "vkgen", entry["@module"])
	assert.InDelta(t, 3, entry["enums"], 0)
}
