package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/slotcheck/internal/config"
	"github.com/thoreinstein/slotcheck/internal/validator"
)

func TestRunConfigPath(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, runConfigPath(&buf, "/home/u/.config/slotcheck/config.yaml", ""))
	out := buf.String()
	assert.Contains(t, out, "default: /home/u/.config/slotcheck/config.yaml")
	assert.Contains(t, out, "(none, using defaults)")

	buf.Reset()
	require.NoError(t, runConfigPath(&buf, "a", "./config.yaml"))
	assert.Contains(t, buf.String(), "loaded:  ./config.yaml")
}

func TestRunConfigShow(t *testing.T) {
	cfg := config.Default()
	cfg.Sets = map[string][]validator.Definition{
		"pin": {{Kind: validator.KindDigit}},
	}

	var buf bytes.Buffer
	require.NoError(t, runConfigShow(&buf, cfg, "yaml"))

	var got config.Config
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, *cfg, got)

	buf.Reset()
	require.NoError(t, runConfigShow(&buf, cfg, "toml"))
	assert.True(t, strings.Contains(buf.String(), `default_set = 'any'`) ||
		strings.Contains(buf.String(), `default_set = "any"`), buf.String())

	assert.Error(t, runConfigShow(&buf, cfg, "ini"))
}
