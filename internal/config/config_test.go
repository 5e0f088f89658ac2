package config_test

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2024/internal/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoc2024.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.GreaterOrEqual(t, cfg.Workers, 1)
	assert.False(t, cfg.Human)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := writeFile(t, "log_level: debug\nworkers: 3\nhuman: true\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, &config.Config{LogLevel: "debug", LogFormat: "text", Workers: 3, Human: true}, cfg)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, ""))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	_, err = config.Load(writeFile(t, "log_levle: debug\n"))
	assert.Error(t, err, "unknown key")

	_, err = config.Load(writeFile(t, "workers: [1\n"))
	assert.Error(t, err, "bad yaml")

	_, err = config.Load(writeFile(t, "log_format: xml\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		mod  func(*config.Config)
	}{
		{"level", func(c *config.Config) { c.LogLevel = "trace" }},
		{"format", func(c *config.Config) { c.LogFormat = "" }},
		{"workers", func(c *config.Config) { c.Workers = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mod(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}
