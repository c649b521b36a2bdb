package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalErrors "github.com/bastiangx/phonecode/internal/errors"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, filepath.Join("testdata", "words.txt"), cfg.Input.Words)
	assert.Equal(t, filepath.Join("testdata", "numbers.txt"), cfg.Input.Numbers)
	assert.Equal(t, 1, cfg.Search.Workers)
	assert.Equal(t, "text", cfg.Output.Format)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
[input]
words = "/data/dict.txt.gz"

[search]
workers = 8

[output]
format = "msgpack"
show_unencodable = true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/data/dict.txt.gz", cfg.Input.Words)
	assert.Equal(t, filepath.Join("testdata", "numbers.txt"), cfg.Input.Numbers, "unset keys keep defaults")
	assert.Equal(t, 8, cfg.Search.Workers)
	assert.Equal(t, 1024, cfg.Search.CacheSize)
	assert.Equal(t, "msgpack", cfg.Output.Format)
	assert.True(t, cfg.Output.ShowUnencodable)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadConfigPartialRecovery(t *testing.T) {
	path := writeConfig(t, `
[search]
workers = "many"
cache_size = 16

[log]
level = "debug"
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Search.Workers, "bad value falls back to default")
	assert.Equal(t, 16, cfg.Search.CacheSize)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadConfigSyntaxError(t *testing.T) {
	path := writeConfig(t, "[search\nworkers = ")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigMissing(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, internalErrors.ErrIO))
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	cfg, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.FileExists(t, path)

	// a second call reads what the first one wrote
	again, err := InitConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, again)
}

func TestSaveConfigRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Search.Workers = 3
	cfg.Output.Format = "msgpack"

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, SaveConfig(cfg, path))

	loaded, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadConfigWithPriority(t *testing.T) {
	custom := writeConfig(t, "[search]\nworkers = 2\n")
	def := writeConfig(t, "[search]\nworkers = 3\n")

	cfg, used, err := LoadConfigWithPriority(custom, def)
	require.NoError(t, err)
	assert.Equal(t, custom, used)
	assert.Equal(t, 2, cfg.Search.Workers)

	cfg, used, err = LoadConfigWithPriority(filepath.Join(t.TempDir(), "missing.toml"), def)
	require.NoError(t, err)
	assert.Equal(t, def, used)
	assert.Equal(t, 3, cfg.Search.Workers)

	cfg, used, err = LoadConfigWithPriority("", filepath.Join(t.TempDir(), "missing.toml"))
	require.NoError(t, err)
	assert.Equal(t, "", used)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"no words", func(c *Config) { c.Input.Words = "" }, "input.words"},
		{"no numbers", func(c *Config) { c.Input.Numbers = "" }, "input.numbers"},
		{"zero workers", func(c *Config) { c.Search.Workers = 0 }, "search.workers"},
		{"negative cache", func(c *Config) { c.Search.CacheSize = -1 }, "search.cache_size"},
		{"unknown format", func(c *Config) { c.Output.Format = "csv" }, "output.format"},
		{"unknown level", func(c *Config) { c.Log.Level = "chatty" }, "log.level"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.modify(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, internalErrors.ErrInvalidConfig))

			var cfgErr *internalErrors.ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tc.field, cfgErr.Field)
		})
	}
}
