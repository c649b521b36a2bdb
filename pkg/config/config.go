/*
Package config manages TOML config for phonecode runs.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	internalErrors "github.com/bastiangx/phonecode/internal/errors"
	"github.com/bastiangx/phonecode/internal/utils"
	"github.com/bastiangx/phonecode/pkg/output"
)

// DefaultFileName is the config file looked up in the user config dir
const DefaultFileName = "config.toml"

// Config holds the entire config structure
type Config struct {
	Input  InputConfig  `toml:"input"`
	Search SearchConfig `toml:"search"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// InputConfig names the two input lists.
type InputConfig struct {
	Words   string `toml:"words"`
	Numbers string `toml:"numbers"`
}

// SearchConfig holds search options.
type SearchConfig struct {
	Workers   int `toml:"workers"`
	CacheSize int `toml:"cache_size"`
}

// OutputConfig holds output options.
type OutputConfig struct {
	Format          string `toml:"format"`
	ShowUnencodable bool   `toml:"show_unencodable"`
}

// LogConfig holds logging options.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			Words:   filepath.Join("testdata", "words.txt"),
			Numbers: filepath.Join("testdata", "numbers.txt"),
		},
		Search: SearchConfig{
			Workers:   1,
			CacheSize: 1024,
		},
		Output: OutputConfig{
			Format:          output.FormatText,
			ShowUnencodable: false,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate reports the first config value that cannot be used.
func (c *Config) Validate() error {
	if c.Input.Words == "" {
		return internalErrors.NewConfigError("input.words", "must not be empty")
	}
	if c.Input.Numbers == "" {
		return internalErrors.NewConfigError("input.numbers", "must not be empty")
	}
	if c.Search.Workers < 1 {
		return internalErrors.NewConfigError("search.workers", "must be at least 1")
	}
	if c.Search.CacheSize < 0 {
		return internalErrors.NewConfigError("search.cache_size", "must not be negative")
	}
	known := false
	for _, f := range output.Formats() {
		if c.Output.Format == f {
			known = true
			break
		}
	}
	if !known {
		return internalErrors.NewConfigError("output.format", "unknown format "+c.Output.Format)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return internalErrors.NewConfigError("log.level", err.Error())
	}
	return nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/phonecode/config.toml, if it exists
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath, defaultPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr != nil {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		} else {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				return nil, "", err
			}
			log.Debugf("Loaded config from custom path: %s", customConfigPath)
			return config, customConfigPath, nil
		}
	}

	if defaultPath != "" && utils.FileExists(defaultPath) {
		config, err := LoadConfig(defaultPath)
		if err != nil {
			return nil, "", err
		}
		log.Debugf("Loaded config from default path: %s", defaultPath)
		return config, defaultPath, nil
	}

	log.Debug("No config file found, using builtin defaults")
	return DefaultConfig(), "", nil
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	if err := utils.EnsureDir(filepath.Dir(configPath)); err != nil {
		return nil, internalErrors.NewIOError("mkdir", filepath.Dir(configPath), err)
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, internalErrors.NewIOError("write", configPath, err)
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}
	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file.
// Unset keys keep their defaults. A file that does not parse as a whole is
// recovered section by section; a file that cannot be read at all is an error.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, internalErrors.NewIOError("open", configPath, err)
	}

	config := DefaultConfig()
	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse attempts to parse a TOML file
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "input"); ok {
		extractInputConfig(section, &config.Input)
	}
	if section, ok := utils.ExtractSection(tempConfig, "search"); ok {
		extractSearchConfig(section, &config.Search)
	}
	if section, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(section, &config.Output)
	}
	if section, ok := utils.ExtractSection(tempConfig, "log"); ok {
		extractLogConfig(section, &config.Log)
	}
	return config, nil
}

// extractInputConfig extracts input configuration from a map
func extractInputConfig(data map[string]any, input *InputConfig) {
	if val, ok := utils.ExtractString(data, "words"); ok {
		input.Words = val
	}
	if val, ok := utils.ExtractString(data, "numbers"); ok {
		input.Numbers = val
	}
}

// extractSearchConfig extracts search configuration from a map
func extractSearchConfig(data map[string]any, search *SearchConfig) {
	if val, ok := utils.ExtractInt64(data, "workers"); ok {
		search.Workers = val
	}
	if val, ok := utils.ExtractInt64(data, "cache_size"); ok {
		search.CacheSize = val
	}
}

// extractOutputConfig extracts output configuration from a map
func extractOutputConfig(data map[string]any, out *OutputConfig) {
	if val, ok := utils.ExtractString(data, "format"); ok {
		out.Format = val
	}
	if val, ok := utils.ExtractBool(data, "show_unencodable"); ok {
		out.ShowUnencodable = val
	}
}

// extractLogConfig extracts logging configuration from a map
func extractLogConfig(data map[string]any, l *LogConfig) {
	if val, ok := utils.ExtractString(data, "level"); ok {
		l.Level = val
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
