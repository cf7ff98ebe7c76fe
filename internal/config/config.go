// internal/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/slices/internal/logger"
)

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Demo   DemoConfig    `toml:"demo"`
}

// DemoConfig controls the walkthrough printed by the binary.
type DemoConfig struct {
	Text          string `toml:"text"`
	Graphemes     bool   `toml:"graphemes"`
	CopyFirstWord bool   `toml:"copy_first_word"`
}

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Demo: DemoConfig{
			Text:          DefaultText,
			Graphemes:     DefaultGraphemes,
			CopyFirstWord: DefaultCopyFirstWord,
		},
	}
}

// DefaultPath returns the per-user config file location, or "" if unknown.
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, AppName, DefaultConfigFileName)
}

// fileConfig mirrors Config with pointers so unset keys can be told apart from zero values.
type fileConfig struct {
	Logger logger.Config `toml:"logger"`
	Demo   struct {
		Text          *string `toml:"text"`
		Graphemes     *bool   `toml:"graphemes"`
		CopyFirstWord *bool   `toml:"copy_first_word"`
	} `toml:"demo"`
}

// loadFromFile decodes filePath into fc. A missing file is not an error.
// It returns the keys the file set that Config does not know about.
func loadFromFile(filePath string, fc *fileConfig) ([]string, error) {
	_, err := os.Stat(filePath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, fc)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	var undecoded []string
	for _, key := range metadata.Undecoded() {
		undecoded = append(undecoded, key.String())
	}
	return undecoded, nil
}

func (c *Config) merge(fc *fileConfig) {
	if fc.Logger.LogLevel != "" {
		c.Logger.LogLevel = fc.Logger.LogLevel
	}
	if fc.Logger.LogFilePath != "" {
		c.Logger.LogFilePath = fc.Logger.LogFilePath
	}
	if len(fc.Logger.EnabledTags) > 0 {
		c.Logger.EnabledTags = fc.Logger.EnabledTags
	}
	if len(fc.Logger.DisabledTags) > 0 {
		c.Logger.DisabledTags = fc.Logger.DisabledTags
	}
	if len(fc.Logger.EnabledPackages) > 0 {
		c.Logger.EnabledPackages = fc.Logger.EnabledPackages
	}
	if len(fc.Logger.DisabledPackages) > 0 {
		c.Logger.DisabledPackages = fc.Logger.DisabledPackages
	}
	if fc.Demo.Text != nil {
		c.Demo.Text = *fc.Demo.Text
	}
	if fc.Demo.Graphemes != nil {
		c.Demo.Graphemes = *fc.Demo.Graphemes
	}
	if fc.Demo.CopyFirstWord != nil {
		c.Demo.CopyFirstWord = *fc.Demo.CopyFirstWord
	}
}

// validate resets invalid values to defaults.
func (c *Config) validate() {
	defaults := NewDefaultConfig()
	if _, ok := logger.ParseLevel(c.Logger.LogLevel); !ok {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Result carries the loaded configuration and diagnostics that could not be
// logged because the logger is configured from the result itself.
type Result struct {
	Config    *Config
	Path      string
	Undecoded []string
}

// LoadConfig merges defaults, the TOML file, and flag overrides, then validates.
// An empty configFilePath selects DefaultPath.
func LoadConfig(configFilePath string, flags *Flags) (*Result, error) {
	cfg := NewDefaultConfig()
	res := &Result{Config: cfg, Path: configFilePath}
	if res.Path == "" {
		res.Path = DefaultPath()
	}

	if res.Path != "" {
		var fc fileConfig
		undecoded, err := loadFromFile(res.Path, &fc)
		if err != nil {
			return res, err
		}
		res.Undecoded = undecoded
		cfg.merge(&fc)
	}

	if flags != nil {
		flags.ApplyOverrides(cfg)
	}

	cfg.validate()
	return res, nil
}

// Report logs load diagnostics once the logger is ready.
func (r *Result) Report() {
	if r == nil {
		return
	}
	if r.Path != "" {
		logger.DebugTagf("config", "Configuration path: %s", r.Path)
	}
	if len(r.Undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", r.Path, r.Undecoded)
	}
}
