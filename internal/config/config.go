// Package config loads settings for the vlist demo renderer.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo configuration.
type Config struct {
	Items    []ItemConfig   `mapstructure:"items"`
	Generate GenerateConfig `mapstructure:"generate"`
	Debug    DebugConfig    `mapstructure:"debug"`
}

// ItemConfig declares one hand-written list item.
type ItemConfig struct {
	Key   string `mapstructure:"key"`
	Title string `mapstructure:"title"`
	Body  string `mapstructure:"body"`
	// Size is the fixed height in rows. Nil means the default height,
	// unless Fit is set.
	Size *int `mapstructure:"size"`
	// Fit sizes the item to its title plus body lines.
	Fit bool `mapstructure:"fit"`
}

// GenerateConfig controls the generated tail of the list.
type GenerateConfig struct {
	Count   int    `mapstructure:"count"`
	MinSize int    `mapstructure:"min_size"`
	MaxSize int    `mapstructure:"max_size"`
	Seed    uint64 `mapstructure:"seed"`
}

// DebugConfig holds debug logging settings.
type DebugConfig struct {
	LogPath string `mapstructure:"log_path"`
}

// Load reads configuration from file and env. Env var overrides use prefix VLIST_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("generate.count", 500)
	v.SetDefault("generate.min_size", 1)
	v.SetDefault("generate.max_size", 6)
	v.SetDefault("generate.seed", 1)
	v.SetDefault("debug.log_path", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("VLIST_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "vlist"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("VLIST")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks value ranges. Item keys are not checked here; the list
// reports missing keys itself.
func (c Config) Validate() error {
	g := c.Generate
	if g.Count < 0 {
		return fmt.Errorf("generate.count must be >= 0, got %d", g.Count)
	}
	if g.MinSize < 0 || g.MaxSize < g.MinSize {
		return fmt.Errorf("generate sizes must satisfy 0 <= min_size <= max_size, got %d..%d", g.MinSize, g.MaxSize)
	}
	return nil
}
