// Package config loads the atlas application configuration.
//
// Configuration sources (in order of precedence):
//  1. Environment variables (ATLAS_* prefix)
//  2. Project config (./atlas.toml, searched upward)
//  3. User config (~/.atlas/atlas.toml)
//  4. System config (/etc/atlas/atlas.toml)
//  5. Default values
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/atlas/errors"
)

// Config represents the atlas application configuration.
type Config struct {
	Assets AssetsConfig `mapstructure:"assets"`
	Log    LogConfig    `mapstructure:"log"`
}

// AssetsConfig configures the asset store built at startup.
type AssetsConfig struct {
	// Dir is an extra global-scope asset directory, registered on top of
	// the ATLAS_ASSET_DIR / system directory bootstrap.
	Dir string `mapstructure:"dir"`

	// UserDir is an extra user-scope asset directory.
	UserDir string `mapstructure:"user_dir"`

	// Environments lists static environment tags activated for every
	// resolution, in order.
	Environments []string `mapstructure:"environments"`

	// Watch enables the directory watcher that clears provider caches
	// when card files change on disk.
	Watch bool `mapstructure:"watch"`
}

// LogConfig configures the global logger.
type LogConfig struct {
	// JSON selects machine-readable JSON output over console output.
	JSON bool `mapstructure:"json"`
}

var (
	globalConfig  *Config
	viperInstance *viper.Viper
)

// Load reads the atlas configuration, caching the result.
func Load() (*Config, error) {
	if globalConfig != nil {
		return globalConfig, nil
	}

	v := initViper()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	globalConfig = &config
	return globalConfig, nil
}

// LoadFromFile loads configuration from a specific file path, bypassing
// the merge cascade.
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal config from %s", configPath)
	}

	return &config, nil
}

// GetViper returns the Viper instance for advanced configuration access.
func GetViper() *viper.Viper {
	return initViper()
}

// Reset clears the cached configuration (useful for testing).
func Reset() {
	globalConfig = nil
	viperInstance = nil
}

// SetDefaults configures default values for all configuration options.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("assets.dir", "")
	v.SetDefault("assets.user_dir", "")
	v.SetDefault("assets.environments", []string{})
	v.SetDefault("assets.watch", false)

	v.SetDefault("log.json", false)
}

func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	v.SetEnvPrefix("ATLAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	// Merge config files in precedence order: system < user < project.
	mergeConfigFiles(v)

	viperInstance = v
	return v
}

// findProjectConfig searches for atlas.toml by walking up the directory
// tree from the working directory.
func findProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		configPath := filepath.Join(dir, "atlas.toml")
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func mergeConfigFiles(v *viper.Viper) {
	homeDir, _ := os.UserHomeDir()

	configPaths := []string{
		"/etc/atlas/atlas.toml",
		filepath.Join(homeDir, ".atlas", "atlas.toml"),
	}

	if projectConfig := findProjectConfig(); projectConfig != "" {
		configPaths = append(configPaths, projectConfig)
	}

	for _, configPath := range configPaths {
		if _, err := os.Stat(configPath); err != nil {
			continue
		}

		fileViper := viper.New()
		fileViper.SetConfigFile(configPath)
		fileViper.SetConfigType("toml")

		if err := fileViper.ReadInConfig(); err != nil {
			continue
		}

		for key, value := range fileViper.AllSettings() {
			v.Set(key, value)
		}
	}
}
