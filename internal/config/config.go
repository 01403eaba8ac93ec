package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// DefaultAPIURL is the backend origin used when nothing else is configured
const DefaultAPIURL = "http://localhost:5000/api"

// Config holds application configuration
type Config struct {
	// Backend
	APIURL  string `mapstructure:"api_url"`
	Timeout string `mapstructure:"timeout"`

	// Global settings
	Format   string `mapstructure:"format"`
	Quiet    bool   `mapstructure:"quiet"`
	Verbose  bool   `mapstructure:"verbose"`
	LogLevel string `mapstructure:"log_level"`
}

// Default returns a Config with default values
func Default() *Config {
	return &Config{
		APIURL:  DefaultAPIURL,
		Timeout: "60s",
		Format:  "ndjson",
		Quiet:   false,
		Verbose: false,
	}
}

// TimeoutDuration parses Timeout, falling back to 60s when it is unset or invalid.
func (c *Config) TimeoutDuration() time.Duration {
	if c != nil && c.Timeout != "" {
		if d, err := time.ParseDuration(c.Timeout); err == nil && d > 0 {
			return d
		}
	}
	return 60 * time.Second
}

// Load loads configuration from files and environment
// Config file search order (highest precedence first):
// 1. ./.loglens.yaml or ./.loglens.yml
// 2. ~/.loglens.yaml or ~/.loglens.yml
// 3. $XDG_CONFIG_HOME/loglens/config.yaml (or ~/.config/loglens/config.yaml)
// 4. /etc/loglens/config.yaml
//
// A .env file in the working directory is read first; variables already set
// in the environment are not overwritten.
func Load() (*Config, error) {
	cfg, _, err := LoadWithMeta()
	return cfg, err
}

// Meta describes where the effective configuration came from.
type Meta struct {
	ConfigFile string
	EnvFile    string
}

// LoadWithMeta is Load plus provenance information.
func LoadWithMeta() (*Config, *Meta, error) {
	meta := &Meta{}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return nil, nil, err
		}
		meta.EnvFile = ".env"
	}

	cfg := Default()

	configFile := findConfigFile()
	if configFile != "" {
		loaded, err := LoadFromFile(configFile)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
		meta.ConfigFile = configFile
	}

	applyEnvOverrides(cfg)

	return cfg, meta, nil
}

// findConfigFile searches for config file in standard locations
func findConfigFile() string {
	names := []string{".loglens.yaml", ".loglens.yml", "loglens.yaml", "loglens.yml"}

	home, homeErr := os.UserHomeDir()
	configDir, configDirErr := os.UserConfigDir()

	type location struct {
		dir   string
		names []string
	}
	dedicated := append(names[:len(names):len(names)], "config.yaml")

	var searchPaths []location

	cwd, err := os.Getwd()
	if err == nil {
		searchPaths = append(searchPaths, location{cwd, names})
	}
	if homeErr == nil {
		searchPaths = append(searchPaths, location{home, names})
	}
	if configDirErr == nil {
		searchPaths = append(searchPaths, location{filepath.Join(configDir, "loglens"), dedicated})
	}
	searchPaths = append(searchPaths, location{"/etc/loglens", dedicated})

	for _, loc := range searchPaths {
		for _, name := range loc.names {
			path := filepath.Join(loc.dir, name)
			if _, err := os.Stat(path); err == nil {
				return path
			}
		}
	}

	return ""
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LOGLENS_API_URL"); v != "" {
		cfg.APIURL = v
	}
	if v := os.Getenv("LOGLENS_TIMEOUT"); v != "" {
		cfg.Timeout = v
	}
	if v := os.Getenv("LOGLENS_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("LOGLENS_QUIET"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Quiet = b
		}
	}
	if v := os.Getenv("LOGLENS_VERBOSE"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Verbose = b
		}
	}
	if v := os.Getenv("LOGLENS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

// LoadFromFile loads configuration from a specific file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigFile returns the path to the config file that would be loaded
func ConfigFile() string {
	return findConfigFile()
}
