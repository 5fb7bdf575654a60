package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vitalog-app/vitalog/internal/constants"
)

// Function variable for testing
var userHomeDirFunc = os.UserHomeDir

// Config holds startup options read from the optional config file. Runtime
// tunables (poll interval, tolerance, snooze) live in the settings table
// instead so they travel with the database.
type Config struct {
	// Database is a SQLite file path or a PostgreSQL connection string.
	Database string `yaml:"database"`
	// Debug enables debug-level logging.
	Debug bool `yaml:"debug"`
	// Timezone overrides the timezone stored in settings, e.g. for a
	// machine that roams across zones. Empty means use settings.
	Timezone string `yaml:"timezone"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	home, err := userHomeDirFunc()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".config", constants.AppName, "config.yaml"), nil
}

// Load reads the config file at path, or the default location when path is
// empty. A missing file is not an error; defaults are returned.
func Load(path string) (Config, error) {
	cfg := Config{}

	if path == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, err
		}
		path = defaultPath
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		applyDefaults(&cfg)
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)
	return cfg, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Database == "" {
		cfg.Database = constants.DefaultConfigPath
	}
	cfg.Database = ExpandHome(cfg.Database)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
// Connection strings and absolute paths pass through unchanged.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := userHomeDirFunc()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
