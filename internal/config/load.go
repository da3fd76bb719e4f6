package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
)

// DefaultPath returns the configuration file location under the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "contrast", "config.toml"), nil
}

// Load reads the configuration at path. Keys missing from the file keep
// their Default values. The result is validated.
func Load(path string, logger hclog.Logger) (*Config, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", path, err)
	}

	logger.Debug("loading configuration", "path", path)
	cfg := Default()
	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	for _, key := range meta.Undecoded() {
		logger.Warn("unknown configuration key", "key", key.String(), "path", path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Debug("configuration loaded", "foreground", cfg.Foreground, "background", cfg.Background)
	return cfg, nil
}

// LoadOrDefault behaves like Load but returns Default when the file is missing.
func LoadOrDefault(path string, logger hclog.Logger) (*Config, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	cfg, err := Load(path, logger)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, ErrConfigNotFound) {
		logger.Debug("no configuration file, using defaults", "path", path)
		return Default(), nil
	}
	return nil, err
}

// Save writes cfg to path, creating parent directories as needed.
func Save(path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write config file %s: %w", path, err)
	}
	return nil
}
