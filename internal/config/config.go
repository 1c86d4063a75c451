package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config represents the flat stockroom configuration
type Config struct {
	DBPath      string `json:"db_path" env:"STOCKROOM_DB_PATH"`
	ReceiptsDir string `json:"receipts_dir" env:"STOCKROOM_RECEIPTS_DIR"`
}

// Dir returns the stockroom configuration directory (~/.stockroom).
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".stockroom"), nil
}

// Default returns the built-in configuration (database and receipts
// under ~/.stockroom).
func Default() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	return &Config{
		DBPath:      filepath.Join(dir, "stockroom.db"),
		ReceiptsDir: filepath.Join(dir, "receipts"),
	}, nil
}

// Load resolves the effective configuration. Resolution order:
// built-in defaults, then ~/.stockroom/config.json if present, then
// STOCKROOM_* environment variables.
func Load() (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	dir, err := Dir()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(dir, "config.json"))
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config environment: %w", err)
	}

	return cfg, nil
}

// Save writes config.json to the stockroom configuration directory.
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, "config.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
