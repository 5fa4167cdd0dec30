/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config carries the orchestrator's settings. Schema auto-creation and
// verbose logging default to off.
type Config struct {
	// StoragePath is the SQLite database file location.
	StoragePath string `yaml:"storagePath"`
	// Entities lists the declared entity type names, for documentation and
	// tooling; registration itself happens in code.
	Entities []string `yaml:"entities,omitempty"`
	// AutoCreateSchema runs create-table-if-absent for every registered
	// entity during initialization.
	AutoCreateSchema bool `yaml:"autoCreateSchema"`
	// VerboseLogging enables debug-level statement logging.
	VerboseLogging bool `yaml:"verboseLogging"`
}

// Validate checks the settings a manager cannot run without.
func (c *Config) Validate() error {
	if c.StoragePath == "" {
		return fmt.Errorf("config: storagePath is required")
	}
	return nil
}

// Load reads a YAML config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}

// FromEnv builds a Config from ENTITYSQL_* environment variables, loading a
// .env file first when one is present.
func FromEnv() (*Config, error) {
	// Missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	cfg := &Config{
		StoragePath: os.Getenv("ENTITYSQL_STORAGE_PATH"),
	}

	var err error
	if cfg.AutoCreateSchema, err = boolEnv("ENTITYSQL_AUTO_CREATE_SCHEMA"); err != nil {
		return nil, err
	}
	if cfg.VerboseLogging, err = boolEnv("ENTITYSQL_VERBOSE_LOGGING"); err != nil {
		return nil, err
	}
	return cfg, nil
}

func boolEnv(key string) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("config: %s=%q is not a boolean: %w", key, raw, err)
	}
	return v, nil
}
