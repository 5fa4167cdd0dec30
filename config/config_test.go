/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "entitysql.yaml")
	body := `storagePath: /tmp/app.db
entities:
  - User
  - Order
autoCreateSchema: true
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.StoragePath != "/tmp/app.db" {
		t.Errorf("StoragePath = %q", cfg.StoragePath)
	}
	if len(cfg.Entities) != 2 || cfg.Entities[0] != "User" {
		t.Errorf("Entities = %v", cfg.Entities)
	}
	if !cfg.AutoCreateSchema {
		t.Error("AutoCreateSchema should be true")
	}
	if cfg.VerboseLogging {
		t.Error("VerboseLogging should default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidateRequiresStoragePath(t *testing.T) {
	cfg := &Config{}
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for empty storagePath")
	}
}

func TestFromEnv(t *testing.T) {
	t.Setenv("ENTITYSQL_STORAGE_PATH", "/tmp/env.db")
	t.Setenv("ENTITYSQL_AUTO_CREATE_SCHEMA", "true")
	t.Setenv("ENTITYSQL_VERBOSE_LOGGING", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.StoragePath != "/tmp/env.db" {
		t.Errorf("StoragePath = %q", cfg.StoragePath)
	}
	if !cfg.AutoCreateSchema {
		t.Error("AutoCreateSchema should be true")
	}
	if cfg.VerboseLogging {
		t.Error("VerboseLogging should default to false")
	}
}

func TestFromEnvRejectsBadBool(t *testing.T) {
	t.Setenv("ENTITYSQL_STORAGE_PATH", "/tmp/env.db")
	t.Setenv("ENTITYSQL_AUTO_CREATE_SCHEMA", "maybe")

	if _, err := FromEnv(); err == nil {
		t.Error("expected error for non-boolean value")
	}
}
