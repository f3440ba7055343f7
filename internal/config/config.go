// Package config loads putaway configuration from an optional YAML file with
// environment variable fallbacks.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Backend selector values.
const (
	BackendOllama     = "ollama"
	BackendOpenRouter = "openrouter"
)

// Config selects and parameterizes the reasoning backend and the local
// stores. Every field is optional: the zero config means the built-in zone
// catalog and the hosted backend, which degrades to the deterministic
// fallback when no credential is present.
type Config struct {
	Backend   string `yaml:"backend"`    // ollama or openrouter
	Model     string `yaml:"model"`      // backend model identifier
	BaseURL   string `yaml:"base_url"`   // endpoint override
	APIKey    string `yaml:"api_key"`    // hosted-API credential
	ZonesPath string `yaml:"zones_path"` // zone catalog YAML override
	DBPath    string `yaml:"db_path"`    // audit log database
}

// Load reads configuration from path, or from environment variables alone
// when path is empty. ${VAR} references in the file are expanded before
// parsing. Environment variables fill any field the file leaves empty:
// PUTAWAY_BACKEND, PUTAWAY_MODEL, PUTAWAY_BASE_URL, OPENROUTER_API_KEY,
// PUTAWAY_ZONES, PUTAWAY_DB.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal([]byte(os.ExpandEnv(string(raw))), &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	cfg.applyEnv()
	if cfg.Backend == "" {
		cfg.Backend = BackendOpenRouter
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() {
	setIfEmpty(&c.Backend, "PUTAWAY_BACKEND")
	setIfEmpty(&c.Model, "PUTAWAY_MODEL")
	setIfEmpty(&c.BaseURL, "PUTAWAY_BASE_URL")
	setIfEmpty(&c.APIKey, "OPENROUTER_API_KEY")
	setIfEmpty(&c.ZonesPath, "PUTAWAY_ZONES")
	setIfEmpty(&c.DBPath, "PUTAWAY_DB")
}

func setIfEmpty(dst *string, env string) {
	if *dst == "" {
		*dst = os.Getenv(env)
	}
}

// Validate rejects unknown backend selectors.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendOllama, BackendOpenRouter:
		return nil
	default:
		return fmt.Errorf("unknown backend %q (want %s or %s)", c.Backend, BackendOllama, BackendOpenRouter)
	}
}

// EffectiveDBPath returns the audit database path, defaulting to
// ~/.putaway/putaway.db.
func (c Config) EffectiveDBPath() string {
	if c.DBPath != "" {
		return c.DBPath
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".putaway", "putaway.db")
}
