// Package config handles the vault-cli configuration file. It provides
// defaults and load/save helpers for the YAML config.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/7n4xt/Vault-CLI/internal/crypto"
)

// Config is the on-disk YAML configuration.
type Config struct {
	VaultPath          string         `yaml:"vault_path"`
	KDFIterations      int            `yaml:"kdf_iterations"`
	ClipboardTTL       time.Duration  `yaml:"clipboard_ttl"`
	ConfirmDestructive bool           `yaml:"confirm_destructive"`
	Audit              AuditConfig    `yaml:"audit"`
	Generate           GenerateConfig `yaml:"generate"`
}

// AuditConfig controls the optional operation log.
type AuditConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// GenerateConfig holds defaults for the password generator.
type GenerateConfig struct {
	Length    int  `yaml:"length"`
	NoSymbols bool `yaml:"no_symbols"`
	NoUpper   bool `yaml:"no_upper"`
	NoDigits  bool `yaml:"no_digits"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	dataDir := filepath.Join(home, ".local", "share", "vault-cli")
	return &Config{
		VaultPath:          filepath.Join(dataDir, "vault.enc"),
		KDFIterations:      crypto.DefaultIterations,
		ClipboardTTL:       30 * time.Second,
		ConfirmDestructive: true,
		Audit: AuditConfig{
			Enabled: false,
			Path:    filepath.Join(dataDir, "audit.db"),
		},
		Generate: GenerateConfig{
			Length: 16,
		},
	}
}

// LoadConfig loads configuration from path, creating a default config file
// when none exists. An empty path returns the defaults untouched.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		return cfg, nil
	}

	cleanPath := filepath.Clean(path)
	if _, err := os.Stat(cleanPath); os.IsNotExist(err) {
		if err := SaveConfig(cfg, cleanPath); err != nil {
			return cfg, fmt.Errorf("failed to create default config: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.KDFIterations < crypto.MinIterations {
		return cfg, fmt.Errorf("kdf_iterations must be at least %d", crypto.MinIterations)
	}

	return cfg, nil
}

// SaveConfig writes configuration to path, creating the directory if needed.
func SaveConfig(cfg *Config, path string) error {
	cleanPath := filepath.Clean(path)

	if err := os.MkdirAll(filepath.Dir(cleanPath), 0o700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(cleanPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
