package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level spendlog.yaml configuration.
type Config struct {
	Profile  ProfileConfig  `yaml:"profile"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Git      GitConfig      `yaml:"git"`
}

// ProfileConfig identifies the ledger owner.
type ProfileConfig struct {
	Name string `yaml:"name"`
}

// DefaultsConfig sets per-entry-point defaults.
type DefaultsConfig struct {
	UploadAccount string `yaml:"upload_account"` // account name for CSV imports
	PasteAccount  string `yaml:"paste_account"`  // account name for pasted text
	RecentLimit   int    `yaml:"recent_limit"`
}

// GitConfig controls git integration for the ledger root.
type GitConfig struct {
	AutoCommit  bool   `yaml:"auto_commit"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a spendlog.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new ledger.
func Default(profileName string) *Config {
	return &Config{
		Profile: ProfileConfig{
			Name: profileName,
		},
		Defaults: DefaultsConfig{
			UploadAccount: "Upload",
			PasteAccount:  "Pasted",
			RecentLimit:   25,
		},
		// Versioning the ledger is opt-in; not everyone wants a git
		// repo in their finance folder.
		Git: GitConfig{
			AutoCommit:  false,
			AuthorName:  "Spendlog",
			AuthorEmail: "ledger@spendlog.dev",
		},
	}
}
