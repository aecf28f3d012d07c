// ABOUTME: Configuration loading for the converter.
// ABOUTME: YAML file under XDG config paths, merged over defaults.

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds everything the convert pipeline needs outside the export
// directory itself.
type Config struct {
	// CredentialsFile is the OAuth client secrets JSON.
	CredentialsFile string `yaml:"credentials_file"`

	// TokenFile caches the exchanged OAuth token.
	TokenFile string `yaml:"token_file"`

	// DriveFolderID is an optional parent folder for uploaded attachments.
	DriveFolderID string `yaml:"drive_folder_id,omitempty"`

	// DocTitle is the default document title.
	DocTitle string `yaml:"doc_title"`

	// CachePath is the Badger upload cache directory.
	CachePath string `yaml:"cache_path"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		CredentialsFile: "credentials.json",
		TokenFile:       "token.json",
		DocTitle:        "Slack Conversation Log",
		CachePath:       filepath.Join(DataDir(), "uploads"),
	}
}

// ConfigDir returns the configuration directory path.
func ConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, _ := os.UserHomeDir()
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "slackdump2markdown")
}

// DataDir returns the data directory path (upload cache lives here).
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "slackdump2markdown")
}

// DefaultPath returns the default config file path.
func DefaultPath() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

// Load reads the config at path, or defaults if the file does not exist. An
// empty path means the default location.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // Config path is user-specified
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the config to its default location.
func Save(cfg *Config) error {
	if err := os.MkdirAll(ConfigDir(), 0750); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(DefaultPath(), data, 0600)
}
