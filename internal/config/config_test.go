// ABOUTME: Tests for config loading and defaults.
// ABOUTME: Validates YAML parsing and merge-over-defaults behavior.

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DocTitle != "Slack Conversation Log" {
		t.Errorf("unexpected default title %q", cfg.DocTitle)
	}
	if cfg.CredentialsFile != "credentials.json" {
		t.Errorf("unexpected default credentials path %q", cfg.CredentialsFile)
	}
	if cfg.CachePath == "" {
		t.Error("expected a default cache path")
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "doc_title: Project Log\ndrive_folder_id: folder42\n"
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DocTitle != "Project Log" {
		t.Errorf("expected override, got %q", cfg.DocTitle)
	}
	if cfg.DriveFolderID != "folder42" {
		t.Errorf("expected folder42, got %q", cfg.DriveFolderID)
	}
	// Fields absent from the file keep their defaults.
	if cfg.TokenFile != "token.json" {
		t.Errorf("expected default token path, got %q", cfg.TokenFile)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("doc_title: [unclosed"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}
