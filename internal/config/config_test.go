// ABOUTME: Tests for configuration loading, saving, and the storage factory.
// ABOUTME: Covers defaults, persistence, and demo-mode partition selection.
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harperreed/biome/internal/storage"
)

func TestLoadFromMissingFile(t *testing.T) {
	c, err := LoadFrom(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("missing config should yield defaults: %v", err)
	}
	if c.DataDir != "" || c.DemoMode {
		t.Errorf("defaults should be zero: %+v", c)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "biome", "config.json")

	c := &Config{DataDir: "/tmp/biome-data", DemoMode: true}
	if err := c.SaveTo(path); err != nil {
		t.Fatalf("SaveTo failed: %v", err)
	}

	loaded, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom failed: %v", err)
	}
	if loaded.DataDir != "/tmp/biome-data" {
		t.Errorf("DataDir = %q, want /tmp/biome-data", loaded.DataDir)
	}
	if !loaded.DemoMode {
		t.Error("DemoMode did not survive the round trip")
	}
}

func TestLoadFromRejectsMalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("expected error for malformed config")
	}
}

func TestExpandPath(t *testing.T) {
	home, _ := os.UserHomeDir()

	if got := ExpandPath("~/data"); got != filepath.Join(home, "data") {
		t.Errorf("ExpandPath(~/data) = %q", got)
	}
	if got := ExpandPath("~"); got != home {
		t.Errorf("ExpandPath(~) = %q", got)
	}
	if got := ExpandPath("/absolute/path"); got != "/absolute/path" {
		t.Errorf("ExpandPath should leave absolute paths alone, got %q", got)
	}
	if got := ExpandPath(""); got != "" {
		t.Errorf("ExpandPath(\"\") = %q, want empty", got)
	}
}

func TestOpenStorageAppliesDemoMode(t *testing.T) {
	c := &Config{DataDir: t.TempDir(), DemoMode: true}

	db, err := c.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer db.Close()

	if db.ActivePartition() != storage.PartitionDemo {
		t.Error("demo mode config should select the demo partition")
	}
}

func TestOpenStorageDefaultsToPrimary(t *testing.T) {
	c := &Config{DataDir: t.TempDir()}

	db, err := c.OpenStorage()
	if err != nil {
		t.Fatalf("OpenStorage failed: %v", err)
	}
	defer db.Close()

	if db.ActivePartition() != storage.PartitionPrimary {
		t.Error("fresh config should select the primary partition")
	}
}

func TestProfileDir(t *testing.T) {
	c := &Config{DataDir: "/data/biome"}
	if got := c.ProfileDir(); got != "/data/biome/profile" {
		t.Errorf("ProfileDir = %q, want /data/biome/profile", got)
	}
}
