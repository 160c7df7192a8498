package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mverbeek/treestack/internal/model"
)

func TestSaveLoadAppConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "config.json")

	cfg := model.DefaultAppConfig()
	cfg.DefaultStockHeight = 22
	cfg.Theme = "dark"

	if err := SaveAppConfig(path, cfg); err != nil {
		t.Fatalf("SaveAppConfig returned error: %v", err)
	}

	loaded, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig returned error: %v", err)
	}
	if loaded.DefaultStockHeight != 22 {
		t.Errorf("expected stock height 22, got %g", loaded.DefaultStockHeight)
	}
	if loaded.Theme != "dark" {
		t.Errorf("expected dark theme, got %q", loaded.Theme)
	}
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")
	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("missing file should yield defaults, got error: %v", err)
	}
	if cfg != model.DefaultAppConfig() {
		t.Error("expected the default config for a missing file")
	}
}

func TestLoadAppConfigCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAppConfig(path); err == nil {
		t.Fatal("expected an error for corrupt JSON")
	}
}

func TestLoadAppConfigEmptyTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"default_stock_depth": 90}`), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadAppConfig(path)
	if err != nil {
		t.Fatalf("LoadAppConfig returned error: %v", err)
	}
	if cfg.Theme != "system" {
		t.Errorf("empty theme should default to system, got %q", cfg.Theme)
	}
}
