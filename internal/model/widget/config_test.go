package widget

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSeedHasToolsAndPrompts(t *testing.T) {
	cfg := Seed()

	if cfg.Greeting == "" {
		t.Fatal("seed greeting is empty")
	}
	if len(cfg.Prompts) == 0 {
		t.Fatal("seed has no starter prompts")
	}

	names := map[string]bool{}
	for _, tool := range cfg.Tools {
		names[tool.Name] = true
	}
	if !names["switch_theme"] || !names["record_fact"] {
		t.Fatalf("seed is missing expected client tools: %v", names)
	}
}

func TestLoadFileOverridesSelectively(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.yaml")
	contents := []byte("greeting: Hello there\ndark_theme:\n  accent: \"#ff0000\"\n")
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile err: %v", err)
	}

	if cfg.Greeting != "Hello there" {
		t.Fatalf("greeting not overridden: %s", cfg.Greeting)
	}
	if cfg.DarkTheme.Accent != "#ff0000" {
		t.Fatalf("dark accent not overridden: %s", cfg.DarkTheme.Accent)
	}

	seed := Seed()
	if cfg.Placeholder != seed.Placeholder {
		t.Fatalf("placeholder should keep seed value, got %s", cfg.Placeholder)
	}
	if cfg.DarkTheme.Background != seed.DarkTheme.Background {
		t.Fatalf("dark background should keep seed value, got %s", cfg.DarkTheme.Background)
	}
	if len(cfg.Tools) != len(seed.Tools) {
		t.Fatalf("tools should keep seed value, got %d", len(cfg.Tools))
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFileInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget.yaml")
	if err := os.WriteFile(path, []byte("greeting: [unclosed"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestMemoryStoreGet(t *testing.T) {
	store := NewMemoryStore(Seed())
	if store.Get().Greeting != Seed().Greeting {
		t.Fatal("store did not return the seeded config")
	}
}
