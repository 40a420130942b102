package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Rendering.LinesWidth != 0 {
		t.Errorf("expected lines width 0, got %f", cfg.Rendering.LinesWidth)
	}
	if cfg.Rendering.PointsSize != 0 {
		t.Errorf("expected points size 0, got %f", cfg.Rendering.PointsSize)
	}
	if !cfg.Rendering.BackfaceCulling {
		t.Error("expected backface culling to be on by default")
	}
	if !cfg.Rendering.DrawSurface {
		t.Error("expected draw surface to be on by default")
	}
	if cfg.Rendering.DynamicBuffers {
		t.Error("expected dynamic buffers to be off by default")
	}

	if len(cfg.Textures.SearchPaths) == 0 {
		t.Error("expected at least one texture search path")
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}
}

func TestSaveLoad(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "config.yaml")

	cfg := Default()
	cfg.Rendering.LinesWidth = 2.5
	cfg.Rendering.BackfaceCulling = false
	cfg.Textures.SearchPaths = []string{"/data/tex", "./assets"}
	cfg.Logging.Level = "debug"

	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if loaded.Rendering.LinesWidth != 2.5 {
		t.Errorf("expected lines width 2.5, got %f", loaded.Rendering.LinesWidth)
	}
	if loaded.Rendering.BackfaceCulling {
		t.Error("expected backface culling to be false after load")
	}
	if len(loaded.Textures.SearchPaths) != 2 || loaded.Textures.SearchPaths[0] != "/data/tex" {
		t.Errorf("unexpected search paths: %v", loaded.Textures.SearchPaths)
	}
	if loaded.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", loaded.Logging.Level)
	}
}

func TestLoadPartialFile(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "config_test")
	if err != nil {
		t.Fatalf("failed to create temp dir: %v", err)
	}
	defer os.RemoveAll(tempDir)

	path := filepath.Join(tempDir, "config.yaml")
	partial := []byte("logging:\n  level: warn\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatalf("failed to write partial config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, path); err != nil {
		t.Fatalf("failed to load partial config: %v", err)
	}

	if cfg.Logging.Level != "warn" {
		t.Errorf("expected log level 'warn', got %s", cfg.Logging.Level)
	}
	// Untouched sections keep their defaults.
	if !cfg.Rendering.DrawSurface {
		t.Error("expected draw surface default to survive partial load")
	}
}
