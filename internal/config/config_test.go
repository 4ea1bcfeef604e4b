package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaultsWhenMissing(t *testing.T) {
	t.Setenv("TIMETELLER_HOME_DIR", t.TempDir())
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Duration.Output != DefaultOutput {
		t.Fatalf("Duration.Output = %q, want %q", cfg.Duration.Output, DefaultOutput)
	}
	if cfg.Duration.Color != DefaultColor {
		t.Fatalf("Duration.Color = %q, want %q", cfg.Duration.Color, DefaultColor)
	}
	if cfg.Clock.Zone != "" || cfg.Clock.Format != "" {
		t.Fatalf("unexpected clock defaults: %+v", cfg.Clock)
	}
}

func TestLoadMergesNonZeroFields(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TIMETELLER_HOME_DIR", home)
	body := "clock:\n  zone: Europe/Amsterdam\nduration:\n  output: iso\n"
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Clock.Zone != "Europe/Amsterdam" {
		t.Fatalf("Clock.Zone = %q", cfg.Clock.Zone)
	}
	if cfg.Duration.Output != "iso" {
		t.Fatalf("Duration.Output = %q", cfg.Duration.Output)
	}
	// fields absent from the file keep their defaults
	if cfg.Duration.Color != DefaultColor {
		t.Fatalf("Duration.Color = %q, want %q", cfg.Duration.Color, DefaultColor)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TIMETELLER_HOME_DIR", home)
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("{not yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(); err == nil {
		t.Fatal("expected an error for malformed YAML")
	}
}

func TestPathUsesHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("TIMETELLER_HOME_DIR", home)
	if got, want := Path(), filepath.Join(home, "config.yaml"); got != want {
		t.Fatalf("Path() = %q, want %q", got, want)
	}
}
