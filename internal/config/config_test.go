package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "" || cfg.Debug || cfg.ReportFile != "" {
		t.Errorf("missing file did not yield defaults: %+v", cfg)
	}
}

func TestLoadReadsValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := "output_dir: /tmp/fire\ndebug: true\nreport_file: summary.xlsx\n"
	if err := os.WriteFile(path, []byte(raw), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.OutputDir != "/tmp/fire" {
		t.Errorf("OutputDir = %q", cfg.OutputDir)
	}
	if !cfg.Debug {
		t.Error("Debug = false, want true")
	}
	if cfg.ReportFile != "summary.xlsx" {
		t.Errorf("ReportFile = %q", cfg.ReportFile)
	}
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("output_dir: [unclosed"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Load accepted malformed YAML")
	}
}
