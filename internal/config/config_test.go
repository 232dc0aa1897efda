package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadAutoCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csvtrim.yaml")

	cfg, err := Load(path, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected default config file to be created: %v", err)
	}
	if cfg.ProfileStore != "trim_profiles.json" {
		t.Errorf("profile store = %q, want trim_profiles.json", cfg.ProfileStore)
	}
	if cfg.OutputPrefix != "trimmed_" {
		t.Errorf("output prefix = %q, want trimmed_", cfg.OutputPrefix)
	}
	if cfg.PreviewRows != 5 {
		t.Errorf("preview rows = %d, want 5", cfg.PreviewRows)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("log level = %q, want info", cfg.LogLevel)
	}
}

func TestLoadMissingWithoutAutoCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "csvtrim.yaml")

	_, err := Load(path, false)
	if err == nil {
		t.Fatal("expected error for missing config")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the config path, got %v", err)
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Error("no file should have been created")
	}
}

func TestLoadParsesValues(t *testing.T) {
	path := writeConfig(t, `
profile_store: profiles/store.json
output_dir: cleaned
output_prefix: out_
preview_rows: 12
log_level: verbose
log_file: trim.log
datetime_layouts:
  - "2006-01-02"
`)

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.ProfileStore != "profiles/store.json" {
		t.Errorf("profile store = %q", cfg.ProfileStore)
	}
	if cfg.OutputDir != "cleaned" {
		t.Errorf("output dir = %q", cfg.OutputDir)
	}
	if cfg.OutputPrefix != "out_" {
		t.Errorf("output prefix = %q", cfg.OutputPrefix)
	}
	if cfg.PreviewRows != 12 {
		t.Errorf("preview rows = %d", cfg.PreviewRows)
	}
	if cfg.LogLevel != "verbose" {
		t.Errorf("log level = %q", cfg.LogLevel)
	}
	if len(cfg.DatetimeLayouts) != 1 || cfg.DatetimeLayouts[0] != "2006-01-02" {
		t.Errorf("datetime layouts = %v", cfg.DatetimeLayouts)
	}
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, "output_prefix: file_\npreview_rows: 3\n")

	t.Setenv("CSVTRIM_OUTPUT_PREFIX", "env_")
	t.Setenv("CSVTRIM_PREVIEW_ROWS", "9")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.OutputPrefix != "env_" {
		t.Errorf("expected environment to win, got %q", cfg.OutputPrefix)
	}
	if cfg.PreviewRows != 9 {
		t.Errorf("expected environment to win, got %d", cfg.PreviewRows)
	}
}

func TestLoadEnvironmentLeavesUnsetFieldsAlone(t *testing.T) {
	path := writeConfig(t, "log_level: debug\n")

	t.Setenv("CSVTRIM_OUTPUT_PREFIX", "env_")

	cfg, err := Load(path, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("file value should survive, got %q", cfg.LogLevel)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad log level", "log_level: shouting\n"},
		{"negative preview rows", "preview_rows: -2\n"},
		{"blank datetime layout", "datetime_layouts:\n  - \"  \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.yaml)
			if _, err := Load(path, false); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestLoadBadYAML(t *testing.T) {
	path := writeConfig(t, "profile_store: [unclosed\n")
	if _, err := Load(path, false); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidateDefaultConfig(t *testing.T) {
	if err := Validate(CreateDefault()); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "csvtrim.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}
