package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "easter-report.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Report.Output != "easter.html" {
		t.Errorf("Report.Output = %q, want easter.html", cfg.Report.Output)
	}
	if cfg.Report.Title != "Velikonoce" {
		t.Errorf("Report.Title = %q, want Velikonoce", cfg.Report.Title)
	}
	if cfg.Log.GetLogLevel() != "info" {
		t.Errorf("Log.GetLogLevel() = %q, want info", cfg.Log.GetLogLevel())
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
report:
  output: out/easter.html
  title: Easter Sundays
log:
  file: logs/easter.log
  level: DEBUG
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Report.Output != "out/easter.html" {
		t.Errorf("Report.Output = %q, want out/easter.html", cfg.Report.Output)
	}
	if cfg.Report.Title != "Easter Sundays" {
		t.Errorf("Report.Title = %q, want Easter Sundays", cfg.Report.Title)
	}
	if cfg.Log.File != "logs/easter.log" {
		t.Errorf("Log.File = %q, want logs/easter.log", cfg.Log.File)
	}
	if cfg.Log.GetLogLevel() != "debug" {
		t.Errorf("Log.GetLogLevel() = %q, want debug", cfg.Log.GetLogLevel())
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("EASTER_REPORT_TITLE", "From Env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Report.Title != "From Env" {
		t.Errorf("Report.Title = %q, want From Env", cfg.Report.Title)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"empty title", "report:\n  title: \"  \"\n"},
		{"bad log level", "log:\n  level: verbose\n"},
		{"malformed yaml", "report: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.content)); err == nil {
				t.Errorf("Load() expected error, got nil")
			}
		})
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("REPORT_DIR", "reports")

	cfg := &Config{
		Report: ReportConfig{Output: "$REPORT_DIR/easter.html", Title: "x"},
		Log:    LogConfig{File: "${REPORT_DIR}/easter.log"},
	}
	cfg.ExpandEnvVars()

	if cfg.Report.Output != "reports/easter.html" {
		t.Errorf("Report.Output = %q, want reports/easter.html", cfg.Report.Output)
	}
	if cfg.Log.File != "reports/easter.log" {
		t.Errorf("Log.File = %q, want reports/easter.log", cfg.Log.File)
	}
}
