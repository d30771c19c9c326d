package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"

	"github.com/tsawler/grille/format"
	"github.com/tsawler/grille/tables"
)

// newTestLoader returns a loader that ignores any .env in the package dir.
func newTestLoader() *Loader {
	l := NewLoader()
	l.EnvFile = ""
	return l
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := newTestLoader().Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.ExtractConfig(); got != tables.DefaultConfig() {
		t.Errorf("Expected default extract config %+v, got %+v", tables.DefaultConfig(), got)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Errorf("Expected info/text logging, got %+v", cfg.Log)
	}
	if f, _ := cfg.OutputFormat(); f != format.JSON {
		t.Errorf("Expected JSON output by default, got %v", f)
	}
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
input: grilles.pdf
output: zones.yaml
coerce: true
pages: "2-3"
extract:
  left_margin: 180
  margin_radius: 60
  carry_group: true
log:
  level: debug
`)

	cfg, err := newTestLoader().Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Input != "grilles.pdf" || !cfg.Coerce {
		t.Errorf("Unexpected config %+v", cfg)
	}
	ext := cfg.ExtractConfig()
	if ext.LeftMargin != 180 || ext.MarginRadius != 60 || !ext.CarryGroupAcrossPages {
		t.Errorf("Unexpected extract config %+v", ext)
	}
	if ext.UsageRadius != 45 {
		t.Errorf("Expected unset keys to keep defaults, got usage radius %v", ext.UsageRadius)
	}
	if f, _ := cfg.OutputFormat(); f != format.YAML {
		t.Errorf("Expected format from output extension, got %v", f)
	}
	if pages, _ := cfg.PageList(); !reflect.DeepEqual(pages, []int{2, 3}) {
		t.Errorf("Expected pages [2 3], got %v", pages)
	}
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("GRILLE_EXTRACT_USAGE_RADIUS", "30")
	t.Setenv("GRILLE_FORMAT", "xlsx")

	cfg, err := newTestLoader().Load(writeConfig(t, "format: yaml\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Extract.UsageRadius != 30 {
		t.Errorf("Expected env to set usage radius 30, got %v", cfg.Extract.UsageRadius)
	}
	if f, _ := cfg.OutputFormat(); f != format.XLSX {
		t.Errorf("Expected env to override file format, got %v", f)
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	if err := os.WriteFile(envFile, []byte("GRILLE_EXTRACT_DEFAULT_GROUP=DIVERS\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("GRILLE_EXTRACT_DEFAULT_GROUP", "")
	os.Unsetenv("GRILLE_EXTRACT_DEFAULT_GROUP")

	l := NewLoader()
	l.EnvFile = envFile
	cfg, err := l.Load(writeConfig(t, ""))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Extract.DefaultGroup != "DIVERS" {
		t.Errorf("Expected default group from env file, got %q", cfg.Extract.DefaultGroup)
	}
}

func TestLoad_Flag(t *testing.T) {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Float64("left-margin", 200, "")
	if err := fs.Parse([]string{"--left-margin", "150"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	l := newTestLoader()
	if err := l.BindFlag("extract.left_margin", fs.Lookup("left-margin")); err != nil {
		t.Fatalf("BindFlag failed: %v", err)
	}
	cfg, err := l.Load(writeConfig(t, "extract:\n  left_margin: 180\n"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Extract.LeftMargin != 150 {
		t.Errorf("Expected flag to win, got %v", cfg.Extract.LeftMargin)
	}

	if err := l.BindFlag("output", fs.Lookup("missing")); err == nil {
		t.Error("Expected error binding a missing flag")
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"bad format", "format: csv\n"},
		{"pdf output", "format: pdf\n"},
		{"bad pages", "pages: \"3-1\"\n"},
		{"zero tolerance", "extract:\n  row_tolerance: 0\n"},
		{"blank group", "extract:\n  default_group: \" \"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := newTestLoader().Load(writeConfig(t, tt.content)); err == nil {
				t.Error("Expected error")
			}
		})
	}

	if _, err := newTestLoader().Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestParsePages(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"3", []int{3}, false},
		{"1-3,7", []int{1, 2, 3, 7}, false},
		{" 5 , 2-3 , 3 ", []int{2, 3, 5}, false},
		{"0", nil, true},
		{"a-2", nil, true},
		{"4-2", nil, true},
	}

	for _, tt := range tests {
		got, err := ParsePages(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePages(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePages(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
