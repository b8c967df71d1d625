package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kerem-kaynak/kompositum/pkg/compound"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}
	if cfg.Splitter.MinPartLength != compound.MinPartLength {
		t.Errorf("MinPartLength = %d, want %d", cfg.Splitter.MinPartLength, compound.MinPartLength)
	}
	if cfg.Splitter.CacheSize != compound.DefaultCacheSize {
		t.Errorf("CacheSize = %d, want %d", cfg.Splitter.CacheSize, compound.DefaultCacheSize)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_Overlay(t *testing.T) {
	path := writeConfig(t, `
[dictionary]
path = "/data/words.txt"

[splitter]
max_steps = 500

[pipeline]
stem = true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Dictionary.Path != "/data/words.txt" {
		t.Errorf("Dictionary.Path = %q", cfg.Dictionary.Path)
	}
	if cfg.Splitter.MaxSteps != 500 {
		t.Errorf("MaxSteps = %d, want 500", cfg.Splitter.MaxSteps)
	}
	if !cfg.Pipeline.Stem || cfg.Pipeline.Fold {
		t.Errorf("Pipeline = %+v, want stem only", cfg.Pipeline)
	}
	// untouched values keep their defaults
	if cfg.Splitter.Workers != 4 || cfg.Log.Level != "info" {
		t.Errorf("defaults lost: workers=%d level=%q", cfg.Splitter.Workers, cfg.Log.Level)
	}

	opts := cfg.SplitterOptions(nil)
	if opts.MaxSteps != 500 || opts.MinPartLength != compound.MinPartLength {
		t.Errorf("SplitterOptions = %+v", opts)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"syntax", "[splitter\nmax_steps = 1", "parse config"},
		{"range", "[splitter]\nmin_part_length = 0\nworkers = 0", "min_part_length"},
		{"empty path", "[dictionary]\npath = \"\"", "dictionary.path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Load on a missing file returned no error")
	}
}
