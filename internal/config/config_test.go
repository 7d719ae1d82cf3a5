package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		cfg       Config
		wantError string
	}{
		{
			name:      "empty config",
			cfg:       Config{},
			wantError: "",
		},
		{
			name:      "bad default word size",
			cfg:       Config{Defaults: DefaultsConfig{WordSize: 3}},
			wantError: "invalid word size",
		},
		{
			name:      "bad default format",
			cfg:       Config{Defaults: DefaultsConfig{Format: "rust"}},
			wantError: "unknown format",
		},
		{
			name:      "bad logging level",
			cfg:       Config{Logging: LoggingConfig{Level: "verbose"}},
			wantError: "invalid logging level",
		},
		{
			name: "entry without output",
			cfg: Config{Bundle: BundleConfig{Entries: []Entry{
				{Input: "a.bin"},
			}}},
			wantError: "output is required",
		},
		{
			name: "entry without input",
			cfg: Config{Bundle: BundleConfig{Entries: []Entry{
				{Output: "a.c"},
			}}},
			wantError: "input is required",
		},
		{
			name: "entry with bad word size",
			cfg: Config{Bundle: BundleConfig{Entries: []Entry{
				{Input: "a.bin", Output: "a.c", WordSize: 16},
			}}},
			wantError: "invalid word size",
		},
		{
			name: "duplicate output",
			cfg: Config{Bundle: BundleConfig{Entries: []Entry{
				{Input: "a.bin", Output: "gen/out.c"},
				{Input: "b.bin", Output: "gen/./out.c"},
			}}},
			wantError: "duplicate output",
		},
		{
			name: "entry writes over header",
			cfg: Config{Bundle: BundleConfig{
				Header:  "gen/assets.h",
				Entries: []Entry{{Input: "a.bin", Output: "gen/assets.h"}},
			}},
			wantError: "duplicate output",
		},
		{
			name: "valid bundle",
			cfg: Config{
				Defaults: DefaultsConfig{WordSize: 4, Format: "c-static"},
				Logging:  LoggingConfig{Level: "DEBUG"},
				Bundle: BundleConfig{Entries: []Entry{
					{Input: "a.bin", Output: "a.c", Format: "zig", WordSize: 8},
					{Input: "b.bin", Output: "b.c"},
				}},
			},
			wantError: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(&tt.cfg)
			if tt.wantError != "" {
				if err == nil {
					t.Errorf("Validate() expected error containing %q, got nil", tt.wantError)
				} else if !strings.Contains(err.Error(), tt.wantError) {
					t.Errorf("Validate() error = %v, want error containing %q", err, tt.wantError)
				}
			} else if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	if cfg.Defaults.WordSize != 1 {
		t.Errorf("WordSize = %d, want 1", cfg.Defaults.WordSize)
	}
	if cfg.Defaults.Format != "c-source" {
		t.Errorf("Format = %q, want c-source", cfg.Defaults.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Level = %q, want info", cfg.Logging.Level)
	}

	cfg = &Config{Defaults: DefaultsConfig{WordSize: 8, Format: "zig"}}
	ApplyDefaults(cfg)
	if cfg.Defaults.WordSize != 8 || cfg.Defaults.Format != "zig" {
		t.Errorf("ApplyDefaults overwrote explicit values: %+v", cfg.Defaults)
	}
}

func TestEntryResolve(t *testing.T) {
	defaults := DefaultsConfig{WordSize: 4, Caps: true, Prefix: "G_", Format: "c-static"}

	got := Entry{Input: "a.bin", Output: "a.c"}.Resolve(defaults)
	if got.Name != "a.bin" || got.WordSize != 4 || got.Format != "c-static" || got.Prefix != "G_" {
		t.Errorf("Resolve() = %+v", got)
	}
	if got.Caps == nil || !*got.Caps {
		t.Errorf("Resolve() did not inherit caps")
	}

	off := false
	got = Entry{Input: "a.bin", Name: "logo", WordSize: 2, Caps: &off, Format: "zig"}.Resolve(defaults)
	if got.Name != "logo" || got.WordSize != 2 || *got.Caps || got.Format != "zig" {
		t.Errorf("Resolve() overrode entry values: %+v", got)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chex.yaml")
	content := `
defaults:
  word_size: 4
  caps: true
logging:
  level: debug
bundle:
  header: gen/assets.h
  entries:
    - input: logo.png
      name: logo
      format: c-source
      output: gen/logo.c
      options:
        - {key: section, value: .rodata}
        - {key: align, value: "16"}
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Defaults.WordSize != 4 || !cfg.Defaults.Caps {
		t.Errorf("Defaults = %+v", cfg.Defaults)
	}
	if len(cfg.Bundle.Entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(cfg.Bundle.Entries))
	}
	opts := cfg.Bundle.Entries[0].Options
	if len(opts) != 2 || opts[0].Key != "section" || opts[1].Key != "align" || opts[1].Value != "16" {
		t.Errorf("Options = %+v, want ordered section, align", opts)
	}
}

func TestLoad_Missing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of an explicit missing path should fail")
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chex.yaml")
	if err := os.WriteFile(path, []byte("defaults: [1, 2"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("Load() error = %v, want parse error", err)
	}
}
