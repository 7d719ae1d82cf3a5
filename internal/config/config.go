package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/xll-gen/chex/internal/chex"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "chex.yaml"

// Config represents the top-level configuration structure parsed from chex.yaml.
// It holds the defaults applied to every dump, logging settings and the bundle manifest.
type Config struct {
	// Defaults are used when a flag or bundle entry does not set a value.
	Defaults DefaultsConfig `yaml:"defaults"`
	// Logging contains logging configuration.
	Logging LoggingConfig `yaml:"logging"`
	// Bundle lists the files rendered by `chex bundle`.
	Bundle BundleConfig `yaml:"bundle"`
}

// DefaultsConfig holds the values shared by every dump.
type DefaultsConfig struct {
	// WordSize is the element width in bytes (1, 2, 4 or 8).
	WordSize int `yaml:"word_size"`
	// Caps upper-cases generated identifiers.
	Caps bool `yaml:"caps"`
	// Prefix is prepended to generated identifiers.
	Prefix string `yaml:"prefix"`
	// Format is the format used by bundle entries that do not name one.
	Format string `yaml:"format"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error).
	Level string `yaml:"level"`
	// Path is the log file path. Empty logs to stderr.
	Path string `yaml:"path"`
}

// BundleConfig describes a batch of dumps.
type BundleConfig struct {
	// Header, if set, is a C header collecting the extern declarations of every c-source entry.
	Header string `yaml:"header"`
	// Guard overrides the include guard of Header.
	Guard string `yaml:"guard"`
	// Entries is the list of files to render.
	Entries []Entry `yaml:"entries"`
}

// Entry is a single file of a bundle.
type Entry struct {
	// Input is the binary file to read.
	Input string `yaml:"input"`
	// Name is the identifier base name. Defaults to Input.
	Name string `yaml:"name"`
	// Format is one of the names listed by `chex formats`.
	Format string `yaml:"format"`
	// Output is the file the rendering is written to.
	Output string `yaml:"output"`
	// WordSize overrides Defaults.WordSize when non-zero.
	WordSize int `yaml:"word_size"`
	// Caps overrides Defaults.Caps when set.
	Caps *bool `yaml:"caps"`
	// Prefix overrides Defaults.Prefix when non-empty.
	Prefix string `yaml:"prefix"`
	// Options are attached to the request in order.
	Options []chex.Option `yaml:"options"`
}

// Load reads and parses the configuration file at path.
// A missing file at DefaultPath yields an empty configuration; any other missing path is an error.
//
// Parameters:
//   - path: The configuration file path. Empty means DefaultPath.
//
// Returns:
//   - *Config: The parsed configuration, with defaults not yet applied.
//   - error: An error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	var cfg Config
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && path == DefaultPath {
			return &cfg, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for errors, such as unsupported word sizes,
// unknown formats or two entries writing the same file.
//
// Parameters:
//   - config: The Config object to validate.
//
// Returns:
//   - error: An error if the configuration is invalid, or nil otherwise.
func Validate(config *Config) error {
	if config.Defaults.WordSize != 0 {
		if _, err := chex.NewWordSize(config.Defaults.WordSize); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
	}
	if config.Defaults.Format != "" {
		if _, err := chex.ParseFormat(config.Defaults.Format); err != nil {
			return fmt.Errorf("defaults: %w", err)
		}
	}

	if config.Logging.Level != "" {
		switch strings.ToLower(config.Logging.Level) {
		case "debug", "info", "warn", "error":
			// ok
		default:
			return fmt.Errorf("invalid logging level: %s (allowed: debug, info, warn, error)", config.Logging.Level)
		}
	}

	seenOutputs := make(map[string]bool)
	if config.Bundle.Header != "" {
		seenOutputs[filepath.Clean(config.Bundle.Header)] = true
	}

	for i, e := range config.Bundle.Entries {
		if e.Input == "" {
			return fmt.Errorf("bundle entry %d: input is required", i)
		}
		if e.Output == "" {
			return fmt.Errorf("bundle entry %d (%s): output is required", i, e.Input)
		}
		if e.WordSize != 0 {
			if _, err := chex.NewWordSize(e.WordSize); err != nil {
				return fmt.Errorf("bundle entry %d (%s): %w", i, e.Input, err)
			}
		}
		if e.Format != "" {
			if _, err := chex.ParseFormat(e.Format); err != nil {
				return fmt.Errorf("bundle entry %d (%s): %w", i, e.Input, err)
			}
		}

		out := filepath.Clean(e.Output)
		if seenOutputs[out] {
			return fmt.Errorf("duplicate output: %s", e.Output)
		}
		seenOutputs[out] = true
	}

	return nil
}

// ApplyDefaults sets default values for configuration fields that are missing.
//
// Parameters:
//   - config: The Config object to modify.
func ApplyDefaults(config *Config) {
	if config.Defaults.WordSize == 0 {
		config.Defaults.WordSize = 1
	}
	if config.Defaults.Format == "" {
		config.Defaults.Format = "c-source"
	}
	if config.Logging.Level == "" {
		config.Logging.Level = "info"
	}
}

// Resolve returns the entry with every unset field taken from defaults.
func (e Entry) Resolve(defaults DefaultsConfig) Entry {
	if e.Name == "" {
		e.Name = e.Input
	}
	if e.Format == "" {
		e.Format = defaults.Format
	}
	if e.WordSize == 0 {
		e.WordSize = defaults.WordSize
	}
	if e.Caps == nil {
		caps := defaults.Caps
		e.Caps = &caps
	}
	if e.Prefix == "" {
		e.Prefix = defaults.Prefix
	}
	return e
}
