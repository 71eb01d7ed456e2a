// Package config holds the typed build configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Format selects the output document encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Ext returns the output file extension for the format.
func (f Format) Ext() string {
	if f == FormatJSON {
		return "json"
	}
	return "yml"
}

// ErrMissingOutput is returned when no output directory is configured.
// This is the one fatal configuration error: it aborts the run before any
// symbol is processed.
var ErrMissingOutput = errors.New("config: output directory is required")

// Config represents the application configuration.
type Config struct {
	// Output is the directory the per-module documents and TOC are written
	// to. Required.
	Output string `yaml:"output"`
	// Format is the serialization encoding, yaml (default) or json.
	Format Format `yaml:"format,omitempty"`
	// Mode selects the grouping of output documents. Only "module" is
	// supported.
	Mode string `yaml:"mode,omitempty"`
	// SourceRoot is stripped from resolved source file paths so records
	// carry repository-relative paths.
	SourceRoot string `yaml:"source_root,omitempty"`
	// RepoPath is where version-control metadata is resolved from.
	// Defaults to the current directory.
	RepoPath string `yaml:"repo_path,omitempty"`
	// Ignore lists symbol name prefixes to skip. Accepted for compatibility;
	// the core pipeline does not consult it.
	Ignore []string `yaml:"ignore,omitempty"`
	// MetricsListen enables the Prometheus endpoint when non-empty
	// (host:port).
	MetricsListen string `yaml:"metrics_listen,omitempty"`
}

// Default returns a configuration with defaults applied.
func Default() *Config {
	return &Config{Format: FormatYAML, Mode: "module", RepoPath: "."}
}

// Load reads a YAML configuration file. A missing file yields defaults so
// flag-only invocations work.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = FormatYAML
	}
	if c.Mode == "" {
		c.Mode = "module"
	}
	if c.RepoPath == "" {
		c.RepoPath = "."
	}
}

// Validate checks the configuration for fatal errors.
func (c *Config) Validate() error {
	if c.Output == "" {
		return ErrMissingOutput
	}
	if c.Format != FormatYAML && c.Format != FormatJSON {
		return fmt.Errorf("config: unsupported format %q", c.Format)
	}
	if c.Mode != "module" {
		return fmt.Errorf("config: unsupported mode %q", c.Mode)
	}
	return nil
}
