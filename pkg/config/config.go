// Package config loads optional YAML defaults for filecat commands.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// FileName is looked up in the root directory when no explicit config is given.
	FileName = ".filecat.yaml"
	// EnvVar names an environment variable holding a config file path.
	EnvVar = "FILECAT_CONFIG"
)

// Config holds defaults that command-line flags may override.
type Config struct {
	Extensions []string `yaml:"extensions"` // Default extension selection.
	Output     string   `yaml:"output"`     // Default output file.
	Clipboard  bool     `yaml:"clipboard"`  // Copy to the clipboard instead of writing a file.
	FailFast   bool     `yaml:"fail_fast"`  // Abort on unreadable subdirectories.
	Debug      bool     `yaml:"debug"`      // Development logging.
}

// Default returns the configuration used when no file is found.
func Default() *Config {
	return &Config{}
}

// Load resolves and parses the config file. The explicit path wins, then $FILECAT_CONFIG,
// then FileName inside root. Explicit and environment paths must exist; a missing
// FileName in root yields Default. A relative Output is taken relative to the
// directory of the file that sets it. The second return value is the file that was
// read, or "" when defaults are used.
func Load(explicitPath, root string) (*Config, string, error) {
	path := explicitPath
	required := true
	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		required = false
		if root == "" {
			root = "."
		}
		path = filepath.Join(root, FileName)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !required {
			return Default(), "", nil
		}
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if cfg.Output != "" && !filepath.IsAbs(cfg.Output) {
		cfg.Output = filepath.Join(filepath.Dir(path), cfg.Output)
	}
	return cfg, path, nil
}

// Parse decodes YAML config data, rejecting unknown keys.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option combinations.
func (c *Config) Validate() error {
	if c.Output != "" && c.Clipboard {
		return errors.New("output and clipboard are mutually exclusive")
	}
	return nil
}
