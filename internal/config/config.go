// Package config loads the solver's YAML configuration file.
//
// Values are layered: Default, then the file given to Load, then whatever
// the command line sets explicitly. Validate checks the merged result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config holds every setting the CLI reads from a file.
type Config struct {
	LogLevel  string `yaml:"log_level"`  // debug, info, warn or error
	LogFormat string `yaml:"log_format"` // text or json
	Workers   int    `yaml:"workers"`    // obstruction search parallelism
	Human     bool   `yaml:"human"`      // thousands separators in answers
}

// Default returns the built-in settings: info-level text logs, one worker
// per CPU, plain numbers.
func Default() *Config {
	return &Config{
		LogLevel:  "info",
		LogFormat: "text",
		Workers:   runtime.NumCPU(),
	}
}

// Load reads path over Default. Unknown keys are rejected so that typos do
// not silently fall back to defaults. An empty file yields Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	if err := decode(bytes.NewReader(data), cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate reports the first setting outside its allowed set.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log_level %q (want debug, info, warn or error)", ErrInvalid, c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log_format %q (want text or json)", ErrInvalid, c.LogFormat)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers %d (want >= 1)", ErrInvalid, c.Workers)
	}
	return nil
}
