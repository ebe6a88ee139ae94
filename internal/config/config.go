package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"metric-descriptor-generator/internal/descriptor"
	"metric-descriptor-generator/internal/nested"
)

// CurrentVersion is the only supported configuration schema version.
const CurrentVersion = "1"

// Config is the generator configuration.
type Config struct {
	// Version of the configuration schema.
	Version string `yaml:"version,omitempty"`

	// NamespacePrefix is stripped from the start of every descriptor name.
	NamespacePrefix *string `yaml:"namespace_prefix,omitempty"`

	// HelpText is placed in every descriptor.
	HelpText *string `yaml:"help_text,omitempty"`

	// Hint is placed in every descriptor.
	Hint string `yaml:"hint,omitempty"`

	// UnsupportedValues selects how sequence values are handled: reject or leaf.
	UnsupportedValues string `yaml:"unsupported_values,omitempty"`

	// Output is the file the catalogue is written to. Empty means stdout.
	Output string `yaml:"output,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)

	return cfg
}

// LoadFile loads and parses a configuration file from the given path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Parse parses YAML data into a Config, applies defaults and validates it.
func Parse(data []byte) (*Config, error) {
	var cfg Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	err = cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if cfg.Version == "" {
		cfg.Version = CurrentVersion
	}

	if cfg.NamespacePrefix == nil {
		prefix := descriptor.DefaultNamespacePrefix
		cfg.NamespacePrefix = &prefix
	}

	if cfg.HelpText == nil {
		text := descriptor.DefaultHelpText
		cfg.HelpText = &text
	}

	if cfg.UnsupportedValues == "" {
		cfg.UnsupportedValues = nested.UnsupportedReject.String()
	}
}

// Validate checks the configuration for unsupported values.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("unsupported config version %q (want %q)", c.Version, CurrentVersion)
	}

	_, err := nested.ParseUnsupportedPolicy(c.UnsupportedValues)
	if err != nil {
		return fmt.Errorf("invalid unsupported_values: %w", err)
	}

	return nil
}

// Unsupported returns the parsed sequence policy.
func (c *Config) Unsupported() nested.UnsupportedPolicy {
	p, _ := nested.ParseUnsupportedPolicy(c.UnsupportedValues)
	return p
}

// RendererOptions converts the configuration into descriptor renderer options.
func (c *Config) RendererOptions() []descriptor.Option {
	opts := []descriptor.Option{descriptor.WithHint(c.Hint)}

	if c.NamespacePrefix != nil {
		opts = append(opts, descriptor.WithNamespacePrefix(*c.NamespacePrefix))
	}

	if c.HelpText != nil {
		opts = append(opts, descriptor.WithHelpText(*c.HelpText))
	}

	return opts
}

// LoadOptions converts the configuration into input loader options.
func (c *Config) LoadOptions() []nested.Option {
	return []nested.Option{nested.WithUnsupported(c.Unsupported())}
}
