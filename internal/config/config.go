// Package config loads cmd/poker-odds's optional HCL defaults file,
// following the teacher's internal/server and internal/client config
// packages: a tagged struct, a Default*Config constructor, and a loader
// that falls back to defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// CLIConfig holds cmd/poker-odds's tunable defaults: how many workers
// the equity engines use, how many samples a Monte Carlo run draws when
// the caller doesn't specify --samples, and the default output format.
type CLIConfig struct {
	Workers        int    `hcl:"workers,optional"`
	DefaultSamples int    `hcl:"default_samples,optional"`
	OutputFormat   string `hcl:"output_format,optional"`
}

// DefaultCLIConfig returns the configuration cmd/poker-odds runs with
// when no .poker-odds.hcl file is present.
func DefaultCLIConfig() *CLIConfig {
	return &CLIConfig{
		Workers:        0,
		DefaultSamples: 100_000,
		OutputFormat:   "text",
	}
}

// Load reads filename as HCL into a CLIConfig, applying
// DefaultCLIConfig's values to any field left unset. If filename does
// not exist, it returns DefaultCLIConfig() unchanged.
func Load(filename string) (*CLIConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultCLIConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	config := *DefaultCLIConfig()
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}

	if config.Workers == 0 {
		config.Workers = DefaultCLIConfig().Workers
	}
	if config.DefaultSamples == 0 {
		config.DefaultSamples = DefaultCLIConfig().DefaultSamples
	}
	if config.OutputFormat == "" {
		config.OutputFormat = DefaultCLIConfig().OutputFormat
	}

	return &config, nil
}

// Validate checks that the configuration's values are usable.
func (c *CLIConfig) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must be >= 0, got %d", c.Workers)
	}
	if c.DefaultSamples <= 0 {
		return fmt.Errorf("config: default_samples must be positive, got %d", c.DefaultSamples)
	}
	switch c.OutputFormat {
	case "text", "json":
	default:
		return fmt.Errorf("config: unknown output_format %q", c.OutputFormat)
	}
	return nil
}
