// Package config loads the optional tuning file that overrides block size,
// CPU worker count, and device selection without touching the CLI flags
// used for day-to-day invocation.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// Config is the complete tuning file shape.
type Config struct {
	Compute ComputeSettings `hcl:"compute,block"`
}

// ComputeSettings controls how work is fanned out across devices.
type ComputeSettings struct {
	BlockSize  int  `hcl:"block_size,optional"`
	CPUWorkers int  `hcl:"cpu_workers,optional"`
	UseGPU     bool `hcl:"use_gpu,optional"`
	Nop        bool `hcl:"nop,optional"`
}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	return &Config{
		Compute: ComputeSettings{
			BlockSize:  4096,
			CPUWorkers: 0, // 0 means "use runtime.GOMAXPROCS"
			UseGPU:     false,
			Nop:        false,
		},
	}
}

// Load reads filename as HCL and applies defaults for anything left unset.
// A missing file is not an error: it yields Default() so --config is
// always optional.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: parse %s: %s", filename, diags.Error())
	}

	cfg := Default()
	diags = gohcl.DecodeBody(file.Body, nil, cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("config: decode %s: %s", filename, diags.Error())
	}
	if cfg.Compute.BlockSize <= 0 {
		cfg.Compute.BlockSize = Default().Compute.BlockSize
	}
	return cfg, nil
}

// Validate checks the settings are usable.
func (c *Config) Validate() error {
	if c.Compute.BlockSize <= 0 {
		return fmt.Errorf("config: block_size must be positive, got %d", c.Compute.BlockSize)
	}
	if c.Compute.CPUWorkers < 0 {
		return fmt.Errorf("config: cpu_workers must not be negative, got %d", c.Compute.CPUWorkers)
	}
	return nil
}
