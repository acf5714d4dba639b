package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds one analysis run. Zero values fall back to the defaults
// below; command-line flags override whatever the file says.
type Config struct {
	Input   string  `yaml:"input"`
	Output  string  `yaml:"output"`
	PlotDir string  `yaml:"plot_dir"`
	Mode    string  `yaml:"mode"` //"level" or "thin"
	K       float64 `yaml:"k"`
	Target  int     `yaml:"target"`
	Seed    uint64  `yaml:"seed"`
	SwapYZ  bool    `yaml:"swap_yz"`
	Kinetic bool    `yaml:"kinetic"`
	Bins    int     `yaml:"bins"`
	NoPlot  bool    `yaml:"no_plot"`
	NoSave  bool    `yaml:"no_save"`
}

// DefaultConfig returns the defaults of a run: global leveling with k=2,
// plots beside the output.
func DefaultConfig() Config {
	return Config{
		Mode:    "level",
		K:       2.0,
		Seed:    42,
		Bins:    128,
		PlotDir: ".",
	}
}

// LoadConfig reads a YAML run configuration over the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects configurations the pipeline cannot run.
func (c *Config) Validate() error {
	if c.Input == "" {
		return fmt.Errorf("no input file given")
	}
	switch c.Mode {
	case "level":
		if c.K <= 0 {
			return fmt.Errorf("mode level needs a positive k, got %g", c.K)
		}
	case "thin":
		if c.Target < 1 {
			return fmt.Errorf("mode thin needs a positive target, got %d", c.Target)
		}
	default:
		return fmt.Errorf("unknown mode %q (want level or thin)", c.Mode)
	}
	return nil
}
