/*
PURPOSE:
  Defines the configuration structure and loading logic for Pi Runner.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of sample count, mode, workers, repeats and error threshold.
  - Benchmark artifacts go to a configurable output directory.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - CLI flags override file values (see internal/cli).

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/engine
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing default files fall back to defaults silently.
  - Validate() returns model.ErrInvalidArgument for bad values.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults mirror the original workshop scripts (100k samples, 10 repeats, 0.01 threshold).

USAGE:
  cfg, err := config.Load("pi_runner.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update DefaultConfig().

RELATED FILES:
  - internal/config/workers.go
  - internal/cli/root.go

MAINTENANCE:
  - Update when adding new tuning parameters.
*/

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/daryltucker/pi-runner/internal/model"
	"gopkg.in/yaml.v3"
)

// Config represents the full configuration for Pi Runner.
type Config struct {
	Samples         int        `yaml:"n_samples"`
	Mode            model.Mode `yaml:"mode"`
	Workers         int        `yaml:"workers"`
	Repeats         int        `yaml:"repeats"`
	ErrorThreshold  float64    `yaml:"error_threshold"`
	RobustnessFloor int        `yaml:"robustness_floor"`
	// Seed fixes the random streams; 0 draws a fresh seed per run.
	Seed      uint64 `yaml:"seed"`
	BatchSize int    `yaml:"batch_size"`
	// MaxWorkers caps the benchmark sweep; 0 asks the environment.
	MaxWorkers int `yaml:"max_workers"`

	OutputDir  string `yaml:"output_dir"`
	ReportFile string `yaml:"report_file"`
	PlotFile   string `yaml:"plot_file"`
	CSVFile    string `yaml:"csv_file"`
	JSONFile   string `yaml:"json_file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Samples:         100_000,
		Mode:            model.ModeBatch,
		Workers:         1,
		Repeats:         10,
		ErrorThreshold:  0.01,
		RobustnessFloor: 10_000,
		BatchSize:       1 << 16,
		OutputDir:       "results/sim_bench",
		ReportFile:      "benchmark_report.md",
		PlotFile:        "vectorized_workers.png",
		CSVFile:         "benchmark_results.csv",
		JSONFile:        "benchmark_results.jsonl",
	}
}

// DefaultFiles are searched in order when no config path is given.
var DefaultFiles = []string{"pi_runner.yaml", "runner.yaml"}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches DefaultFiles in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		found := false
		for _, name := range DefaultFiles {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name
				found = true
				break
			}
			if !errors.Is(err, fs.ErrNotExist) {
				return cfg, fmt.Errorf("failed to read config file %s: %w", name, err)
			}
		}
		if !found {
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects values no run can start with.
func (c *Config) Validate() error {
	switch {
	case c.Samples <= 0:
		return fmt.Errorf("%w: n_samples must be a positive integer, got %d", model.ErrInvalidArgument, c.Samples)
	case c.Workers <= 0:
		return fmt.Errorf("%w: workers must be a positive integer, got %d", model.ErrInvalidArgument, c.Workers)
	case c.Repeats <= 0:
		return fmt.Errorf("%w: repeats must be a positive integer, got %d", model.ErrInvalidArgument, c.Repeats)
	case !(c.ErrorThreshold > 0) || math.IsInf(c.ErrorThreshold, 1):
		return fmt.Errorf("%w: error threshold must be a positive number, got %v", model.ErrInvalidArgument, c.ErrorThreshold)
	case c.RobustnessFloor < 0:
		return fmt.Errorf("%w: robustness floor must not be negative, got %d", model.ErrInvalidArgument, c.RobustnessFloor)
	case c.BatchSize < 0:
		return fmt.Errorf("%w: batch size must not be negative, got %d", model.ErrInvalidArgument, c.BatchSize)
	case c.MaxWorkers < 0:
		return fmt.Errorf("%w: max workers must not be negative, got %d", model.ErrInvalidArgument, c.MaxWorkers)
	}
	return model.SampleRequest{TotalSamples: c.Samples, Mode: c.Mode, Workers: c.Workers}.Validate()
}
