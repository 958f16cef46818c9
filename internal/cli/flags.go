package cli

import (
	"github.com/daryltucker/pi-runner/internal/config"
	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/spf13/pflag"
)

// overrides holds flag values that replace config file settings when set.
type overrides struct {
	samples   int
	mode      string
	workers   int
	threshold float64
	seed      uint64
	batchSize int

	repeats    int
	outputDir  string
	maxWorkers int
}

func bindSamplingFlags(fs *pflag.FlagSet, o *overrides) {
	fs.IntVarP(&o.samples, "n-samples", "n", 0, "Number of random samples (default from config: 100000)")
	fs.StringVarP(&o.mode, "mode", "m", "", "Sampling mode: scalar or batch (default batch)")
	fs.IntVarP(&o.workers, "workers", "w", 0, "Number of parallel workers (default 1)")
	fs.Float64Var(&o.threshold, "error-threshold", 0, "Acceptable standard error of the estimate (default 0.01)")
	fs.Uint64Var(&o.seed, "seed", 0, "Random seed; 0 draws a fresh seed per run")
	fs.IntVar(&o.batchSize, "batch-size", 0, "Points classified per block in batch mode")
}

func bindBenchmarkFlags(fs *pflag.FlagSet, o *overrides) {
	fs.IntVarP(&o.repeats, "repeats", "r", 0, "Timed runs per configuration (default 10)")
	fs.StringVarP(&o.outputDir, "output-dir", "o", "", "Directory for the report, plot and CSV/JSON dumps")
	fs.IntVar(&o.maxWorkers, "max-workers", 0, "Upper bound of the worker sweep (default: scheduler hint or core count)")
}

// apply copies every flag the user set onto cfg. Unset flags leave the
// config value alone, so explicit zeros still reach validation.
func (o *overrides) apply(fs *pflag.FlagSet, cfg *config.Config) error {
	if fs.Changed("n-samples") {
		cfg.Samples = o.samples
	}
	if fs.Changed("mode") {
		mode, err := model.ParseMode(o.mode)
		if err != nil {
			return err
		}
		cfg.Mode = mode
	}
	if fs.Changed("workers") {
		cfg.Workers = o.workers
	}
	if fs.Changed("error-threshold") {
		cfg.ErrorThreshold = o.threshold
	}
	if fs.Changed("seed") {
		cfg.Seed = o.seed
	}
	if fs.Changed("batch-size") {
		cfg.BatchSize = o.batchSize
	}
	if fs.Changed("repeats") {
		cfg.Repeats = o.repeats
	}
	if fs.Changed("output-dir") {
		cfg.OutputDir = o.outputDir
	}
	if fs.Changed("max-workers") {
		cfg.MaxWorkers = o.maxWorkers
	}
	return nil
}

// loadConfig is the Load -> Override step shared by all commands.
func loadConfig(g *globalOptions, fs *pflag.FlagSet, o *overrides) (*config.Config, error) {
	cfg, err := config.Load(g.cfgFile)
	if err != nil {
		return nil, err
	}
	if err := o.apply(fs, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
