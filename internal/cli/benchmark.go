/*
PURPOSE:
  Defines the 'benchmark' subcommand.
  Times every {mode, workers} configuration and the worker scaling sweep.

REQUIREMENTS:
  User-specified:
  - Repeat each configuration, report mean/std time.
  - Write a Markdown report and scaling plot to the output directory.

  Implementation-discovered:
  - Worker ceiling comes from --max-workers, the scheduler hint or the core count.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunBenchmark()

ERROR HANDLING:
  - Invalid arguments fail before any run.
  - Report/plot failures surface as collaborator errors.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> engine.RunBenchmark.

USAGE:
  pi-runner benchmark -n 5000000 -r 10 -o results/sim_bench

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/engine/benchmark.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/pi-runner/internal/engine"
	"github.com/spf13/cobra"
)

func newBenchmarkCmd(g *globalOptions) *cobra.Command {
	o := &overrides{}

	cmd := &cobra.Command{
		Use:   "benchmark",
		Short: "Benchmark scalar, batch and multi-worker estimation",
		Long: `Runs every combination of {batch, scalar} x {1 worker, all workers} the
configured number of times and records mean and standard deviation of the
elapsed time. Then sweeps 1..max workers once each in batch mode.

Results are written to the output directory:
  benchmark_report.md       Markdown table and plot reference
  vectorized_workers.png    elapsed time vs worker count
  benchmark_results.csv     one row per configuration
  benchmark_results.jsonl   rows and scaling points`,
		Example: `  # Defaults: 100000 samples, 10 repeats, results/sim_bench
  pi-runner benchmark

  # Bigger run inside a SLURM allocation
  pi-runner benchmark -n 5000000 -r 10 -o results/sim_bench

  # Cap the sweep at 8 workers
  pi-runner benchmark --max-workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g, cmd.Flags(), o)
			if err != nil {
				return err
			}
			_, art, err := engine.RunBenchmark(cfg)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote report to %s\n", art.Report)
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote plot to %s\n", art.Plot)
			return nil
		},
	}

	bindSamplingFlags(cmd.Flags(), o)
	bindBenchmarkFlags(cmd.Flags(), o)
	return cmd
}
