/*
PURPOSE:
  Defines the 'estimate' subcommand.
  Runs a single π estimation and prints the result line.

REQUIREMENTS:
  User-specified:
  - n_samples, mode and workers are configurable.
  - Warn (without failing) when the sample count is too small.

  Implementation-discovered:
  - Need to load config first.
  - Apply flag overrides to config.

ARCHITECTURE INTEGRATION:
  - Calls: internal/engine.RunEstimate()
  - Uses: internal/config

ERROR HANDLING:
  - Returns error if config load fails, arguments are invalid or a worker fails.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> engine.RunEstimate.

USAGE:
  pi-runner estimate -n 1000000 --mode batch --workers 4

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/cli/flags.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"github.com/daryltucker/pi-runner/internal/engine"
	"github.com/spf13/cobra"
)

func newEstimateCmd(g *globalOptions) *cobra.Command {
	o := &overrides{}

	cmd := &cobra.Command{
		Use:     "estimate",
		Aliases: []string{"run"},
		Short:   "Estimate π once",
		Long: `Estimates π by drawing n uniform points in the unit square and counting
those with x² + y² <= 1. The sample budget is split evenly across workers;
each worker owns an independently seeded random stream.`,
		Example: `  # Run with defaults (uses pi_runner.yaml if present)
  pi-runner estimate

  # One million samples on four workers, scalar loop
  pi-runner estimate -n 1000000 --workers 4 --mode scalar

  # Reproducible run
  pi-runner estimate -n 500000 --seed 42`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g, cmd.Flags(), o)
			if err != nil {
				return err
			}
			_, err = engine.RunEstimate(cfg, cmd.OutOrStdout())
			return err
		},
	}

	bindSamplingFlags(cmd.Flags(), o)
	return cmd
}
