/*
PURPOSE:
  Defines the 'workers' subcommand.
  Shows the worker ceiling the benchmark sweep would use.

REQUIREMENTS:
  User-specified:
  - Respect the cluster scheduler's CPU allocation.

  Implementation-discovered:
  - Useful validation step before a long benchmark inside an allocation.

ARCHITECTURE INTEGRATION:
  - Calls: internal/config.Config.MaxWorkerHint()

ERROR HANDLING:
  - Only config load errors; a bad scheduler value silently falls back.

IMPLEMENTATION RULES:
  - Simple output to stdout.

USAGE:
  pi-runner workers

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/config/workers.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWorkersCmd(g *globalOptions) *cobra.Command {
	o := &overrides{}

	cmd := &cobra.Command{
		Use:   "workers",
		Short: "Show the detected worker ceiling",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g, cmd.Flags(), o)
			if err != nil {
				return err
			}
			hint := cfg.MaxWorkerHint()
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "workers: %d (source: %s)\n", hint.Workers, hint.Source)
			return err
		},
	}

	cmd.Flags().IntVar(&o.maxWorkers, "max-workers", 0, "Explicit worker ceiling")
	return cmd
}
