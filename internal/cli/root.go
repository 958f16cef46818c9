/*
PURPOSE:
  Defines the root Cobra command for the Pi Runner CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.
  - Flag parse errors count as invalid arguments (distinct exit code).

ARCHITECTURE INTEGRATION:
  - Called by: cmd/pi-runner/main.go
  - Calls: Child commands (estimate, benchmark, advise, workers, config)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.
  - Cobra's own error printing is silenced; main prints once.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Commands are built by constructors so tests get a fresh tree.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to newRootCmd().

RELATED FILES:
  - cmd/pi-runner/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"fmt"

	"github.com/daryltucker/pi-runner/internal/model"
	"github.com/daryltucker/pi-runner/internal/output"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags.
type globalOptions struct {
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile   string
	logLevel  string
	logFormat string
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "pi-runner",
		Short: "Monte Carlo π estimator and execution-strategy benchmark",
		Long: `Estimates π by sampling points in the unit square and benchmarks scalar,
batch and multi-worker execution of that estimate. Use 'estimate --help' or
'benchmark --help' for options.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := output.Configure(cmd.ErrOrStderr(), opts.logLevel, opts.logFormat); err != nil {
				return fmt.Errorf("%w: %w", model.ErrInvalidArgument, err)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is ./pi_runner.yaml)")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", model.ErrInvalidArgument, err)
	})

	cmd.AddCommand(
		newEstimateCmd(opts),
		newBenchmarkCmd(opts),
		newAdviseCmd(opts),
		newWorkersCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
