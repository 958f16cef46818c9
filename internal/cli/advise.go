package cli

import (
	"github.com/daryltucker/pi-runner/internal/advisor"
	"github.com/daryltucker/pi-runner/internal/output"
	"github.com/spf13/cobra"
)

func newAdviseCmd(g *globalOptions) *cobra.Command {
	o := &overrides{}

	cmd := &cobra.Command{
		Use:     "advise",
		Short:   "Check whether a sample count meets the error threshold",
		Example: `  pi-runner advise -n 10000 --error-threshold 0.01`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(g, cmd.Flags(), o)
			if err != nil {
				return err
			}
			outcome, err := advisor.Advise(cfg.Samples, cfg.ErrorThreshold)
			if err != nil {
				return err
			}
			if !outcome.MeetsThreshold {
				output.Logger.Warn(advisor.Message(outcome, cfg.Samples, cfg.ErrorThreshold))
			}
			return output.FormatAdvisory(cmd.OutOrStdout(), cfg.Samples, cfg.ErrorThreshold, outcome)
		},
	}

	cmd.Flags().IntVarP(&o.samples, "n-samples", "n", 0, "Number of random samples (default from config: 100000)")
	cmd.Flags().Float64Var(&o.threshold, "error-threshold", 0, "Acceptable standard error of the estimate (default 0.01)")
	return cmd
}
