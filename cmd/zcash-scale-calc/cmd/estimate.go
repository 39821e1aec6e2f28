// Copyright © 2018 One Concern

package cmd

import (
	"github.com/oneconcern/zcash-scale-calc/pkg/capacity"
	"github.com/oneconcern/zcash-scale-calc/pkg/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (c *cli) depthFromLifetimeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(capacity.DepthFromLifetime),
		Short: "Estimate the Merkle tree height needed over a network lifetime",
		Long: `Estimate the minimal Merkle tree height needed to hold all commitments produced over a network lifetime:

	total_commits = output_rate * lifetime * seconds_per_year
	height = ceil(log_{branch_factor}(total_commits))

A year is 365 days: leap days and leap seconds are ignored.
`,
		Example: `zcash-scale-calc depth-from-lifetime --lifetime 200
zcash-scale-calc depth-from-lifetime --lifetime 50 --output-rate '2000 COMMIT/SEC' --branch-factor 4`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEstimate(cmd, capacity.DepthFromLifetime)
		},
	}

	addLifetimeFlag(cmd, &c.flags)
	addOutputRateFlag(cmd, &c.flags)
	addBranchFactorFlag(cmd, &c.flags)
	requireFlags(cmd, "lifetime")

	return cmd
}

func (c *cli) lifetimeFromDepthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   string(capacity.LifetimeFromDepth),
		Short: "Estimate the network lifetime supported by a Merkle tree depth",
		Long: `Estimate the network lifetime supported by a Merkle tree of a given depth:

	total_commits = 2^depth
	lifetime = total_commits / (output_rate * seconds_per_year)

A year is 365 days: leap days and leap seconds are ignored.
`,
		Example: `zcash-scale-calc lifetime-from-depth --depth 32
zcash-scale-calc lifetime-from-depth --depth 29 --output-rate 5000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runEstimate(cmd, capacity.LifetimeFromDepth)
		},
	}

	addDepthFlag(cmd, &c.flags)
	addOutputRateFlag(cmd, &c.flags)
	addBranchFactorFlag(cmd, &c.flags)
	requireFlags(cmd, "depth")

	return cmd
}

func (c *cli) runEstimate(cmd *cobra.Command, mode capacity.Mode) error {
	c.running = true

	params := capacity.Params{
		Mode:         mode,
		OutputRate:   c.flags.estimate.outputRate.value,
		Lifetime:     c.flags.estimate.lifetime.value,
		Depth:        c.flags.estimate.depth.value,
		BranchFactor: c.flags.estimate.branchFactor.value,
	}
	c.logger.Debug("estimate parameters",
		zap.String("mode", string(mode)),
		zap.Stringer("output_rate", params.OutputRate),
		zap.Stringer("branch_factor", params.BranchFactor),
	)

	est, err := c.evaluator.Evaluate(params)
	if err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), est, report.Options{
		Format:    c.flags.root.format,
		Precision: c.flags.root.precision,
		Template:  c.flags.root.template,
	})
}
