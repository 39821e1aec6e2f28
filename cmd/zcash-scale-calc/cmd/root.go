// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/oneconcern/zcash-scale-calc/pkg/capacity"
	"github.com/oneconcern/zcash-scale-calc/pkg/dlogger"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// cli holds the state of one invocation of the command line
type cli struct {
	flags     flagsT
	fs        afero.Fs
	viper     *viper.Viper
	registry  *quantity.Registry
	evaluator *capacity.Evaluator
	logger    *zap.Logger

	// running is set once arguments are validated and a command actually runs
	running bool
}

func newCLI(fs afero.Fs) *cli {
	reg := quantity.NewRegistry()
	c := &cli{
		fs:        fs,
		viper:     viper.New(),
		registry:  reg,
		evaluator: capacity.NewEvaluator(reg),
		logger:    zap.NewNop(),
	}

	e := c.evaluator
	c.flags.estimate.outputRate = newQuantityValue(reg, e.RateDimension()).withDefault(e.DefaultOutputRate())
	c.flags.estimate.branchFactor = newQuantityValue(reg, e.Units().Branch.Dimension()).withDefault(e.DefaultBranchFactor())
	c.flags.estimate.lifetime = newQuantityValue(reg, e.Units().Year.Dimension())
	c.flags.estimate.depth = newQuantityValue(reg, e.Units().Level.Dimension())

	return c
}

func (c *cli) rootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "zcash-scale-calc",
		Short: "Back-of-the-scripted-envelope calculations for zcash capacity parameters",
		Long: `zcash-scale-calc estimates the depth of the Merkle commitment tree needed to hold
all the commitments produced over the lifetime of a network,
or the lifetime supported by a tree of a given depth.

All inputs are quantities with units: a bare number takes the unit of its flag,
e.g. "--lifetime 200" is 200 YEAR, and "--output-rate '5000 COMMIT/SEC'" is checked
against the unit expected by the flag.
`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.initConfig(cmd); err != nil {
				return err
			}
			return c.initLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
	}
	rootCmd.CompletionOptions.HiddenDefaultCmd = true

	addConfigFlag(rootCmd, &c.flags)
	addLogLevelFlag(rootCmd, &c.flags)
	addFormatFlag(rootCmd, &c.flags)
	addPrecisionFlag(rootCmd, &c.flags)
	addTemplateFlag(rootCmd, &c.flags)

	rootCmd.AddCommand(
		c.depthFromLifetimeCmd(),
		c.lifetimeFromDepthCmd(),
		c.configCmd(),
		c.versionCmd(),
		c.docCmd(rootCmd),
	)

	return rootCmd
}

func (c *cli) initLogger() error {
	logger, err := dlogger.GetLogger(c.flags.root.logLevel)
	if err != nil {
		return fmt.Errorf("failed to set log level %q: %w", c.flags.root.logLevel, err)
	}
	c.logger = logger
	// units are interned by name: quantities parsed from flags remain valid for the new evaluator
	c.evaluator = capacity.NewEvaluator(c.registry, capacity.Logger(logger))
	return nil
}

// Execute runs the command line with the process arguments and exits.
// This is called by main.main().
func Execute() {
	osExit(execute(os.Args[1:], afero.NewOsFs(), os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
//
// Errors go to errOut. Errors detected before a command runs (unknown command,
// invalid or missing flags) are followed by the usage of the command.
func execute(args []string, fs afero.Fs, out, errOut io.Writer) int {
	c := newCLI(fs)
	rootCmd := c.rootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	cmd, err := rootCmd.ExecuteC()
	if err == nil {
		return 0
	}
	printError(errOut, err)
	if !c.running {
		_, _ = fmt.Fprintln(errOut, cmd.UsageString())
	}
	return 1
}
