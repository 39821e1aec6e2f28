// Copyright © 2018 One Concern

package cmd

import (
	"strings"

	"github.com/oneconcern/zcash-scale-calc/pkg/dlogger"
	"github.com/oneconcern/zcash-scale-calc/pkg/quantity"
	"github.com/oneconcern/zcash-scale-calc/pkg/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type flagsT struct {
	root struct {
		configFile string
		logLevel   string
		format     string
		precision  int32
		template   string
	}
	estimate struct {
		outputRate   *quantityValue
		branchFactor *quantityValue
		lifetime     *quantityValue
		depth        *quantityValue
	}
	doc struct {
		docTarget string
	}
	config struct {
		file  string
		force bool
	}
}

var _ pflag.Value = &quantityValue{}

// quantityValue is a flag holding a quantity of a fixed dimension.
//
// A bare number takes the dimension of the flag, e.g. "--lifetime 200" is 200 YEAR.
// A number with a unit must match the dimension of the flag.
type quantityValue struct {
	registry *quantity.Registry
	dim      quantity.Dimension
	value    quantity.Quantity
	set      bool
}

func newQuantityValue(reg *quantity.Registry, dim quantity.Dimension) *quantityValue {
	return &quantityValue{registry: reg, dim: dim}
}

func (v *quantityValue) withDefault(q quantity.Quantity) *quantityValue {
	v.value, v.set = q, true
	return v
}

func (v *quantityValue) String() string {
	if v == nil || !v.set {
		return ""
	}
	return v.value.String()
}

func (v *quantityValue) Set(s string) error {
	q, err := v.registry.ParseAs(s, v.dim)
	if err != nil {
		return err
	}
	v.value, v.set = q, true
	return nil
}

func (v *quantityValue) Type() string {
	return v.dim.String()
}

func addConfigFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "config"
	cmd.PersistentFlags().StringVar(&flags.root.configFile, flagName, "",
		"A YAML config file providing default values for flags, e.g. output-rate or branch-factor")
	return flagName
}

func addLogLevelFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "loglevel"
	cmd.PersistentFlags().StringVar(&flags.root.logLevel, flagName, dlogger.LogLevelNone,
		"The logging level: none, debug, info, warn or error. Logs go to stderr")
	return flagName
}

func addFormatFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "format"
	cmd.PersistentFlags().StringVar(&flags.root.format, flagName, report.FormatText,
		"The report format, one of: "+strings.Join(report.Formats(), ", "))
	return flagName
}

func addPrecisionFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "precision"
	cmd.PersistentFlags().Int32Var(&flags.root.precision, flagName, report.DefaultPrecision,
		"Decimal places shown for non-integral quantities")
	return flagName
}

func addTemplateFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "template"
	cmd.PersistentFlags().StringVar(&flags.root.template, flagName, "",
		"A go template to use to format the text report")
	return flagName
}

func addOutputRateFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "output-rate"
	cmd.Flags().Var(flags.estimate.outputRate, flagName,
		"Max network throughput, in commitments per second")
	return flagName
}

func addBranchFactorFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "branch-factor"
	cmd.Flags().Var(flags.estimate.branchFactor, flagName,
		"Number of children per node of the Merkle tree")
	return flagName
}

func addLifetimeFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "lifetime"
	cmd.Flags().Var(flags.estimate.lifetime, flagName,
		"Network lifetime in years")
	return flagName
}

func addDepthFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "depth"
	cmd.Flags().Var(flags.estimate.depth, flagName,
		"Merkle tree depth in levels")
	return flagName
}

func addTargetFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "target"
	cmd.Flags().StringVar(&flags.doc.docTarget, flagName, "./docs",
		"Target directory for generated documentation")
	return flagName
}

func addConfigFileFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "file"
	cmd.Flags().StringVar(&flags.config.file, flagName, "zcash-scale-calc.yaml",
		"The config file to create")
	return flagName
}

func addForceFlag(cmd *cobra.Command, flags *flagsT) string {
	const flagName = "force"
	cmd.Flags().BoolVar(&flags.config.force, flagName, false,
		"Overwrite an existing config file")
	return flagName
}

func requireFlags(cmd *cobra.Command, names ...string) {
	for _, name := range names {
		if err := cmd.MarkFlagRequired(name); err != nil {
			// only fails on a programming error: the flag is not defined
			panic(err)
		}
	}
}
