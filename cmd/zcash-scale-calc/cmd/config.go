// Copyright © 2018 One Concern

package cmd

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v2"
)

// CLIConfig describes the CLI configuration.
//
// Keys are flag names: any flag not set on the command line takes its value from the config file.
type CLIConfig struct {
	OutputRate   string `json:"output-rate,omitempty" yaml:"output-rate,omitempty"`
	BranchFactor string `json:"branch-factor,omitempty" yaml:"branch-factor,omitempty"`
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`
	Precision    int32  `json:"precision,omitempty" yaml:"precision,omitempty"`
	LogLevel     string `json:"loglevel,omitempty" yaml:"loglevel,omitempty"`
}

// initConfig reads the config file, if any, and uses it for flags not set on the command line.
func (c *cli) initConfig(cmd *cobra.Command) error {
	if c.flags.root.configFile == "" {
		return nil
	}
	c.viper.SetFs(c.fs)
	c.viper.SetConfigFile(c.flags.root.configFile)
	c.viper.SetConfigType("yaml")
	if err := c.viper.ReadInConfig(); err != nil {
		return fmt.Errorf("read config file %s: %w", c.flags.root.configFile, err)
	}

	var unset []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if !f.Changed && f.Name != "config" && c.viper.IsSet(f.Name) {
			unset = append(unset, f.Name)
		}
	})

	var err error
	for _, name := range unset {
		if e := cmd.Flags().Set(name, c.viper.GetString(name)); e != nil {
			err = multierr.Append(err, fmt.Errorf("invalid value for %q in config file %s: %w", name, c.flags.root.configFile, e))
		}
	}
	return err
}

func (c *cli) configCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Commands to manage a config",
		Long: `Commands to manage the zcash-scale-calc CLI config.

The config file holds default values for flags which do not change across runs, e.g. the
output rate or branch factor. Use it with the --config flag.`,
	}
	configCmd.AddCommand(c.configCreateCmd())
	return configCmd
}

func (c *cli) configCreateCmd() *cobra.Command {
	configCreate := &cobra.Command{
		Use:   "create",
		Short: "Create a config",
		Long:  "Create a config file with the current defaults, possibly overridden by flags.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c.running = true
			cmd.SilenceUsage = true

			config := CLIConfig{
				OutputRate:   c.flags.estimate.outputRate.String(),
				BranchFactor: c.flags.estimate.branchFactor.String(),
				Format:       c.flags.root.format,
				Precision:    c.flags.root.precision,
				LogLevel:     c.flags.root.logLevel,
			}
			o, err := yaml.Marshal(config)
			if err != nil {
				return fmt.Errorf("serialize config to yaml: %w", err)
			}

			exists, err := afero.Exists(c.fs, c.flags.config.file)
			if err != nil {
				return err
			}
			if exists && !c.flags.config.force {
				return fmt.Errorf("config file %s already exists, use --force to overwrite it", c.flags.config.file)
			}
			if err = afero.WriteFile(c.fs, c.flags.config.file, o, 0644); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}
			c.logger.Info("config file created")
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", c.flags.config.file)
			return err
		},
	}

	addOutputRateFlag(configCreate, &c.flags)
	addBranchFactorFlag(configCreate, &c.flags)
	addConfigFileFlag(configCreate, &c.flags)
	addForceFlag(configCreate, &c.flags)

	return configCreate
}
