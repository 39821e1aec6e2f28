// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"
	jsoniter "github.com/json-iterator/go"
	"github.com/oneconcern/zcash-scale-calc/pkg/report"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

// Build information, set with -ldflags "-X github.com/oneconcern/zcash-scale-calc/cmd/zcash-scale-calc/cmd.Version=..."
var (
	Version   string
	BuildDate string
	GitCommit string
	GitState  string
)

const devVersion = "dev"

// BuildInfo describes how the binary was built
type BuildInfo struct {
	Version   string `json:"version" yaml:"version"`
	BuildDate string `json:"buildDate,omitempty" yaml:"buildDate,omitempty"`
	GitCommit string `json:"gitCommit,omitempty" yaml:"gitCommit,omitempty"`
	GitState  string `json:"gitState,omitempty" yaml:"gitState,omitempty"`
}

// currentBuild reports the build variables. An unversioned build is a dev build,
// a versioned one is assumed clean unless told otherwise.
func currentBuild() BuildInfo {
	info := BuildInfo{
		Version:   devVersion,
		BuildDate: BuildDate,
		GitCommit: GitCommit,
		GitState:  GitState,
	}
	if Version != "" {
		info.Version = Version
		if info.GitState == "" {
			info.GitState = "clean"
		}
	}
	return info
}

func (b BuildInfo) write(w io.Writer, format string) error {
	switch strings.ToLower(format) {
	case "", report.FormatText, report.FormatTable:
		table := uitable.New()
		table.AddRow("Version:", b.Version)
		table.AddRow("Build date:", b.BuildDate)
		table.AddRow("Commit:", b.GitCommit)
		table.AddRow("Working tree:", b.GitState)
		_, err := fmt.Fprintln(w, table.String())
		return err
	case report.FormatJSON:
		enc := jsoniter.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(b)
	case report.FormatYAML:
		o, err := yaml.Marshal(b)
		if err != nil {
			return err
		}
		_, err = w.Write(o)
		return err
	default:
		return report.ErrUnknownFormat.Detailf("%q, expected one of %s", format, strings.Join(report.Formats(), ", "))
	}
}

func (c *cli) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints the version of zcash-scale-calc",
		Long: `Prints the version of zcash-scale-calc, with:
	* the semver tag it was built from, or "dev"
	* the build date
	* the git commit hash
	* the state of the working tree ("dirty" when there were uncommitted changes)

The --format flag applies: json and yaml print the same fields as a document.
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.running = true
			return currentBuild().write(cmd.OutOrStdout(), c.flags.root.format)
		},
	}
}
