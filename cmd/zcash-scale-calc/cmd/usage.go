// Copyright © 2018 One Concern

package cmd

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"
)

func filePrepender(_ string) string {
	return fmt.Sprintf("**Version: %s**\n\n", currentBuild().Version)
}

func linkHandler(s string) string { return s }

// docCmd is a doc generation command powered by cobra
func (c *cli) docCmd(rootCmd *cobra.Command) *cobra.Command {
	docCmd := &cobra.Command{
		Use:   "usage",
		Short: "Generates documentation",
		Long:  `Command to generate usage documentation, as one markdown file per command.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c.running = true
			cmd.SilenceUsage = true

			if err := c.fs.MkdirAll(c.flags.doc.docTarget, 0755); err != nil {
				return fmt.Errorf("failed to create doc target: %w", err)
			}
			rootCmd.DisableAutoGenTag = true
			if err := genMarkdownTree(c.fs, rootCmd, c.flags.doc.docTarget); err != nil {
				return fmt.Errorf("failed to generate doc: %w", err)
			}
			return nil
		},
	}
	addTargetFlag(docCmd, &c.flags)
	return docCmd
}

// genMarkdownTree is doc.GenMarkdownTreeCustom, writing to an afero file system
func genMarkdownTree(fs afero.Fs, cmd *cobra.Command, dir string) error {
	for _, sub := range cmd.Commands() {
		if !sub.IsAvailableCommand() || sub.IsAdditionalHelpTopicCommand() {
			continue
		}
		if err := genMarkdownTree(fs, sub, dir); err != nil {
			return err
		}
	}

	basename := strings.ReplaceAll(cmd.CommandPath(), " ", "_") + ".md"
	f, err := fs.Create(filepath.Join(dir, basename))
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := io.WriteString(f, filePrepender(basename)); err != nil {
		return err
	}
	return doc.GenMarkdownCustom(cmd, f, linkHandler)
}
