// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"gitauto-setup/internal/config"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var (
	configInitForce bool

	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage gitauto-setup configuration",
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE:  runConfigShow,
	}

	configInitCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file with the defaults",
		RunE:  runConfigInit,
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Print the config file path",
		RunE:  runConfigPath,
	}
)

func init() {
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	return renderConfig(cmd.OutOrStdout(), cfg)
}

func renderConfig(w io.Writer, c *config.Config) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	fmt.Fprintln(w, TitleStyle.Render("Effective configuration"))
	fmt.Fprintln(w)
	fmt.Fprint(w, string(data))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := config.WriteDefault(configInitForce)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s Created %s\n", SuccessStyle.Render("✓"), path)
	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("Next steps:"))
	fmt.Fprintln(cmd.OutOrStdout(), "  1. Edit the file to match your host layout")
	fmt.Fprintln(cmd.OutOrStdout(), "  2. Run 'gitauto-setup install' to apply it")
	return nil
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := config.ConfigFilePath()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}
