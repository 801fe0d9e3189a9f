// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"gitauto-setup/internal/installer"
	"gitauto-setup/internal/sysdeps"

	"github.com/spf13/cobra"
)

// uninstallCmd removes the wrapper and the install directory.
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the installed gitauto tool",
	Long: `Remove the gitauto wrapper command and the install directory.

System dependencies installed during setup are left alone. Uninstalling
when nothing is installed is not an error.`,
	RunE: runUninstall,
}

func runUninstall(cmd *cobra.Command, _ []string) error {
	inst := installer.New(cfg, sysdeps.NewExecRunner(), logger, installer.Options{})

	results, err := inst.Uninstall()
	renderResults(cmd.OutOrStdout(), results)
	if err != nil {
		return renderFailure(cmd.ErrOrStderr(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "%s gitauto removed\n", SuccessStyle.Render("✓"))
	return nil
}
