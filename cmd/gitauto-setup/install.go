// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"gitauto-setup/internal/config"
	"gitauto-setup/internal/installer"
	"gitauto-setup/internal/sysdeps"

	"github.com/spf13/cobra"
)

var (
	installSource   string
	installForce    bool
	installDryRun   bool
	installSkipDeps bool

	// installCmd runs the full install sequence.
	installCmd = &cobra.Command{
		Use:   "install",
		Short: "Install gitauto onto this host",
		Long: `Install the gitauto script onto this host.

The install runs six idempotent steps in order: system dependencies,
install directory, script copy, interpreter directive, wrapper command,
and a final PATH check. Re-running a completed install changes nothing.`,
		RunE: runInstall,
	}
)

func init() {
	installCmd.Flags().StringVarP(&installSource, "source", "s", "", "path to gitauto.py (default ./gitauto.py)")
	installCmd.Flags().BoolVarP(&installForce, "force", "f", false, "recopy the script and rewrite the wrapper even when unchanged")
	installCmd.Flags().BoolVar(&installDryRun, "dry-run", false, "show what the install would do without doing it")
	installCmd.Flags().BoolVar(&installSkipDeps, "skip-deps", false, "skip the system dependency check")
}

func runInstall(cmd *cobra.Command, _ []string) error {
	opts := installer.Options{
		SourcePath: installSource,
		Force:      installForce,
		SkipDeps:   installSkipDeps,
	}
	inst := installer.New(cfg, sysdeps.NewExecRunner(), logger, opts)

	if installDryRun {
		renderInstallPlan(cmd.OutOrStdout(), cfg, opts)
		return nil
	}

	results, err := inst.Run(cmd.Context())
	renderResults(cmd.OutOrStdout(), results)
	if err != nil {
		return renderFailure(cmd.ErrOrStderr(), err)
	}

	fmt.Fprintln(cmd.OutOrStdout())
	fmt.Fprintf(cmd.OutOrStdout(), "%s gitauto installed; try %s\n",
		SuccessStyle.Render("✓"), CmdStyle.Render(cfg.CommandName))
	return nil
}

// renderInstallPlan prints the resolved install inputs without executing:
// the paths, names, and dependency set an install would act on.
func renderInstallPlan(w io.Writer, cfg *config.Config, opts installer.Options) {
	fmt.Fprintln(w, TitleStyle.Render("Dry Run"))
	fmt.Fprintln(w)

	source := opts.SourcePath
	if source == "" {
		source = "./" + cfg.ScriptName
	}

	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Source:"), source)
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Install dir:"), cfg.InstallDir)
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Script:"), cfg.ScriptPath())
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Wrapper:"), cfg.WrapperPath())
	fmt.Fprintf(w, "  %s %s\n", SubtitleStyle.Render("Directive:"), installer.Shebang)

	fmt.Fprintln(w)
	if opts.SkipDeps {
		fmt.Fprintf(w, "  %s skipped (--skip-deps)\n", SubtitleStyle.Render("Dependencies:"))
	} else {
		fmt.Fprintf(w, "  %s ", SubtitleStyle.Render("Dependencies:"))
		for idx, dep := range sysdeps.Defaults(cfg.Runtime, cfg.VCSTool) {
			if idx > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprint(w, dep.Binary)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, SubtitleStyle.Render("No changes were made."))
}
