// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"

	"gitauto-setup/internal/installer"
	"gitauto-setup/internal/sysdeps"

	"github.com/spf13/cobra"
)

// doctorCmd inspects the install state without mutating anything.
var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the gitauto install state",
	Long: `Check the gitauto install state without changing anything.

Reports dependency presence, the installed script, its interpreter
directive, the wrapper command, and whether the command resolves on PATH.
Exits non-zero when any check fails.`,
	RunE: runDoctor,
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	inst := installer.New(cfg, sysdeps.NewExecRunner(), logger, installer.Options{})
	health := inst.Inspect()

	renderHealth(cmd.OutOrStdout(), health)

	if !health.Ok() {
		return &ExitError{Code: 1, Err: fmt.Errorf("one or more checks failed")}
	}
	return nil
}

func renderHealth(w io.Writer, h installer.Health) {
	fmt.Fprintln(w, TitleStyle.Render("gitauto install state"))
	fmt.Fprintln(w)

	for _, st := range h.Deps {
		if st.Satisfied() {
			checkLine(w, true, st.Dependency.Binary, st.Path)
		} else {
			checkLine(w, false, st.Dependency.Binary, "not found on PATH")
		}
	}

	checkLine(w, h.InstallDirExists, "install directory", "")
	checkLine(w, h.ScriptInstalled, "installed script", "")
	if h.ScriptInstalled {
		checkLine(w, h.ScriptExecutable, "script executable", "")
		checkLine(w, h.ShebangPresent, "interpreter directive", "")
	}
	checkLine(w, h.WrapperInstalled, "wrapper command", "")
	if h.WrapperInstalled {
		checkLine(w, h.WrapperExecutable, "wrapper executable", "")
		checkLine(w, h.WrapperCurrent, "wrapper up to date", "")
	}
	if h.CommandPath != "" {
		checkLine(w, true, "command on PATH", h.CommandPath)
	} else {
		checkLine(w, false, "command on PATH", "does not resolve")
	}
}

func checkLine(w io.Writer, ok bool, label, detail string) {
	mark := SuccessStyle.Render("✓")
	if !ok {
		mark = ErrorStyle.Render("✗")
	}
	if detail != "" {
		fmt.Fprintf(w, "  %s %s — %s\n", mark, label, SubtitleStyle.Render(detail))
		return
	}
	fmt.Fprintf(w, "  %s %s\n", mark, label)
}
