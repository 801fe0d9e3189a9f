// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"io"

	"gitauto-setup/internal/installer"
	"gitauto-setup/internal/issue"
	"gitauto-setup/internal/sysdeps"
)

// renderResults prints one line per completed step.
func renderResults(w io.Writer, results []installer.StepResult) {
	for _, res := range results {
		switch res.Outcome {
		case installer.OutcomeDone:
			fmt.Fprintf(w, "%s %s — %s\n", SuccessStyle.Render("✓"), res.Name, res.Detail)
		case installer.OutcomeUnchanged:
			fmt.Fprintf(w, "%s %s — %s\n", SuccessStyle.Render("✓"), res.Name, SubtitleStyle.Render(res.Detail))
		case installer.OutcomeSkipped:
			fmt.Fprintf(w, "%s %s — %s\n", WarningStyle.Render("•"), res.Name, SubtitleStyle.Render(res.Detail))
		}
	}
}

// issueFor maps fatal install errors to their cataloged operator guidance.
// Returns nil for errors with no catalog entry.
func issueFor(err error) *issue.Issue {
	switch {
	case errors.Is(err, installer.ErrSourceMissing):
		return issue.Lookup(issue.SourceScriptMissingId)
	case errors.Is(err, sysdeps.ErrNoPackageManager):
		return issue.Lookup(issue.PackageManagerNotFoundId)
	case errors.Is(err, installer.ErrCommandNotResolvable):
		return issue.Lookup(issue.CommandNotResolvableId)
	case errors.Is(err, installer.ErrRuntimeTooOld):
		return issue.Lookup(issue.RuntimeTooOldId)
	}
	return nil
}

// renderFailure prints the error and, when cataloged, its rendered guidance.
// Returns an ExitError carrying the installer's exit code.
func renderFailure(w io.Writer, err error) error {
	fmt.Fprintln(w, ErrorStyle.Render("Error: ")+formatErrorForDisplay(err, verbose))

	if iss := issueFor(err); iss != nil {
		if rendered, renderErr := iss.Render("auto"); renderErr == nil {
			fmt.Fprintln(w, rendered)
		}
	}

	return &ExitError{Code: 1, Err: err}
}
