// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gitauto-setup/internal/installer"
	"gitauto-setup/internal/issue"
	"gitauto-setup/internal/sysdeps"
)

func TestRenderResults(t *testing.T) {
	var buf bytes.Buffer
	renderResults(&buf, []installer.StepResult{
		{Name: "install directory", Outcome: installer.OutcomeDone, Detail: "/opt/gitAuto"},
		{Name: "install script", Outcome: installer.OutcomeUnchanged, Detail: "/opt/gitAuto/gitauto.py"},
		{Name: "dependencies", Outcome: installer.OutcomeSkipped, Detail: "--skip-deps"},
	})

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "install directory") || !strings.Contains(lines[0], "/opt/gitAuto") {
		t.Errorf("done line = %q", lines[0])
	}
	if !strings.Contains(lines[2], "dependencies") || !strings.Contains(lines[2], "--skip-deps") {
		t.Errorf("skipped line = %q", lines[2])
	}
}

func TestIssueFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want issue.Id
	}{
		{"source missing", installer.ErrSourceMissing, issue.SourceScriptMissingId},
		{"no package manager", sysdeps.ErrNoPackageManager, issue.PackageManagerNotFoundId},
		{"command not resolvable", installer.ErrCommandNotResolvable, issue.CommandNotResolvableId},
		{"runtime too old", installer.ErrRuntimeTooOld, issue.RuntimeTooOldId},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Errors arrive wrapped in ActionableError from the installer.
			wrapped := issue.WrapWithOperation(tt.err, "install")
			got := issueFor(wrapped)
			if got == nil || got.Id() != tt.want {
				t.Errorf("issueFor() = %v, want catalog id %d", got, tt.want)
			}
		})
	}

	if issueFor(errors.New("unrelated")) != nil {
		t.Error("issueFor() should return nil for uncataloged errors")
	}
}

func TestRenderFailure(t *testing.T) {
	var buf bytes.Buffer
	err := renderFailure(&buf, issue.WrapWithOperation(installer.ErrSourceMissing, "install script"))

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("renderFailure() = %T, want *ExitError", err)
	}
	if exitErr.Code != 1 {
		t.Errorf("exit code = %d, want 1", exitErr.Code)
	}
	if !strings.Contains(buf.String(), "failed to install script") {
		t.Errorf("output missing error message:\n%s", buf.String())
	}
}

func TestExitError(t *testing.T) {
	bare := &ExitError{Code: 2}
	if bare.Error() != "exit status 2" {
		t.Errorf("Error() = %q", bare.Error())
	}

	cause := errors.New("boom")
	wrapped := &ExitError{Code: 1, Err: cause}
	if wrapped.Error() != "boom" {
		t.Errorf("Error() = %q", wrapped.Error())
	}
	if !errors.Is(wrapped, cause) {
		t.Error("errors.Is failed to find the cause")
	}
}
