// SPDX-License-Identifier: MPL-2.0

package sysdeps

import (
	"context"
	"os"
	"os/exec"
	"strings"
)

// Runner abstracts the host interactions sysdeps performs: resolving
// binaries on PATH and running package-manager commands. Tests supply
// fakes; production code uses NewExecRunner.
type Runner interface {
	// LookPath resolves name on the system PATH.
	LookPath(name string) (string, error)

	// Run executes name with args, streaming output to the operator.
	Run(ctx context.Context, name string, args ...string) error

	// Output executes name with args and returns its combined output.
	Output(ctx context.Context, name string, args ...string) (string, error)
}

type execRunner struct{}

// NewExecRunner returns a Runner backed by os/exec.
func NewExecRunner() Runner {
	return execRunner{}
}

func (execRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (execRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	// Package-manager output goes straight to the operator's terminal.
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	return cmd.Run()
}

func (execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	out, err := exec.CommandContext(ctx, name, args...).CombinedOutput()
	return strings.TrimSpace(string(out)), err
}
