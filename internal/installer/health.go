// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"os"

	"gitauto-setup/internal/sysdeps"
)

// Health is a read-only snapshot of the install state, consumed by the
// doctor command. Inspect never mutates the host.
type Health struct {
	Deps []sysdeps.Status

	InstallDirExists bool
	ScriptInstalled  bool
	ScriptExecutable bool
	ShebangPresent   bool

	WrapperInstalled  bool
	WrapperExecutable bool
	// WrapperCurrent is true when the installed wrapper matches what this
	// version of the installer would generate.
	WrapperCurrent bool

	// CommandPath is where the command resolves on PATH, empty when it
	// does not resolve.
	CommandPath string
}

// Ok reports whether every check passed.
func (h Health) Ok() bool {
	for _, st := range h.Deps {
		if !st.Satisfied() {
			return false
		}
	}
	return h.InstallDirExists &&
		h.ScriptInstalled && h.ScriptExecutable && h.ShebangPresent &&
		h.WrapperInstalled && h.WrapperExecutable && h.WrapperCurrent &&
		h.CommandPath != ""
}

// Inspect probes the host for the full install state.
func (i *Installer) Inspect() Health {
	var h Health

	checker := sysdeps.NewChecker(i.runner, i.logger, i.cfg.PackageManager)
	h.Deps = checker.Check(sysdeps.Defaults(i.cfg.Runtime, i.cfg.VCSTool))

	if info, err := os.Stat(i.cfg.InstallDir); err == nil && info.IsDir() {
		h.InstallDirExists = true
	}

	script := i.cfg.ScriptPath()
	if info, err := os.Stat(script); err == nil && !info.IsDir() {
		h.ScriptInstalled = true
		h.ScriptExecutable = info.Mode()&0o111 != 0
		if data, err := os.ReadFile(script); err == nil {
			h.ShebangPresent = hasShebang(data)
		}
	}

	wrapper := i.cfg.WrapperPath()
	if info, err := os.Stat(wrapper); err == nil && !info.IsDir() {
		h.WrapperInstalled = true
		h.WrapperExecutable = info.Mode()&0o111 != 0
		if data, err := os.ReadFile(wrapper); err == nil {
			h.WrapperCurrent = string(data) == i.WrapperContent()
		}
	}

	if path, err := i.runner.LookPath(i.cfg.CommandName); err == nil {
		h.CommandPath = path
	}

	return h
}
