// SPDX-License-Identifier: MPL-2.0

package sysdeps

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoPackageManager indicates no supported package manager resolves on PATH.
var ErrNoPackageManager = errors.New("no supported package manager found")

// PackageManager describes one supported system package manager and the
// argv that installs a package non-interactively.
type PackageManager struct {
	// Name is the manager binary, e.g. "apt-get".
	Name string

	// InstallArgs precede the package name, e.g. ["install", "-y"].
	InstallArgs []string

	// NeedsRoot reports whether installs must run through sudo when the
	// current user is not root.
	NeedsRoot bool
}

// managers lists supported package managers in detection order. Debian
// derivatives first, matching where gitauto installs are most common.
var managers = []PackageManager{
	{Name: "apt-get", InstallArgs: []string{"install", "-y"}, NeedsRoot: true},
	{Name: "dnf", InstallArgs: []string{"install", "-y"}, NeedsRoot: true},
	{Name: "yum", InstallArgs: []string{"install", "-y"}, NeedsRoot: true},
	{Name: "pacman", InstallArgs: []string{"-S", "--noconfirm"}, NeedsRoot: true},
	{Name: "zypper", InstallArgs: []string{"install", "-y"}, NeedsRoot: true},
	{Name: "apk", InstallArgs: []string{"add"}, NeedsRoot: true},
}

// DetectPackageManager returns the first supported package manager found on
// PATH. When override is non-empty, only that manager is considered; naming
// an unsupported manager is an error even if the binary exists.
func DetectPackageManager(r Runner, override string) (*PackageManager, error) {
	if override != "" {
		for i := range managers {
			if managers[i].Name == override {
				if _, err := r.LookPath(override); err != nil {
					return nil, fmt.Errorf("configured package manager %q not found on PATH: %w", override, err)
				}
				return &managers[i], nil
			}
		}
		return nil, fmt.Errorf("%w: unsupported package manager %q", ErrNoPackageManager, override)
	}

	for i := range managers {
		if _, err := r.LookPath(managers[i].Name); err == nil {
			return &managers[i], nil
		}
	}
	return nil, ErrNoPackageManager
}

// SupportedManagers returns the names of all supported package managers in
// detection order.
func SupportedManagers() []string {
	names := make([]string, len(managers))
	for i, m := range managers {
		names[i] = m.Name
	}
	return names
}

// Install installs pkg through the package manager.
func (m *PackageManager) Install(ctx context.Context, r Runner, pkg string) error {
	args := append(append([]string{}, m.InstallArgs...), pkg)
	name := m.Name

	if m.NeedsRoot && !isRoot() {
		// Re-route through sudo when available; otherwise attempt the plain
		// invocation and let the manager report the permission failure.
		if _, err := r.LookPath("sudo"); err == nil {
			args = append([]string{name}, args...)
			name = "sudo"
		}
	}

	if err := r.Run(ctx, name, args...); err != nil {
		return fmt.Errorf("%s install %s: %w", m.Name, pkg, err)
	}
	return nil
}
