// SPDX-License-Identifier: MPL-2.0

package sysdeps

import (
	"context"
	"fmt"
	"os"

	"gitauto-setup/internal/issue"

	"github.com/charmbracelet/log"
)

type (
	// Dependency is one system binary the gitauto script needs.
	Dependency struct {
		// Binary is the executable checked for on PATH.
		Binary string

		// Pkg is the package that provides the binary under most managers.
		Pkg string

		// PkgFor overrides Pkg for specific package managers
		// (e.g. pacman ships python3 as "python").
		PkgFor map[string]string
	}

	// Status reports the outcome of checking (and possibly installing)
	// one dependency.
	Status struct {
		Dependency Dependency

		// Path is where the binary resolved, empty when missing.
		Path string

		// Installed is true when this run installed the dependency.
		Installed bool
	}

	// Checker verifies dependencies and installs missing ones.
	Checker struct {
		runner   Runner
		logger   *log.Logger
		override string // package manager override from config
	}
)

// Satisfied reports whether the dependency resolved on PATH.
func (s Status) Satisfied() bool {
	return s.Path != ""
}

// PackageFor returns the package name to install under the given manager.
func (d Dependency) PackageFor(manager string) string {
	if pkg, ok := d.PkgFor[manager]; ok {
		return pkg
	}
	return d.Pkg
}

// Defaults returns the dependency set for a gitauto install: the language
// runtime and the version-control tool.
func Defaults(runtime, vcsTool string) []Dependency {
	return []Dependency{
		{
			Binary: runtime,
			Pkg:    runtime,
			PkgFor: map[string]string{"pacman": "python"},
		},
		{
			Binary: vcsTool,
			Pkg:    vcsTool,
		},
	}
}

// NewChecker builds a Checker. managerOverride may be empty for auto-detection.
func NewChecker(r Runner, logger *log.Logger, managerOverride string) *Checker {
	return &Checker{runner: r, logger: logger, override: managerOverride}
}

// Check probes each dependency on PATH without mutating anything.
func (c *Checker) Check(deps []Dependency) []Status {
	statuses := make([]Status, 0, len(deps))
	for _, dep := range deps {
		path, err := c.runner.LookPath(dep.Binary)
		if err != nil {
			path = ""
		}
		c.logger.Debug("dependency probe", "binary", dep.Binary, "path", path)
		statuses = append(statuses, Status{Dependency: dep, Path: path})
	}
	return statuses
}

// Ensure checks each dependency and installs the missing ones through the
// host package manager. Dependencies already on PATH are never touched.
// The package manager is only detected when something is actually missing.
func (c *Checker) Ensure(ctx context.Context, deps []Dependency) ([]Status, error) {
	statuses := c.Check(deps)

	var manager *PackageManager
	for i, st := range statuses {
		if st.Satisfied() {
			continue
		}

		if manager == nil {
			m, err := DetectPackageManager(c.runner, c.override)
			if err != nil {
				return statuses, issue.NewErrorContext().
					WithOperation("install dependency").
					WithResource(st.Dependency.Binary).
					WithSuggestion(fmt.Sprintf("Install %s manually, then re-run with --skip-deps", st.Dependency.Binary)).
					WithSuggestion("Or set package_manager in the config file").
					Wrap(err).
					BuildError()
			}
			manager = m
			c.logger.Debug("package manager detected", "manager", manager.Name)
		}

		pkg := st.Dependency.PackageFor(manager.Name)
		c.logger.Info("installing dependency", "binary", st.Dependency.Binary, "package", pkg, "manager", manager.Name)
		if err := manager.Install(ctx, c.runner, pkg); err != nil {
			return statuses, issue.WrapWithContext(err, "install dependency", st.Dependency.Binary)
		}

		path, err := c.runner.LookPath(st.Dependency.Binary)
		if err != nil {
			return statuses, issue.NewErrorContext().
				WithOperation("install dependency").
				WithResource(st.Dependency.Binary).
				WithSuggestion(fmt.Sprintf("The %s install reported success but %s still does not resolve", manager.Name, st.Dependency.Binary)).
				Wrap(err).
				BuildError()
		}
		statuses[i].Path = path
		statuses[i].Installed = true
	}

	return statuses, nil
}

func isRoot() bool {
	return os.Geteuid() == 0
}
