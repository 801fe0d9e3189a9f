// SPDX-License-Identifier: MPL-2.0

package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/mod/semver"
)

var (
	// ErrInvalidPath is returned when a configured path is empty, relative,
	// or whitespace-only.
	ErrInvalidPath = errors.New("invalid path")
	// ErrInvalidName is returned when a command, script, or binary name is
	// empty or contains a path separator.
	ErrInvalidName = errors.New("invalid name")
	// ErrInvalidVersion is returned when min_runtime_version is not a valid
	// semantic version.
	ErrInvalidVersion = errors.New("invalid minimum runtime version")
)

type (
	// InvalidPathError is returned when a configured path fails validation.
	// It wraps ErrInvalidPath for errors.Is() compatibility.
	InvalidPathError struct {
		Field string
		Value string
	}

	// InvalidNameError is returned when a configured name fails validation.
	// It wraps ErrInvalidName for errors.Is() compatibility.
	InvalidNameError struct {
		Field string
		Value string
	}

	// UIConfig holds presentation settings.
	UIConfig struct {
		// Verbose enables step-level debug logging.
		Verbose bool `mapstructure:"verbose" toml:"verbose"`
	}

	// Config is the effective installer configuration. The zero value is not
	// usable; obtain one from DefaultConfig or Load.
	Config struct {
		// InstallDir is the directory the script is installed into.
		InstallDir string `mapstructure:"install_dir" toml:"install_dir"`

		// BinDir is the directory the wrapper command is written to.
		BinDir string `mapstructure:"bin_dir" toml:"bin_dir"`

		// CommandName is the name of the generated wrapper command.
		CommandName string `mapstructure:"command_name" toml:"command_name"`

		// ScriptName is the file name of the installed script.
		ScriptName string `mapstructure:"script_name" toml:"script_name"`

		// Runtime is the language runtime the wrapper delegates to.
		Runtime string `mapstructure:"runtime" toml:"runtime"`

		// VCSTool is the version-control dependency checked alongside the runtime.
		VCSTool string `mapstructure:"vcs_tool" toml:"vcs_tool"`

		// PackageManager overrides package manager auto-detection when set.
		PackageManager string `mapstructure:"package_manager" toml:"package_manager"`

		// MinRuntimeVersion gates installs on a minimum runtime version
		// (e.g. "3.8"). Empty disables the gate.
		MinRuntimeVersion string `mapstructure:"min_runtime_version" toml:"min_runtime_version"`

		UI UIConfig `mapstructure:"ui" toml:"ui"`
	}
)

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("%s: %s %q must be an absolute path", ErrInvalidPath, e.Field, e.Value)
}

func (e *InvalidPathError) Unwrap() error { return ErrInvalidPath }

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("%s: %s %q must be a bare file name", ErrInvalidName, e.Field, e.Value)
}

func (e *InvalidNameError) Unwrap() error { return ErrInvalidName }

// DefaultConfig returns the conventional gitauto install layout.
func DefaultConfig() *Config {
	return &Config{
		InstallDir:  "/opt/gitAuto",
		BinDir:      "/usr/local/bin",
		CommandName: "gitauto",
		ScriptName:  "gitauto.py",
		Runtime:     "python3",
		VCSTool:     "git",
	}
}

// ScriptPath returns the absolute path of the installed script.
func (c *Config) ScriptPath() string {
	return filepath.Join(c.InstallDir, c.ScriptName)
}

// WrapperPath returns the absolute path of the generated wrapper command.
func (c *Config) WrapperPath() string {
	return filepath.Join(c.BinDir, c.CommandName)
}

// Validate checks the configuration for values the installer cannot work
// with. It reports the first problem found.
func (c *Config) Validate() error {
	paths := []struct{ field, value string }{
		{"install_dir", c.InstallDir},
		{"bin_dir", c.BinDir},
	}
	for _, p := range paths {
		if strings.TrimSpace(p.value) == "" || !filepath.IsAbs(p.value) {
			return &InvalidPathError{Field: p.field, Value: p.value}
		}
	}

	names := []struct{ field, value string }{
		{"command_name", c.CommandName},
		{"script_name", c.ScriptName},
		{"runtime", c.Runtime},
		{"vcs_tool", c.VCSTool},
	}
	for _, n := range names {
		if strings.TrimSpace(n.value) == "" || strings.ContainsRune(n.value, filepath.Separator) {
			return &InvalidNameError{Field: n.field, Value: n.value}
		}
	}

	if c.MinRuntimeVersion != "" {
		if !semver.IsValid(canonicalVersion(c.MinRuntimeVersion)) {
			return fmt.Errorf("%w: %q", ErrInvalidVersion, c.MinRuntimeVersion)
		}
	}

	return nil
}

// canonicalVersion normalizes a user-supplied version like "3.8" into the
// "v3.8" form golang.org/x/mod/semver expects.
func canonicalVersion(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return v
}
