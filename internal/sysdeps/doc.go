// SPDX-License-Identifier: MPL-2.0

// Package sysdeps checks for and installs the system dependencies the
// gitauto script needs: a language runtime and a version-control tool.
//
// Presence checks and package-manager invocations go through the Runner
// interface so tests can simulate arbitrary host states. Detection covers
// the common Linux package managers; a dependency that is already on PATH
// never triggers an install action.
package sysdeps
