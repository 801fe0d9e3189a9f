// SPDX-License-Identifier: MPL-2.0

// Package cmd contains all CLI commands for gitauto-setup.
//
// This package implements the Cobra command hierarchy: the root command,
// install, doctor, uninstall, and config management.
package cmd
