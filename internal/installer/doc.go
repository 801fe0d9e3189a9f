// SPDX-License-Identifier: MPL-2.0

// Package installer implements the gitauto install sequence: system
// dependencies, install directory, script copy, interpreter directive,
// wrapper command, and the final PATH check.
//
// Every step is idempotent — it inspects current state before mutating, so
// re-running an install converges on the same end state without duplicate
// work. Steps report an Outcome (done, unchanged, skipped) that the CLI
// renders per line.
package installer
