// SPDX-License-Identifier: MPL-2.0

// Package issue provides structured, user-facing error reporting for the
// installer. ActionableError carries the failed operation, the resource
// involved, and concrete suggestions for the operator re-running the tool.
// The Issue catalog holds glamour-rendered markdown guidance for the
// handful of failure modes that stop an installation outright.
package issue
