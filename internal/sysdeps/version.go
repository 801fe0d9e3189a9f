// SPDX-License-Identifier: MPL-2.0

package sysdeps

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/mod/semver"
)

// versionPattern extracts a dotted version number from runtime banners
// like "Python 3.11.4".
var versionPattern = regexp.MustCompile(`(\d+(?:\.\d+){0,2})`)

// RuntimeVersion probes the runtime's version by running "<runtime> --version"
// and extracting the first dotted version number from its output.
func (c *Checker) RuntimeVersion(ctx context.Context, runtime string) (string, error) {
	out, err := c.runner.Output(ctx, runtime, "--version")
	if err != nil {
		return "", fmt.Errorf("probe %s version: %w", runtime, err)
	}

	m := versionPattern.FindString(out)
	if m == "" {
		return "", fmt.Errorf("probe %s version: no version number in %q", runtime, out)
	}
	return m, nil
}

// MeetsMinimum reports whether got satisfies the min version requirement.
// Both values accept plain dotted forms like "3.8" or "3.11.4".
// An empty min always passes.
func MeetsMinimum(got, min string) bool {
	if min == "" {
		return true
	}
	return semver.Compare(canonical(got), canonical(min)) >= 0
}

// canonical normalizes a dotted version into the "vX.Y.Z" form
// golang.org/x/mod/semver expects.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return v
	}
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	return semver.Canonical(v)
}
