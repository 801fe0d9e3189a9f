// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"os"
	"path/filepath"
	"strings"

	"gitauto-setup/internal/issue"
)

// verifyCommand checks that the installed command resolves on PATH. This is
// the install's post-condition: a wrapper nobody can invoke is a failed
// install even though every file landed.
func (i *Installer) verifyCommand() error {
	name := i.cfg.CommandName

	path, err := i.runner.LookPath(name)
	if err != nil {
		ec := issue.NewErrorContext().
			WithOperation("verify command").
			WithResource(name).
			Wrap(ErrCommandNotResolvable)
		if !dirOnPath(i.cfg.BinDir) {
			ec.WithSuggestion(i.cfg.BinDir + " is not on PATH; add it to your shell profile")
		} else {
			ec.WithSuggestion("Open a new shell and run 'command -v " + name + "'")
		}
		return ec.BuildError()
	}

	i.record("verify command", OutcomeDone, name+" -> "+path)
	return nil
}

// dirOnPath reports whether dir appears in the PATH environment variable.
func dirOnPath(dir string) bool {
	for _, entry := range strings.Split(os.Getenv("PATH"), string(os.PathListSeparator)) {
		if entry == "" {
			continue
		}
		if filepath.Clean(entry) == filepath.Clean(dir) {
			return true
		}
	}
	return false
}
