// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"os"

	"gitauto-setup/internal/issue"
)

// Uninstall removes the wrapper command and the install directory. Each
// removal tolerates prior absence, so uninstalling twice is harmless.
func (i *Installer) Uninstall() ([]StepResult, error) {
	i.results = nil

	wrapper := i.cfg.WrapperPath()
	switch err := os.Remove(wrapper); {
	case err == nil:
		i.record("wrapper command", OutcomeDone, "removed "+wrapper)
	case os.IsNotExist(err):
		i.record("wrapper command", OutcomeUnchanged, "not installed")
	default:
		return i.results, issue.NewErrorContext().
			WithOperation("remove wrapper").
			WithResource(wrapper).
			WithSuggestion("Removing from " + i.cfg.BinDir + " usually needs elevated privileges; re-run with sudo").
			Wrap(err).
			BuildError()
	}

	dir := i.cfg.InstallDir
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		i.record("install directory", OutcomeUnchanged, "not installed")
		return i.results, nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return i.results, issue.NewErrorContext().
			WithOperation("remove install directory").
			WithResource(dir).
			WithSuggestion("Removing " + dir + " usually needs elevated privileges; re-run with sudo").
			Wrap(err).
			BuildError()
	}
	i.record("install directory", OutcomeDone, "removed "+dir)

	return i.results, nil
}
