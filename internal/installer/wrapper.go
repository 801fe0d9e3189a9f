// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gitauto-setup/internal/issue"

	"mvdan.cc/sh/v3/syntax"
)

// wrapperTemplate is the generated wrapper command. It delegates to the
// installed script through the language runtime and forwards all arguments.
const wrapperTemplate = `#!/bin/sh
exec %s %s "$@"
`

// WrapperContent renders the wrapper script for the current configuration.
func (i *Installer) WrapperContent() string {
	return fmt.Sprintf(wrapperTemplate, i.cfg.Runtime, i.cfg.ScriptPath())
}

// writeWrapper generates the wrapper command in the bin directory,
// executable. The content is parsed as POSIX shell before writing so a
// malformed runtime or path in the config can never produce a broken
// executable. An identical existing wrapper is left alone.
func (i *Installer) writeWrapper() error {
	dest := i.cfg.WrapperPath()
	content := i.WrapperContent()

	if err := validateShellScript(content, i.cfg.CommandName); err != nil {
		return issue.NewErrorContext().
			WithOperation("generate wrapper").
			WithResource(dest).
			WithSuggestion("Check runtime and install_dir in the config for shell metacharacters").
			Wrap(err).
			BuildError()
	}

	if existing, err := os.ReadFile(dest); err == nil {
		if bytes.Equal(existing, []byte(content)) && !i.opts.Force {
			i.record("wrapper command", OutcomeUnchanged, dest)
			if err := os.Chmod(dest, scriptPerm); err != nil {
				return issue.WrapWithContext(err, "set wrapper permissions", dest)
			}
			return nil
		}
	}

	if err := writeFileAtomic(dest, []byte(content), scriptPerm); err != nil {
		return issue.NewErrorContext().
			WithOperation("write wrapper").
			WithResource(dest).
			WithSuggestion("Writing into " + i.cfg.BinDir + " usually needs elevated privileges; re-run with sudo").
			Wrap(err).
			BuildError()
	}

	i.record("wrapper command", OutcomeDone, dest)
	return nil
}

// validateShellScript parses src as POSIX shell and rejects anything that
// does not parse cleanly.
func validateShellScript(src, name string) error {
	parser := syntax.NewParser(syntax.Variant(syntax.LangPOSIX))
	if _, err := parser.Parse(strings.NewReader(src), name); err != nil {
		return fmt.Errorf("generated wrapper does not parse as POSIX shell: %w", err)
	}
	return nil
}
