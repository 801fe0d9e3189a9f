// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"bytes"
	"os"

	"gitauto-setup/internal/issue"
)

// Shebang is the interpreter directive forced onto the installed script.
const Shebang = "#!/usr/bin/env python3"

// ensureShebang forces the first line of the installed script to be the
// interpreter directive. A script that already starts with it is left
// byte-for-byte untouched; otherwise exactly one directive line is
// prepended without altering the rest of the file.
func (i *Installer) ensureShebang() error {
	dest := i.cfg.ScriptPath()

	data, err := os.ReadFile(dest)
	if err != nil {
		return issue.WrapWithContext(err, "read installed script", dest)
	}

	if hasShebang(data) {
		i.record("interpreter directive", OutcomeUnchanged, Shebang)
		return nil
	}

	patched := append([]byte(Shebang+"\n"), data...)
	if err := writeFileAtomic(dest, patched, scriptPerm); err != nil {
		return issue.WrapWithContext(err, "prepend interpreter directive", dest)
	}

	i.record("interpreter directive", OutcomeDone, "prepended "+Shebang)
	return nil
}

// hasShebang reports whether data's first line is exactly the directive.
func hasShebang(data []byte) bool {
	directive := []byte(Shebang)
	if !bytes.HasPrefix(data, directive) {
		return false
	}
	rest := data[len(directive):]
	return len(rest) == 0 || rest[0] == '\n' || (rest[0] == '\r' && len(rest) > 1 && rest[1] == '\n')
}
