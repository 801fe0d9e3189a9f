// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gitauto-setup/internal/issue"
)

// scriptPerm is the mode of the installed script and the wrapper command.
const scriptPerm = 0o755

// installScript copies the source script into the install directory with the
// executable bit set. When the destination already holds the source content
// in its converged form (interpreter directive ensured) the copy is skipped
// (unless forced); when the source is absent but a prior install exists,
// the step is skipped entirely.
func (i *Installer) installScript(source string, haveSource bool) error {
	dest := i.cfg.ScriptPath()

	if !haveSource {
		// Run() guarantees a prior install exists on this path.
		i.record("install script", OutcomeSkipped, "no source; keeping installed copy")
		return nil
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return issue.WrapWithContext(err, "read source script", source)
	}

	if fileExists(dest) && !i.opts.Force {
		same, err := matchesInstalled(dest, data)
		if err != nil {
			return issue.WrapWithContext(err, "compare script content", dest)
		}
		if same {
			i.record("install script", OutcomeUnchanged, dest)
			// The executable bit may still be missing on a hand-copied file.
			if err := os.Chmod(dest, scriptPerm); err != nil {
				return issue.WrapWithContext(err, "set script permissions", dest)
			}
			return nil
		}
	}

	if err := writeFileAtomic(dest, data, scriptPerm); err != nil {
		return issue.NewErrorContext().
			WithOperation("install script").
			WithResource(dest).
			WithSuggestion("Writing into " + i.cfg.InstallDir + " usually needs elevated privileges; re-run with sudo").
			Wrap(err).
			BuildError()
	}

	i.record("install script", OutcomeDone, source+" -> "+dest)
	return nil
}

// matchesInstalled reports whether the installed script at dest already
// holds the converged form of source: the source bytes with the interpreter
// directive ensured. Comparing against the raw source instead would see the
// directive prepended by a previous run as a difference and recopy forever.
func matchesInstalled(dest string, source []byte) (bool, error) {
	got, err := fileHash(dest)
	if err != nil {
		return false, err
	}

	want := source
	if !hasShebang(want) {
		want = append([]byte(Shebang+"\n"), want...)
	}
	sum := sha256.Sum256(want)

	return got == hex.EncodeToString(sum[:]), nil
}

// fileHash computes the lowercase hex SHA-256 digest of the file at path,
// streaming to avoid loading the whole file.
func fileHash(path string) (_ string, err error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer func() {
		// Read-only handle; close errors are exotic.
		_ = f.Close()
	}()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing file %s: %w", path, err)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// writeFileAtomic writes data to path via a temp file in the same directory
// followed by a rename, so readers never observe a half-written script.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
