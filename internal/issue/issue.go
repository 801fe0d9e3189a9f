// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies a known installer failure mode with operator-facing guidance.
type Id int

const (
	SourceScriptMissingId Id = iota + 1
	PackageManagerNotFoundId
	CommandNotResolvableId
	RuntimeTooOldId
)

// MarkdownMsg is markdown text rendered to the terminal via glamour.
type MarkdownMsg string

// HttpLink is an external URL that may help the operator.
type HttpLink string

// Issue is a cataloged failure mode. Unlike ActionableError, which wraps
// arbitrary errors as they occur, an Issue is a fixed piece of guidance
// shown when the installer cannot proceed at all.
type Issue struct {
	id       Id
	mdMsg    MarkdownMsg
	extLinks []HttpLink
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

// Render renders the issue's markdown guidance with the given glamour style.
func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n## See also:\n"
		for _, link := range i.extLinks {
			extraMd += "- " + string(link) + "\n"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	sourceScriptMissingIssue = &Issue{
		id: SourceScriptMissingId,
		mdMsg: `
# gitauto.py not found

A fresh install needs the ` + "`gitauto.py`" + ` script in the working
directory (or at the path given via ` + "`--source`" + `), and no previous
installation exists to fall back on.

## Things you can try:
- Run the installer from the directory containing the script:
~~~
$ cd /path/to/gitauto
$ gitauto-setup install
~~~
- Or point at the script explicitly:
~~~
$ gitauto-setup install --source /path/to/gitauto.py
~~~`,
	}

	packageManagerNotFoundIssue = &Issue{
		id: PackageManagerNotFoundId,
		mdMsg: `
# No supported package manager found

A system dependency is missing and none of the supported package managers
(apt-get, dnf, yum, pacman, zypper, apk) resolve on PATH.

## Things you can try:
- Install the missing dependency manually, then re-run:
~~~
$ gitauto-setup install --skip-deps
~~~
- Or name your package manager in the config file:
~~~toml
package_manager = "apt-get"
~~~`,
	}

	commandNotResolvableIssue = &Issue{
		id: CommandNotResolvableId,
		mdMsg: `
# Installed command is not on PATH

The wrapper was written, but the command does not resolve from your shell.

## Things you can try:
- Check that the wrapper's directory is on PATH:
~~~
$ echo "$PATH"
~~~
- Add it to your shell profile if missing:
~~~
$ export PATH="/usr/local/bin:$PATH"
~~~
- Then verify:
~~~
$ command -v gitauto
~~~`,
	}

	runtimeTooOldIssue = &Issue{
		id: RuntimeTooOldId,
		mdMsg: `
# Language runtime is too old

The installed runtime version is below the configured minimum.

## Things you can try:
- Upgrade the runtime through your package manager, then re-run the install.
- Or lower (or clear) ` + "`min_runtime_version`" + ` in the config file.`,
		extLinks: []HttpLink{"https://www.python.org/downloads/"},
	}

	catalog = map[Id]*Issue{
		SourceScriptMissingId:    sourceScriptMissingIssue,
		PackageManagerNotFoundId: packageManagerNotFoundIssue,
		CommandNotResolvableId:   commandNotResolvableIssue,
		RuntimeTooOldId:          runtimeTooOldIssue,
	}
)

// Lookup returns the cataloged issue for the given id, or nil when unknown.
func Lookup(id Id) *Issue {
	return catalog[id]
}

// Ids returns the sorted ids of all cataloged issues.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
