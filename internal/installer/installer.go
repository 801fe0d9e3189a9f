// SPDX-License-Identifier: MPL-2.0

package installer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"gitauto-setup/internal/config"
	"gitauto-setup/internal/issue"
	"gitauto-setup/internal/sysdeps"

	"github.com/charmbracelet/log"
)

const (
	// OutcomeDone indicates the step mutated state.
	OutcomeDone Outcome = "done"
	// OutcomeUnchanged indicates the desired state was already in place.
	OutcomeUnchanged Outcome = "unchanged"
	// OutcomeSkipped indicates the step did not apply to this run.
	OutcomeSkipped Outcome = "skipped"
)

var (
	// ErrSourceMissing indicates a fresh install with no gitauto.py in the
	// working directory and no prior installation to fall back on.
	ErrSourceMissing = errors.New("source script not found")

	// ErrCommandNotResolvable indicates the wrapper was written but the
	// command does not resolve on PATH.
	ErrCommandNotResolvable = errors.New("installed command not resolvable on PATH")

	// ErrRuntimeTooOld indicates the runtime version is below the
	// configured minimum.
	ErrRuntimeTooOld = errors.New("runtime version below configured minimum")
)

type (
	// Outcome classifies what a step did.
	Outcome string

	// StepResult reports one completed step for CLI rendering.
	StepResult struct {
		Name    string
		Outcome Outcome
		Detail  string
	}

	// Options carries per-run install inputs.
	Options struct {
		// SourcePath is the gitauto.py to install. Empty means
		// "./<script_name>" in the working directory.
		SourcePath string

		// Force recopies the script and rewrites the wrapper even when
		// content hashes match.
		Force bool

		// SkipDeps skips the system dependency step entirely.
		SkipDeps bool
	}

	// Installer runs the install sequence against the host filesystem.
	Installer struct {
		cfg     *config.Config
		runner  sysdeps.Runner
		logger  *log.Logger
		opts    Options
		results []StepResult
	}
)

// New builds an Installer.
func New(cfg *config.Config, runner sysdeps.Runner, logger *log.Logger, opts Options) *Installer {
	return &Installer{cfg: cfg, runner: runner, logger: logger, opts: opts}
}

func (i *Installer) record(name string, outcome Outcome, detail string) {
	i.logger.Debug("step finished", "step", name, "outcome", outcome, "detail", detail)
	i.results = append(i.results, StepResult{Name: name, Outcome: outcome, Detail: detail})
}

// sourcePath resolves the script source for this run.
func (i *Installer) sourcePath() string {
	if i.opts.SourcePath != "" {
		return i.opts.SourcePath
	}
	return i.cfg.ScriptName
}

// Run executes the install sequence in order. On error the returned results
// cover the steps completed so far; a fresh install with a missing source
// fails before any filesystem write.
func (i *Installer) Run(ctx context.Context) ([]StepResult, error) {
	i.results = nil

	if err := i.ensureDependencies(ctx); err != nil {
		return i.results, err
	}

	// The source predicate runs before any filesystem mutation so a doomed
	// fresh install leaves nothing behind beyond dependency installation.
	source := i.sourcePath()
	haveSource := fileExists(source)
	previouslyInstalled := fileExists(i.cfg.ScriptPath())
	if !haveSource && !previouslyInstalled {
		return i.results, issue.NewErrorContext().
			WithOperation("install script").
			WithResource(source).
			WithSuggestion("Run gitauto-setup from the directory containing " + i.cfg.ScriptName).
			WithSuggestion("Or pass --source /path/to/" + i.cfg.ScriptName).
			Wrap(ErrSourceMissing).
			BuildError()
	}

	if err := i.ensureInstallDir(); err != nil {
		return i.results, err
	}
	if err := i.installScript(source, haveSource); err != nil {
		return i.results, err
	}
	if err := i.ensureShebang(); err != nil {
		return i.results, err
	}
	if err := i.writeWrapper(); err != nil {
		return i.results, err
	}
	if err := i.verifyCommand(); err != nil {
		return i.results, err
	}

	return i.results, nil
}

// ensureDependencies installs missing system dependencies and applies the
// optional minimum runtime version gate.
func (i *Installer) ensureDependencies(ctx context.Context) error {
	if i.opts.SkipDeps {
		i.record("dependencies", OutcomeSkipped, "--skip-deps")
		return nil
	}

	checker := sysdeps.NewChecker(i.runner, i.logger, i.cfg.PackageManager)
	statuses, err := checker.Ensure(ctx, sysdeps.Defaults(i.cfg.Runtime, i.cfg.VCSTool))
	if err != nil {
		return err
	}

	var installed []string
	for _, st := range statuses {
		if st.Installed {
			installed = append(installed, st.Dependency.Binary)
		}
	}
	if len(installed) > 0 {
		i.record("dependencies", OutcomeDone, "installed "+strings.Join(installed, ", "))
	} else {
		i.record("dependencies", OutcomeUnchanged, "all present")
	}

	if i.cfg.MinRuntimeVersion != "" {
		got, err := checker.RuntimeVersion(ctx, i.cfg.Runtime)
		if err != nil {
			return issue.WrapWithContext(err, "check runtime version", i.cfg.Runtime)
		}
		if !sysdeps.MeetsMinimum(got, i.cfg.MinRuntimeVersion) {
			return issue.NewErrorContext().
				WithOperation("check runtime version").
				WithResource(i.cfg.Runtime).
				WithSuggestion(fmt.Sprintf("Found %s, need at least %s", got, i.cfg.MinRuntimeVersion)).
				WithSuggestion("Upgrade the runtime or clear min_runtime_version in the config").
				Wrap(ErrRuntimeTooOld).
				BuildError()
		}
	}

	return nil
}

// ensureInstallDir creates the install directory when absent.
func (i *Installer) ensureInstallDir() error {
	dir := i.cfg.InstallDir

	if info, err := os.Stat(dir); err == nil {
		if !info.IsDir() {
			return issue.NewErrorContext().
				WithOperation("create install directory").
				WithResource(dir).
				WithSuggestion("A regular file occupies the install path; move it aside").
				Wrap(fmt.Errorf("not a directory")).
				BuildError()
		}
		i.record("install directory", OutcomeUnchanged, dir)
		return nil
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return issue.NewErrorContext().
			WithOperation("create install directory").
			WithResource(dir).
			WithSuggestion("Creating " + dir + " usually needs elevated privileges; re-run with sudo").
			Wrap(err).
			BuildError()
	}
	i.record("install directory", OutcomeDone, dir)
	return nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
