// # internal/app/app.go
package app

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"geninfo/internal/audit"
	"geninfo/internal/config"
	"geninfo/internal/docsync"
	"geninfo/internal/emit"
	"geninfo/internal/errors"
	"geninfo/internal/manifest"
)

// App runs the whole pipeline: manifest lint, info.json and CI emission,
// README table, docstring synchronization and the documentation audits.
// Everything is sequential; packages are processed in manifest order and
// files in sorted order so two runs produce identical output.
type App struct {
	Config   *config.Config
	Manifest *manifest.Manifest
	RunID    string
}

// Report is the structured outcome of one run. Pass is true only when no
// finding and no order warning surfaced anywhere.
type Report struct {
	RunID         string
	OrderWarnings []string
	Findings      []audit.Finding
	Rewritten     []string
	Packages      int
	Pass          bool
}

func New(cfg *config.Config) (*App, error) {
	m, err := manifest.Load(filepath.Join(cfg.Root, cfg.Manifest))
	if err != nil {
		return nil, err
	}
	return &App{
		Config:   cfg,
		Manifest: m,
		RunID:    uuid.NewString(),
	}, nil
}

func (a *App) Run() (*Report, error) {
	m := a.Manifest
	root := a.Config.Root
	report := &Report{RunID: a.RunID, Packages: len(m.CogOrder)}

	slog.Info("checking order in sections", "run_id", a.RunID)
	report.OrderWarnings = m.LintOrder()
	for _, w := range report.OrderWarnings {
		slog.Warn(w)
	}

	slog.Info("preparing repo info.json")
	if err := emit.WriteRepoInfo(root, m.Repo); err != nil {
		return nil, err
	}

	for _, pkg := range m.CogOrder {
		slog.Info("preparing cog info.json", "package", pkg)
		if err := emit.WriteCogInfo(root, pkg, emit.BuildCogInfo(m, pkg, a.hasBundledData(pkg))); err != nil {
			return nil, errors.AddContext(err, errors.CtxPackage, pkg)
		}
	}

	slog.Info("preparing CI file lists")
	if err := emit.WriteCILists(root, a.Config.CIDir, m); err != nil {
		return nil, err
	}

	slog.Info("updating cog table in README")
	if _, err := emit.UpdateReadme(filepath.Join(root, a.Config.Readme), m); err != nil {
		return nil, err
	}

	slog.Info("updating class docstrings")
	if err := a.syncDocstrings(report); err != nil {
		return nil, err
	}

	slog.Info("checking for cog_data_path usage")
	if err := a.checkDataPathUse(); err != nil {
		return nil, err
	}

	slog.Info("checking for missing help docstrings")
	slog.Info("checking for missing end user data statements")
	if err := a.runAudits(report); err != nil {
		return nil, err
	}

	report.Pass = len(report.Findings) == 0 && len(report.OrderWarnings) == 0
	return report, nil
}

// syncDocstrings brings every cog class docstring in line with the manifest.
// Any resolution failure is fatal for the whole run.
func (a *App) syncDocstrings(report *Report) error {
	for _, pkg := range a.Manifest.CogOrder {
		cog := a.Manifest.Cogs[pkg]

		entry, err := a.entryFile(pkg)
		if err != nil {
			return err
		}

		result, err := docsync.Sync(docsync.Request{
			PackageDir: filepath.Join(a.Config.Root, pkg),
			EntryFile:  entry,
			ClassName:  cog.Name,
			Text:       cog.DocstringText(a.Manifest.Repo.Name),
		})
		if err != nil {
			return errors.AddContext(err, errors.CtxPackage, pkg)
		}
		if result.Written {
			slog.Info("updated class docstring", "class", cog.Name, "path", result.Path)
			report.Rewritten = append(report.Rewritten, result.Path)
		}
	}
	return nil
}

func (a *App) checkDataPathUse() error {
	if !audit.IsGitAvailable() || !a.insideGitWorktree() {
		slog.Warn("no git repository available, skipping cog_data_path check")
		return nil
	}
	for _, pkg := range a.Manifest.CogOrder {
		uses, err := audit.UsesCogDataPath(a.Config.Root, pkg)
		if err != nil {
			return err
		}
		if uses {
			slog.Info("package uses cog_data_path, make sure the install message mentions it",
				"package", pkg)
		}
	}
	return nil
}

func (a *App) runAudits(report *Report) error {
	for _, pkg := range a.Manifest.CogOrder {
		files, err := a.packageFiles(pkg)
		if err != nil {
			return err
		}

		findings, err := audit.AuditDocstrings(pkg, files)
		if err != nil {
			return errors.AddContext(err, errors.CtxPackage, pkg)
		}

		entry, err := a.entryFile(pkg)
		if err != nil {
			return err
		}
		markerFindings, err := audit.AuditMarker(pkg, entry)
		if err != nil {
			return errors.AddContext(err, errors.CtxPackage, pkg)
		}
		findings = append(findings, markerFindings...)

		for _, f := range findings {
			slog.Warn(f.String())
		}
		report.Findings = append(report.Findings, findings...)
	}
	return nil
}

// entryFile is the package's designated entry file; a package without one is
// not a valid cog package and aborts the run.
func (a *App) entryFile(pkg string) (string, error) {
	entry := filepath.Join(a.Config.Root, pkg, "__init__.py")
	info, err := os.Stat(entry)
	if err != nil || info.IsDir() {
		return "", errors.New(errors.CodeUnresolvedPath,
			fmt.Sprintf("folder `%s` isn't a valid package", pkg)).
			WithContext(errors.CtxPackage, pkg)
	}
	return entry, nil
}

func (a *App) hasBundledData(pkg string) bool {
	info, err := os.Stat(filepath.Join(a.Config.Root, pkg, "data"))
	return err == nil && info.IsDir()
}

func (a *App) insideGitWorktree() bool {
	_, err := os.Stat(filepath.Join(a.Config.Root, ".git"))
	return err == nil
}
