// Package installer orchestrates the bootstrap pipeline: environment
// checks, Homebrew installs, the destination guard, and the clone of the
// configuration repository. Steps run strictly in order; the first error
// aborts the rest of the run.
package installer

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"setup-mac/internal/brew"
	"setup-mac/internal/config"
	"setup-mac/internal/git"
	"setup-mac/internal/logger"
	"setup-mac/internal/model"
)

// EnvChecker is the slice of the environment checker the engine uses.
// It is satisfied by checker.Checker.
type EnvChecker interface {
	CheckOS() error
	CheckGit() error
	CheckBrew() error
}

// Engine runs the bootstrap pipeline. Collaborators are injected so the
// pipeline can be exercised without a real Homebrew or network.
type Engine struct {
	cfg    *config.Config
	check  EnvChecker
	brew   brew.Client
	git    git.Client
	dryRun bool
}

// New creates an engine for the given manifest and clients. With dryRun
// set, read-only steps (checks, installed queries, the destination
// guard) still run, but every mutating command is logged and skipped.
func New(cfg *config.Config, check EnvChecker, brewClient brew.Client, gitClient git.Client, dryRun bool) *Engine {
	return &Engine{
		cfg:    cfg,
		check:  check,
		brew:   brewClient,
		git:    gitClient,
		dryRun: dryRun,
	}
}

// Run executes the whole pipeline: OS check, git check, Homebrew check,
// index refresh, formula and font installs, destination guard, clone.
// The first error is returned immediately; nothing after it runs.
func (e *Engine) Run(ctx context.Context) error {
	if err := e.check.CheckOS(); err != nil {
		return err
	}
	if err := e.check.CheckGit(); err != nil {
		return err
	}
	if err := e.check.CheckBrew(); err != nil {
		return err
	}
	if err := e.InstallPackages(ctx); err != nil {
		return err
	}
	if err := e.CloneConfig(ctx); err != nil {
		return err
	}
	logger.Info("[INFO] Setup complete\n")
	return nil
}

// InstallPackages refreshes the Homebrew index once, then installs the
// manifest's formulae in list order, followed by the font casks. A
// package that is already installed is skipped with a warning; it is
// never an error. The first failed install aborts the remaining
// sequence.
func (e *Engine) InstallPackages(ctx context.Context) error {
	if e.dryRun {
		logger.Info("[INFO] Dry run: would refresh the Homebrew index\n")
	} else {
		logger.Info("[INFO] Refreshing the Homebrew index...\n")
		if err := e.brew.Update(ctx); err != nil {
			return model.WrapCLIError(model.ExitInstallFailed, "failed to refresh the Homebrew index", err)
		}
	}

	for _, formula := range e.cfg.Packages {
		if e.brew.IsInstalled(ctx, formula) {
			logger.Warn("[WARN] %s is already installed. Skipping.\n", formula)
			continue
		}
		if e.dryRun {
			logger.Info("[INFO] Dry run: would install %s\n", formula)
			continue
		}
		if err := e.brew.Install(ctx, formula); err != nil {
			return model.WrapCLIError(model.ExitInstallFailed,
				fmt.Sprintf("failed to install %s", formula), err)
		}
		logger.Info("[INFO] Installed %s\n", formula)
	}

	for _, cask := range e.cfg.Fonts {
		if e.brew.IsCaskInstalled(ctx, cask) {
			logger.Warn("[WARN] %s is already installed. Skipping.\n", cask)
			continue
		}
		if e.dryRun {
			logger.Info("[INFO] Dry run: would install cask %s\n", cask)
			continue
		}
		if err := e.brew.InstallCask(ctx, cask); err != nil {
			return model.WrapCLIError(model.ExitInstallFailed,
				fmt.Sprintf("failed to install cask %s", cask), err)
		}
		logger.Info("[INFO] Installed %s\n", cask)
	}

	return nil
}

// CloneConfig guards the destination, then clones the configuration
// repository into it.
func (e *Engine) CloneConfig(ctx context.Context) error {
	if err := e.guardDest(); err != nil {
		return err
	}

	if e.dryRun {
		logger.Info("[INFO] Dry run: would clone %s into %s\n", e.cfg.Repo.URL, e.cfg.Repo.Dest)
		return nil
	}

	logger.Info("[INFO] Cloning %s into %s...\n", e.cfg.Repo.URL, e.cfg.Repo.Dest)
	if err := e.git.Clone(ctx, e.cfg.Repo.URL, e.cfg.Repo.Dest); err != nil {
		return model.WrapCLIError(model.ExitCloneFailed,
			fmt.Sprintf("failed to clone %s", e.cfg.Repo.URL), err)
	}
	logger.Info("[INFO] Configuration repository cloned to %s\n", e.cfg.Repo.Dest)
	return nil
}

// guardDest aborts when the clone destination already exists and is not
// empty. No backup is performed; the user is told to move it aside. A
// missing or empty destination passes.
func (e *Engine) guardDest() error {
	dest := e.cfg.Repo.Dest

	entries, err := os.ReadDir(dest)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		// Exists but unreadable, or is a regular file.
		return model.WrapCLIError(model.ExitDestConflict,
			fmt.Sprintf("cannot inspect destination %s", dest), err)
	}
	if len(entries) > 0 {
		return model.NewCLIError(model.ExitDestConflict,
			fmt.Sprintf("%s already exists and is not empty; move it aside first (mv %s %s.bak) and re-run", dest, dest, dest))
	}
	return nil
}
