// Package cli provides the Cobra command tree and dependency wiring for
// the vercom CLI. This file defines the Dependencies struct, the only
// place where concrete collaborators are instantiated; commands reach
// everything through it.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vercom-dev/vercom/internal/config"
	"github.com/vercom-dev/vercom/internal/convention"
	"github.com/vercom-dev/vercom/internal/gitops"
	"github.com/vercom-dev/vercom/internal/state"
	"github.com/vercom-dev/vercom/internal/ui"
)

// Dependencies holds the services used by CLI commands. Rule loading is
// eager (every command needs rules); the repository and the state store
// initialize lazily because validate must work outside a repository.
type Dependencies struct {
	Rules     *convention.RuleSet
	RulesPath string
	Repo      *gitops.Repo
	Store     *state.Store
	Headless  *ui.HeadlessManager
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates the dependency container. It should be called
// once during application startup.
func InitDependencies() {
	// CLI output is cards and plain text; structured logs stay silent
	// unless a command opts in.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	deps = &Dependencies{
		Headless: ui.NewHeadlessManager(),
		Logger:   logger,
	}
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// EnsureRules loads the rule set. exactPath, when non-empty, pins the
// rule file instead of discovering it. Subsequent calls are no-ops.
func (d *Dependencies) EnsureRules(exactPath string) error {
	if d.Rules != nil {
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	rules, from, err := config.Load(cwd, exactPath)
	if err != nil {
		return fmt.Errorf("load rules: %w", err)
	}
	d.Rules = rules
	d.RulesPath = from
	return nil
}

// EnsureRepo lazily opens the repository containing the working directory.
func (d *Dependencies) EnsureRepo() error {
	if d.Repo != nil {
		return nil
	}
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	repo, err := gitops.Open(cwd)
	if err != nil {
		return err
	}
	d.Repo = repo
	return nil
}

// EnsureStore lazily initializes the state store under the repository's
// .git directory. Requires the repository; opens it if needed.
func (d *Dependencies) EnsureStore(ctx context.Context) error {
	if d.Store != nil {
		return nil
	}
	if err := d.EnsureRepo(); err != nil {
		return err
	}
	gitDir, err := d.Repo.GitDir(ctx)
	if err != nil {
		return err
	}
	d.Store = state.NewStore(gitDir)
	return nil
}
