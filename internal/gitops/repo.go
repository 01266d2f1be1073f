package gitops

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
)

// defaultGitTimeout bounds every system-git invocation.
const defaultGitTimeout = 10 * time.Second

// CommitInfo is the HEAD snapshot handed to the amend policy and the
// suggestion command: the raw message and when it was committed.
type CommitInfo struct {
	Hash    string
	Message string
	When    time.Time
}

// Repo wraps an opened repository. Reads go through go-git; mutations go
// through the system git binary so hooks and user configuration behave
// exactly as they would for a hand-typed commit.
type Repo struct {
	repo   *git.Repository
	root   string
	logger *slog.Logger
}

// Open discovers the repository containing path, walking up to the
// repository root the same way git itself does.
// Returns ErrNotRepository when path is not inside a repository.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repository at %s: %w", path, ErrNotRepository)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("repository worktree: %w", err)
	}
	root := filepath.Clean(wt.Filesystem.Root())

	logger := slog.Default().With("module", "gitops")
	logger.Debug("repository opened", "root", root)

	return &Repo{repo: repo, root: root, logger: logger}, nil
}

// Root returns the absolute path to the repository root directory.
func (r *Repo) Root() string {
	return r.root
}

// GitDir resolves the repository's .git directory, which may live outside
// the worktree (linked worktrees, submodules).
func (r *Repo) GitDir(ctx context.Context) (string, error) {
	out, err := execGit(ctx, r.root, "rev-parse", "--git-dir")
	if err != nil {
		return "", fmt.Errorf("resolve git dir: %w", err)
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(r.root, out)
	}
	return filepath.Clean(out), nil
}

// HeadCommit returns the message and committer timestamp of HEAD.
// Returns ErrNoCommits for a freshly initialized repository.
func (r *Repo) HeadCommit() (*CommitInfo, error) {
	ref, err := r.repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", ErrNoCommits)
	}

	commit, err := r.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("read HEAD commit %s: %w", ref.Hash(), err)
	}

	r.logger.Debug("HEAD commit read", "hash", ref.Hash().String())
	return &CommitInfo{
		Hash:    ref.Hash().String(),
		Message: commit.Message,
		When:    commit.Committer.When,
	}, nil
}

// HasStagedChanges reports whether anything is staged for commit.
func (r *Repo) HasStagedChanges() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("repository worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("worktree status: %w", err)
	}

	for _, s := range status {
		if s.Staging != git.Unmodified && s.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// StageAll stages every modified, added, deleted, renamed, or copied file,
// mirroring "git commit --all" semantics for tracked files.
func (r *Repo) StageAll() error {
	wt, err := r.repo.Worktree()
	if err != nil {
		return fmt.Errorf("repository worktree: %w", err)
	}

	status, err := wt.Status()
	if err != nil {
		return fmt.Errorf("worktree status: %w", err)
	}

	for file, s := range status {
		switch s.Worktree {
		case git.Modified, git.Added, git.Deleted, git.Renamed, git.Copied, git.UpdatedButUnmerged:
			if _, err := wt.Add(file); err != nil {
				return fmt.Errorf("stage %s: %w", file, err)
			}
		}
	}
	return nil
}
