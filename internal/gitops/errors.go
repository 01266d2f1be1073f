// Package gitops is the git collaborator layer: repository discovery and
// HEAD inspection through go-git, commit and amend through the system git
// binary, and commit-msg hook management. The convention engine never
// touches this package; it only sees the plain strings read here.
package gitops

import "errors"

// Sentinel errors for git operations.
var (
	// ErrNotRepository indicates the path is not inside a git repository.
	ErrNotRepository = errors.New("gitops: not a git repository")

	// ErrNoCommits indicates the repository has no HEAD commit yet.
	ErrNoCommits = errors.New("gitops: repository has no commits")

	// ErrNoStagedChanges indicates there is nothing staged to commit.
	ErrNoStagedChanges = errors.New("gitops: no staged changes")

	// ErrSystemGitNotFound indicates the git binary is not on PATH.
	ErrSystemGitNotFound = errors.New("gitops: system git not found in PATH")

	// ErrHookConflict indicates a foreign commit-msg hook is already installed.
	ErrHookConflict = errors.New("gitops: a commit-msg hook not managed by vercom already exists")

	// ErrHookNotInstalled indicates no vercom-managed hook to remove.
	ErrHookNotInstalled = errors.New("gitops: no vercom-managed commit-msg hook installed")
)
