package gitops

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// Commit creates a commit with the given message via the system git binary.
// The message is passed through a temp file so multi-line bodies survive
// shell quoting. Returns ErrNoStagedChanges when nothing is staged.
func (r *Repo) Commit(ctx context.Context, message string) error {
	return r.commit(ctx, message, false)
}

// Amend replaces the most recent commit's message. Policy checks happen in
// the caller; this only performs the operation.
func (r *Repo) Amend(ctx context.Context, message string) error {
	return r.commit(ctx, message, true)
}

func (r *Repo) commit(ctx context.Context, message string, amend bool) error {
	if !amend {
		staged, err := r.HasStagedChanges()
		if err != nil {
			return err
		}
		if !staged {
			return ErrNoStagedChanges
		}
	}

	file, err := os.CreateTemp("", "vercom-msg-")
	if err != nil {
		return fmt.Errorf("create message file: %w", err)
	}
	defer os.Remove(file.Name())

	if _, err := file.WriteString(message); err != nil {
		file.Close()
		return fmt.Errorf("write message file: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("close message file: %w", err)
	}

	args := []string{"commit", "-F", file.Name()}
	if amend {
		args = []string{"commit", "--amend", "-F", file.Name()}
	}

	if _, err := execGit(ctx, r.root, args...); err != nil {
		return err
	}

	r.logger.Debug("commit created", "amend", amend)
	return nil
}

// execGit executes a git command in the given directory and returns stdout.
// It sets GIT_TERMINAL_PROMPT=0 and LC_ALL=C for consistent behavior and
// bounds the call with defaultGitTimeout when the context has no deadline.
func execGit(ctx context.Context, dir string, args ...string) (string, error) {
	gitPath, err := exec.LookPath("git")
	if err != nil {
		return "", fmt.Errorf("system git lookup: %w", ErrSystemGitNotFound)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultGitTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, gitPath, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_TERMINAL_PROMPT=0",
		"LC_ALL=C",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		stderrStr := strings.TrimSpace(stderr.String())
		if len(args) > 0 {
			return "", fmt.Errorf("git %s: %s: %w", args[0], stderrStr, err)
		}
		return "", fmt.Errorf("git: %s: %w", stderrStr, err)
	}

	return strings.TrimRight(stdout.String(), "\n\r"), nil
}
