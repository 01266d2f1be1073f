package gitops

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hookMarker identifies scripts managed by vercom; install refuses to
// touch a commit-msg hook that lacks it.
const hookMarker = "# managed by vercom"

// hookScript is the commit-msg hook body. Git passes the path of the
// message file as the first argument.
const hookScript = `#!/bin/sh
` + hookMarker + `
exec vercom validate --file "$1"
`

// InstallCommitMsgHook writes the commit-msg hook and returns its path.
// An existing vercom-managed hook is overwritten; a foreign hook is left
// alone and reported as ErrHookConflict.
func (r *Repo) InstallCommitMsgHook(ctx context.Context) (string, error) {
	path, err := r.commitMsgHookPath(ctx)
	if err != nil {
		return "", err
	}
	if err := installHookFile(path); err != nil {
		return "", err
	}

	r.logger.Debug("commit-msg hook installed", "path", path)
	return path, nil
}

// UninstallCommitMsgHook removes the vercom-managed hook. Foreign hooks
// are never removed.
func (r *Repo) UninstallCommitMsgHook(ctx context.Context) error {
	path, err := r.commitMsgHookPath(ctx)
	if err != nil {
		return err
	}
	if err := uninstallHookFile(path); err != nil {
		return err
	}

	r.logger.Debug("commit-msg hook removed", "path", path)
	return nil
}

func installHookFile(path string) error {
	if content, err := os.ReadFile(path); err == nil {
		if !strings.Contains(string(content), hookMarker) {
			return fmt.Errorf("%w: %s", ErrHookConflict, path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(hookScript), 0o755); err != nil {
		return fmt.Errorf("write hook %s: %w", path, err)
	}
	return nil
}

func uninstallHookFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrHookNotInstalled, path)
	}
	if !strings.Contains(string(content), hookMarker) {
		return fmt.Errorf("%w: %s", ErrHookConflict, path)
	}

	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove hook %s: %w", path, err)
	}
	return nil
}

func (r *Repo) commitMsgHookPath(ctx context.Context) (string, error) {
	gitDir, err := r.GitDir(ctx)
	if err != nil {
		return "", err
	}
	return filepath.Join(gitDir, "hooks", "commit-msg"), nil
}
