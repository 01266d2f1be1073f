package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/convention"
	"github.com/vercom-dev/vercom/internal/ui"
)

// newTestDeps wires Dependencies with the default rule set and a forced
// headless UI, without touching the real working directory.
func newTestDeps() *Dependencies {
	hm := ui.NewHeadlessManager()
	hm.ForceHeadless(true)
	return &Dependencies{
		Rules:    convention.DefaultRuleSet(),
		Headless: hm,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// newValidateCmd builds a fresh validate command so tests can run in
// parallel without sharing cobra flag state.
func newValidateCmd(out io.Writer, in io.Reader) *cobra.Command {
	cmd := &cobra.Command{Use: "validate", Args: cobra.MaximumNArgs(1), RunE: runValidate}
	cmd.Flags().String("file", "", "")
	cmd.Flags().Bool("quiet", false, "")
	cmd.SetOut(out)
	if in != nil {
		cmd.SetIn(in)
	}
	return cmd
}

func TestRunValidateAcceptsConventionalMessage(t *testing.T) {
	SetDeps(newTestDeps())

	var out bytes.Buffer
	cmd := newValidateCmd(&out, nil)

	err := cmd.RunE(cmd, []string{"PATCH: My Project - v1.0.1\n\n- Fixed bug"})
	if err != nil {
		t.Fatalf("validate of conventional message failed: %v", err)
	}
	if !strings.Contains(out.String(), "follows the convention") {
		t.Errorf("output = %q, want success card", out.String())
	}
}

func TestRunValidateRejectsInvalidMessage(t *testing.T) {
	SetDeps(newTestDeps())

	var out bytes.Buffer
	cmd := newValidateCmd(&out, nil)

	err := cmd.RunE(cmd, []string{"fixed stuff"})
	if err == nil {
		t.Fatal("validate of unconventional message succeeded")
	}
	if !strings.Contains(out.String(), "violates the convention") {
		t.Errorf("output = %q, want failure card", out.String())
	}
}

func TestRunValidateReadsMessageFile(t *testing.T) {
	SetDeps(newTestDeps())

	path := filepath.Join(t.TempDir(), "COMMIT_EDITMSG")
	if err := os.WriteFile(path, []byte("UPDATE: web-app - v1.3.0"), 0o644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newValidateCmd(&out, nil)
	if err := cmd.Flags().Set("file", path); err != nil {
		t.Fatal(err)
	}

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("validate of message file failed: %v", err)
	}
}

func TestRunValidateReadsStdin(t *testing.T) {
	SetDeps(newTestDeps())

	var out bytes.Buffer
	cmd := newValidateCmd(&out, strings.NewReader("PATCH: web-app - v1.0.1"))
	if err := cmd.Flags().Set("file", "-"); err != nil {
		t.Fatal(err)
	}

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("validate from stdin failed: %v", err)
	}
}

func TestRunValidateRequiresMessage(t *testing.T) {
	SetDeps(newTestDeps())

	cmd := newValidateCmd(io.Discard, nil)
	if err := cmd.RunE(cmd, nil); err == nil {
		t.Fatal("validate without a message source succeeded")
	}
}
