package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/convention"
	"github.com/vercom-dev/vercom/internal/semver"
	"github.com/vercom-dev/vercom/internal/ui"
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Compose and create a convention-following commit",
	Long: `Compose a commit message through the interactive wizard and commit
the staged changes with it.

Every answer can be supplied with a flag instead; with --no-input all of
--type, --project, and --version are required. The generated message is
validated before git runs, so a commit created here always follows the
convention.`,
	Args: cobra.NoArgs,
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)

	commitCmd.Flags().StringP("type", "t", "", "Commit type (e.g. RELEASE, UPDATE, PATCH)")
	commitCmd.Flags().StringP("project", "p", "", "Project name")
	commitCmd.Flags().String("version", "", "Version for the subject (e.g. v1.2.3)")
	commitCmd.Flags().StringP("body", "b", "", "Message body")
	commitCmd.Flags().BoolP("all", "a", false, "Stage tracked file changes before committing")
	commitCmd.Flags().Bool("amend", false, "Amend the previous commit instead (same as vercom amend)")
	commitCmd.Flags().Bool("dry-run", false, "Print the generated message without committing")
}

// commitAnswers collects the wizard answers, prefilled from flags.
type commitAnswers struct {
	TypeName string
	Project  string
	Version  string
	Body     string
}

func runCommit(cmd *cobra.Command, args []string) error {
	if amend, _ := cmd.Flags().GetBool("amend"); amend {
		return runAmend(cmd, args)
	}

	ctx := cmd.Context()
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	answers := answersFromFlags(cmd)
	if err := completeAnswers(ctx, &answers); err != nil {
		return err
	}

	ver, err := semver.Parse(answers.Version)
	if err != nil {
		return fmt.Errorf("version %q: %w", answers.Version, err)
	}

	message, err := convention.Generate(answers.TypeName, answers.Project, ver, answers.Body, deps.Rules)
	if err != nil {
		return err
	}
	if result := convention.Validate(message, deps.Rules); !result.Valid {
		return fmt.Errorf("generated message violates the convention: %s", result.Error)
	}

	if dryRun {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Card("Generated message", message))
		return nil
	}

	if err := deps.EnsureRepo(); err != nil {
		return err
	}

	spin := ui.NewSpinner(deps.Headless, cmd.OutOrStdout(), "Committing")
	if all, _ := cmd.Flags().GetBool("all"); all {
		spin.SetTitle("Staging changes")
		if err := deps.Repo.StageAll(); err != nil {
			spin.Stop()
			return err
		}
		spin.SetTitle("Committing")
	}
	err = deps.Repo.Commit(ctx, message)
	spin.Stop()
	if err != nil {
		return err
	}

	rememberProject(ctx, answers.Project)

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessCard("Committed",
		ui.KeyValue("type", answers.TypeName),
		ui.KeyValue("project", answers.Project),
		ui.KeyValue("version", ver.String()),
	))
	return nil
}

func answersFromFlags(cmd *cobra.Command) commitAnswers {
	typeName, _ := cmd.Flags().GetString("type")
	project, _ := cmd.Flags().GetString("project")
	version, _ := cmd.Flags().GetString("version")
	body, _ := cmd.Flags().GetString("body")
	return commitAnswers{TypeName: typeName, Project: project, Version: version, Body: body}
}

// completeAnswers fills the blanks interactively. In headless mode every
// blank except the body is an error.
func completeAnswers(ctx context.Context, answers *commitAnswers) error {
	if deps.Headless.IsHeadless() {
		var missing []string
		if answers.TypeName == "" {
			missing = append(missing, "--type")
		}
		if answers.Project == "" {
			missing = append(missing, "--project")
		}
		if answers.Version == "" {
			missing = append(missing, "--version")
		}
		if len(missing) > 0 {
			return fmt.Errorf("non-interactive mode requires %s", strings.Join(missing, ", "))
		}
		return nil
	}

	if answers.TypeName == "" {
		if err := askType(&answers.TypeName); err != nil {
			return err
		}
	}
	if _, ok := deps.Rules.Type(answers.TypeName); !ok {
		return fmt.Errorf("%w: %q", convention.ErrUnknownType, answers.TypeName)
	}
	if answers.Project == "" {
		if err := askProject(ctx, &answers.Project); err != nil {
			return err
		}
	}
	if answers.Version == "" {
		if err := askVersion(ctx, answers.TypeName, &answers.Version); err != nil {
			return err
		}
	}
	if answers.Body == "" {
		if err := askBody(&answers.Body); err != nil {
			return err
		}
	}
	return nil
}

// Each question runs as its own huh.Form, one group per form.
func runForm(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(ui.FormTheme()).
		WithAccessible(false)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return fmt.Errorf("cancelled")
		}
		return fmt.Errorf("wizard error: %w", err)
	}
	return nil
}

func askType(value *string) error {
	names := deps.Rules.TypeNames()
	opts := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		ct, _ := deps.Rules.Type(name)
		label := typeGlyph(name, ct)
		if ct.Description != "" {
			label += " - " + ct.Description
		}
		opts = append(opts, huh.NewOption(label, name))
	}

	return runForm(huh.NewSelect[string]().
		Title("Commit type").
		Options(opts...).
		Value(value))
}

func askProject(ctx context.Context, value *string) error {
	placeholder := "my-project"
	if last := lastProject(ctx); last != "" {
		placeholder = last
		*value = last
	}

	maxLen := deps.Rules.ProjectNameMaxLength
	return runForm(huh.NewInput().
		Title("Project name").
		Placeholder(placeholder).
		Validate(func(val string) error {
			v := strings.TrimSpace(val)
			if v == "" {
				return fmt.Errorf("project name is required")
			}
			if utf8.RuneCountInString(v) > maxLen {
				return fmt.Errorf("at most %d characters", maxLen)
			}
			return nil
		}).
		Value(value))
}

func askVersion(ctx context.Context, typeName string, value *string) error {
	current := currentVersion(ctx)
	if ct, ok := deps.Rules.Type(typeName); ok {
		*value = current.Bump(ct.Bump).String()
	}

	return runForm(huh.NewInput().
		Title("Version").
		Description(fmt.Sprintf("Current version: %s", current)).
		Validate(func(val string) error {
			v := strings.TrimSpace(val)
			if !deps.Rules.VersionPattern.MatchString(v) {
				return fmt.Errorf("expected the form v<major>.<minor>.<patch>")
			}
			if _, err := semver.Parse(v); err != nil {
				return fmt.Errorf("expected the form v<major>.<minor>.<patch>")
			}
			return nil
		}).
		Value(value))
}

func askBody(value *string) error {
	return runForm(huh.NewText().
		Title("Body (optional)").
		Lines(4).
		Value(value))
}

// currentVersion reads the version out of HEAD's message. Outside a
// repository, before the first commit, or when HEAD does not follow the
// convention it falls back to v0.0.0 so suggestions still work.
func currentVersion(ctx context.Context) semver.Version {
	if err := deps.EnsureRepo(); err != nil {
		return semver.Version{}
	}
	head, err := deps.Repo.HeadCommit()
	if err != nil {
		return semver.Version{}
	}
	parsed := convention.Parse(head.Message, deps.Rules)
	if parsed.Version == nil {
		return semver.Version{}
	}
	return *parsed.Version
}

func lastProject(ctx context.Context) string {
	if err := deps.EnsureStore(ctx); err != nil {
		return ""
	}
	return deps.Store.LastProject()
}

// rememberProject records the project name for the next wizard run.
// Best effort: state failures never fail the commit.
func rememberProject(ctx context.Context, project string) {
	if err := deps.EnsureStore(ctx); err != nil {
		deps.Logger.Warn("state store unavailable", "error", err)
		return
	}
	if err := deps.Store.RecordCommit(project); err != nil {
		deps.Logger.Warn("record commit state", "error", err)
	}
}
