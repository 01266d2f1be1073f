package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/convention"
	"github.com/vercom-dev/vercom/internal/semver"
	"github.com/vercom-dev/vercom/internal/ui"
)

var amendCmd = &cobra.Command{
	Use:   "amend",
	Short: "Rewrite the previous commit's message within the amend policy",
	Long: `Rewrite the previous commit's message, subject to the amend policy:
amends can be restricted to certain commit types, to the same calendar
day as the original commit, and to a maximum count per day.

By default the version is bumped on the patch level; --keep-version
keeps the previous one. Fields not overridden by flags carry over from
the previous message.`,
	Args: cobra.NoArgs,
	RunE: runAmend,
}

func init() {
	rootCmd.AddCommand(amendCmd)

	amendCmd.Flags().StringP("type", "t", "", "Commit type for the rewritten message (default: previous)")
	amendCmd.Flags().StringP("project", "p", "", "Project name (default: previous)")
	amendCmd.Flags().String("version", "", "Version for the subject (default: per the amend policy)")
	amendCmd.Flags().StringP("body", "b", "", "Message body (default: previous)")
	amendCmd.Flags().Bool("keep-version", false, "Keep the previous version instead of bumping")
	amendCmd.Flags().Bool("dry-run", false, "Print the rewritten message without amending")
}

// getStringFlag retrieves a string flag value, tolerating flags that are
// not defined on the command (commit --amend delegates here).
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value, tolerating undefined flags.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

func runAmend(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	now := time.Now()

	if err := deps.EnsureRepo(); err != nil {
		return err
	}
	if err := deps.EnsureStore(ctx); err != nil {
		return err
	}

	head, err := deps.Repo.HeadCommit()
	if err != nil {
		return err
	}
	prev := convention.Parse(head.Message, deps.Rules)

	answers := commitAnswers{
		TypeName: getStringFlag(cmd, "type"),
		Project:  getStringFlag(cmd, "project"),
		Version:  getStringFlag(cmd, "version"),
		Body:     getStringFlag(cmd, "body"),
	}

	prevType := ""
	if prev.TypeToken != nil {
		prevType = *prev.TypeToken
	}
	if answers.TypeName == "" {
		if deps.Headless.IsHeadless() {
			if prevType == "" {
				return fmt.Errorf("previous commit has no recognizable type; pass --type")
			}
			answers.TypeName = prevType
		} else {
			answers.TypeName = prevType
			if err := askType(&answers.TypeName); err != nil {
				return err
			}
		}
	}
	if _, ok := deps.Rules.Type(answers.TypeName); !ok {
		return fmt.Errorf("%w: %q", convention.ErrUnknownType, answers.TypeName)
	}

	decision := convention.CanAmend(convention.AmendContext{
		PreviousType:      prevType,
		PreviousTimestamp: head.When,
		AmendCountToday:   deps.Store.AmendCountFor(now),
		ProposedType:      answers.TypeName,
		Now:               now,
	}, deps.Rules)
	if !decision.Allowed {
		fmt.Fprintln(cmd.OutOrStdout(), ui.FailureCard("Amend not allowed", decision.Reason))
		return fmt.Errorf("amend denied: %s", decision.Reason)
	}

	if answers.Project == "" {
		if prev.Project != nil {
			answers.Project = *prev.Project
		} else if deps.Headless.IsHeadless() {
			return fmt.Errorf("previous commit has no project name; pass --project")
		} else if err := askProject(ctx, &answers.Project); err != nil {
			return err
		}
	}

	ver, err := amendVersion(cmd, answers.Version, prev.Version)
	if err != nil {
		return err
	}

	if answers.Body == "" && prev.Body != nil {
		answers.Body = *prev.Body
	}

	message, err := convention.Generate(answers.TypeName, answers.Project, ver, answers.Body, deps.Rules)
	if err != nil {
		return err
	}
	if result := convention.Validate(message, deps.Rules); !result.Valid {
		return fmt.Errorf("rewritten message violates the convention: %s", result.Error)
	}

	if getBoolFlag(cmd, "dry-run") {
		fmt.Fprintln(cmd.OutOrStdout(), ui.Card("Rewritten message", message))
		return nil
	}

	spin := ui.NewSpinner(deps.Headless, cmd.OutOrStdout(), "Amending")
	err = deps.Repo.Amend(ctx, message)
	spin.Stop()
	if err != nil {
		return err
	}

	if err := deps.Store.RecordAmend(now, answers.Project); err != nil {
		deps.Logger.Warn("record amend state", "error", err)
	}

	remaining := deps.Rules.Amend.MaxAmends - deps.Store.AmendCountFor(now)
	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessCard("Amended",
		ui.KeyValue("type", answers.TypeName),
		ui.KeyValue("version", ver.String()),
		ui.KeyValue("amends left today", fmt.Sprintf("%d", remaining)),
	))
	return nil
}

// amendVersion resolves the version for the rewritten subject: an
// explicit flag wins, then the keep and auto-increment policies, in
// that order.
func amendVersion(cmd *cobra.Command, flagValue string, previous *semver.Version) (semver.Version, error) {
	if flagValue != "" {
		ver, err := semver.Parse(flagValue)
		if err != nil {
			return semver.Version{}, fmt.Errorf("version %q: %w", flagValue, err)
		}
		return ver, nil
	}

	if previous == nil {
		return semver.Version{}, fmt.Errorf("previous commit has no recognizable version; pass --version")
	}
	if getBoolFlag(cmd, "keep-version") || deps.Rules.Amend.KeepVersion {
		return *previous, nil
	}
	if deps.Rules.Amend.AutoIncrementPatch {
		return previous.Bump(semver.BumpPatch), nil
	}
	return *previous, nil
}
