package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/convention"
)

var guideCmd = &cobra.Command{
	Use:   "guide",
	Short: "Show the commit message convention for this repository",
	Long: `Render the active rule set as a readable guide: the message format per
commit type, the subject and body limits, and the amend policy.`,
	Args: cobra.NoArgs,
	RunE: runGuide,
}

func init() {
	rootCmd.AddCommand(guideCmd)
}

func runGuide(cmd *cobra.Command, _ []string) error {
	markdown := buildGuideMarkdown(deps.Rules, deps.RulesPath)

	// Plain markdown for pipes and redirects.
	if deps.Headless.IsHeadless() {
		fmt.Fprintln(cmd.OutOrStdout(), markdown)
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), markdown)
		return nil
	}
	rendered, err := renderer.Render(markdown)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), markdown)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}

// buildGuideMarkdown renders the rule set as a markdown document.
func buildGuideMarkdown(rules *convention.RuleSet, rulesPath string) string {
	var b strings.Builder

	b.WriteString("# Commit Message Convention\n\n")
	if rulesPath != "" {
		b.WriteString(fmt.Sprintf("Rules: `%s`\n\n", rulesPath))
	}

	b.WriteString("## Commit types\n\n")
	for _, name := range rules.TypeNames() {
		ct, _ := rules.Type(name)
		b.WriteString(fmt.Sprintf("### %s\n\n", name))
		if ct.Description != "" {
			b.WriteString(ct.Description + "\n\n")
		}
		example := strings.NewReplacer(
			"{project}", "my-project",
			"{version}", "v1.2.3",
		).Replace(ct.Format)
		b.WriteString(fmt.Sprintf("- Bumps the **%s** version\n", ct.Bump))
		b.WriteString(fmt.Sprintf("- Example: `%s`\n\n", example))
	}

	b.WriteString("## Subject\n\n")
	b.WriteString(fmt.Sprintf("- Between %d and %d characters\n", rules.SubjectMinLength, rules.SubjectMaxLength))
	if rules.RequireProjectName {
		b.WriteString(fmt.Sprintf("- Project name required, at most %d characters\n", rules.ProjectNameMaxLength))
	}
	if rules.RequireVersion {
		b.WriteString("- Version required in the form `v<major>.<minor>.<patch>`\n")
	}
	b.WriteString("\n## Body\n\n")
	b.WriteString("- Optional, separated from the subject by a blank line\n")
	b.WriteString(fmt.Sprintf("- Lines at most %d characters\n", rules.BodyLineLength))

	b.WriteString("\n## Amend policy\n\n")
	if !rules.Amend.Enabled {
		b.WriteString("Amending is disabled.\n")
		return b.String()
	}
	if len(rules.Amend.AllowedForTypes) > 0 {
		b.WriteString(fmt.Sprintf("- Allowed for: %s\n", strings.Join(rules.Amend.AllowedForTypes, ", ")))
	}
	if rules.Amend.RequireSameDay {
		b.WriteString("- Only on the same calendar day as the original commit\n")
	}
	b.WriteString(fmt.Sprintf("- At most %d amends per day\n", rules.Amend.MaxAmends))
	if rules.Amend.KeepVersion {
		b.WriteString("- The version is kept on amend\n")
	} else if rules.Amend.AutoIncrementPatch {
		b.WriteString("- The patch version is bumped on amend\n")
	}

	return b.String()
}
