package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/convention"
	"github.com/vercom-dev/vercom/internal/semver"
	"github.com/vercom-dev/vercom/internal/ui"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Suggest the next version per commit type",
	Long: `Suggest the version each commit type would produce next, derived from
the version in HEAD's message. Use --current to suggest from an explicit
version instead, for example before the first commit.`,
	Args: cobra.NoArgs,
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)

	suggestCmd.Flags().String("current", "", "Suggest from this version instead of HEAD's")
}

func runSuggest(cmd *cobra.Command, _ []string) error {
	var current semver.Version
	if flagValue, _ := cmd.Flags().GetString("current"); flagValue != "" {
		ver, err := semver.Parse(flagValue)
		if err != nil {
			return fmt.Errorf("version %q: %w", flagValue, err)
		}
		current = ver
	} else {
		current = currentVersion(cmd.Context())
	}

	suggestions := convention.VersionSuggestions(current, deps.Rules)

	title := fmt.Sprintf("Next version (current %s)", current)
	fmt.Fprintln(cmd.OutOrStdout(), ui.Card(title, renderSuggestions(deps.Rules, suggestions)))
	return nil
}
