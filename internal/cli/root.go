package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "vercom",
	Short: "vercom: versioned commit message conventions",
	Long: `vercom keeps commit messages on the "TYPE: project - vX.Y.Z" convention.

It validates messages against a configurable rule set, generates them
through an interactive wizard, suggests the next version per commit type,
and enforces the amend policy for same-day message fixes.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		if deps == nil {
			return fmt.Errorf("dependencies not initialized")
		}
		if noInput, _ := cmd.Flags().GetBool("no-input"); noInput {
			deps.Headless.ForceHeadless(true)
		}
		rulesPath, _ := cmd.Flags().GetString("config")
		return deps.EnsureRules(rulesPath)
	},
}

// Execute initializes dependencies and runs the root command.
func Execute() error {
	InitDependencies()
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("vercom %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("config", "", "Rule file path (default: discover .vercom.{yaml,json})")
	rootCmd.PersistentFlags().Bool("no-input", false, "Disable interactive prompts; answers come from flags")
}
