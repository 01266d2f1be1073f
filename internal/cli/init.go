package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/config"
	"github.com/vercom-dev/vercom/internal/ui"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default rule file into the current directory",
	Long: `Write the default rule set to ` + config.RuleFileName + `.yaml in the current
directory so it can be adjusted and committed alongside the project.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().Bool("force", false, "Overwrite an existing rule file")
}

func runInit(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("get working directory: %w", err)
	}
	path := filepath.Join(cwd, config.RuleFileName+".yaml")

	force, _ := cmd.Flags().GetBool("force")
	if err := config.WriteDefault(path, force); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessCard("Rule file written",
		ui.KeyValue("path", path),
		"Edit it to adjust types, limits, and the amend policy.",
	))
	return nil
}
