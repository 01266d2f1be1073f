package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/ui"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Manage the repository commit-msg hook",
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the commit-msg hook that validates every commit",
	Long: `Install a commit-msg hook that runs "vercom validate" on every commit
message, rejecting commits that violate the convention. A hook not
managed by vercom is never overwritten.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := deps.EnsureRepo(); err != nil {
			return err
		}
		path, err := deps.Repo.InstallCommitMsgHook(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessCard("Hook installed", ui.KeyValue("path", path)))
		return nil
	},
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the vercom-managed commit-msg hook",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := deps.EnsureRepo(); err != nil {
			return err
		}
		if err := deps.Repo.UninstallCommitMsgHook(cmd.Context()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessCard("Hook removed"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)
}
