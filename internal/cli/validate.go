package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vercom-dev/vercom/internal/convention"
)

var validateCmd = &cobra.Command{
	Use:   "validate [message]",
	Short: "Validate a commit message against the convention",
	Long: `Validate a commit message against the configured convention.

The message comes from the positional argument, from --file, or from
stdin when --file is "-". The commit-msg hook installed by
"vercom hook install" calls this command with the message file git
provides.

Exits non-zero when the message violates the convention, which is what
makes the hook reject the commit.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)

	validateCmd.Flags().String("file", "", `Read the message from this file ("-" for stdin)`)
	validateCmd.Flags().Bool("quiet", false, "Suppress output; report only via the exit code")
}

func runValidate(cmd *cobra.Command, args []string) error {
	message, err := resolveMessage(cmd, args)
	if err != nil {
		return err
	}

	result := convention.Validate(message, deps.Rules)

	if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), renderValidation(result))
	}
	if !result.Valid {
		return fmt.Errorf("invalid commit message: %s", result.Error)
	}
	return nil
}

// resolveMessage picks the message source: --file wins over the
// positional argument, and "-" reads stdin.
func resolveMessage(cmd *cobra.Command, args []string) (string, error) {
	file, _ := cmd.Flags().GetString("file")

	switch {
	case file == "-":
		content, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("read message from stdin: %w", err)
		}
		return string(content), nil
	case file != "":
		content, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read message file: %w", err)
		}
		return string(content), nil
	case len(args) == 1:
		return args[0], nil
	default:
		return "", fmt.Errorf("no message given: pass it as an argument or via --file")
	}
}
