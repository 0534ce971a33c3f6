package cli

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/userpage/internal/logging"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the userpage CLI.
// It wires up logging, tracing and the list, serve and config subcommands.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:     "userpage",
		Short:   "Browse a remote user list one page at a time",
		Long:    "userpage fetches a user list once and shows it as a paginated table in the terminal, as structured output or as an HTML page.",
		Version: ver,
		Example: rootCmdExample,
		// Errors are reported by main; fetch failures have already printed their alert.
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			result := setupLogging(cmd)
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if logResult != nil {
				return logResult.Close()
			}
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(NewListCmd(), NewServeCmd(), newConfigCmd())

	return cmd
}

const rootCmdExample = `  # Page through users interactively
  userpage list

  # Print page 2 as JSON from a custom endpoint
  userpage list --url http://localhost:3000/users --page 2 --output json

  # Sort by last name, newest pages first
  userpage list --sort lastname:desc --plain

  # Serve the users page over HTTP
  userpage serve --addr :8080

  # Initialize configuration
  userpage config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigShowCmd(), NewConfigValidateCmd())
	return cmd
}
