package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "announce",
	Short: "Post release announcements to a social feed",
	Long: `announce turns release metadata into social feed posts.

Each metadata entry whose type is selected is matched against the rules
table for that type. The first matching pattern rewrites the description,
<field> placeholders are filled from the entry, <author> becomes the
author's @handle, and the result is posted.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration, rules table or credentials
  11 - Malformed metadata or author input
  12 - Posting to the social feed failed`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("log-format", logFormatText,
		"Log output: text (workflow commands under GitHub Actions) or json")
}

const (
	logFormatText = "text"
	logFormatJSON = "json"
)

// getLogFormat returns the validated --log-format value.
func getLogFormat(cmd *cobra.Command) (string, error) {
	format, err := cmd.Flags().GetString("log-format")
	if err != nil {
		return logFormatText, nil
	}
	switch format {
	case logFormatText, logFormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid argument %q for --log-format: use text or json", format)
	}
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
