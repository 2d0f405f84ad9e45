package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/announce/internal/logging"
	"github.com/vvka-141/announce/internal/rules"
	"github.com/vvka-141/announce/internal/services"
	"github.com/vvka-141/announce/internal/tui"
	"github.com/vvka-141/announce/pkg/announce"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Show the announcements a run would post, without posting",
	Long: `Preview runs the full pipeline with a recording publisher and prints each
announcement. Credentials are not required.

Output is styled when stdout is a terminal. Set NO_COLOR, CI or
ANNOUNCE_NON_INTERACTIVE=1 for plain output.

Examples:
  announce preview --rules rules.json --types package --metadata-file release.json`,
	Args: cobra.NoArgs,
	RunE: runPreview,
}

var previewFlags runFlagValues

func init() {
	rootCmd.AddCommand(previewCmd)
	addRunFlags(previewCmd, &previewFlags)
}

// previewItems converts posted announcements for rendering.
func previewItems(summary *services.Summary) ([]tui.PreviewItem, tui.PreviewStats) {
	items := make([]tui.PreviewItem, 0, len(summary.Posts))
	for _, post := range summary.Posts {
		items = append(items, tui.PreviewItem{Index: post.Index, Type: post.Type, Text: post.Text})
	}
	return items, tui.PreviewStats{
		Processed: summary.Processed,
		Skipped:   summary.Skipped,
		Unmatched: summary.Unmatched,
	}
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, fsProvider, err := prepareRun(cmd, &previewFlags, true)
	if err != nil {
		return err
	}

	format, err := getLogFormat(cmd)
	if err != nil {
		return err
	}
	runID := uuid.NewString()

	// stdout carries the rendered preview, diagnostics go to stderr
	var logger announce.Logger = logging.NewConsoleLogger(cfg.Verbose)
	if format == logFormatJSON {
		logger = logging.NewJSONLogger(cfg.Verbose).With("run_id", runID)
	}
	logger.Verbose("Run id: %s", runID)

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := runContext(cfg, logger)
	defer cancel()

	summary, err := executeRun(ctx, cfg, fsProvider, publisher, rules.NewShuffleChooser(nil), logger)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}

	items, stats := previewItems(summary)
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderPreview(items, stats, tui.DetectMode(os.Stdout)))
	return nil
}
