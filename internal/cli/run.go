package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vvka-141/announce/internal/authors"
	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/internal/inputs"
	"github.com/vvka-141/announce/internal/logging"
	"github.com/vvka-141/announce/internal/metadata"
	"github.com/vvka-141/announce/internal/publish"
	"github.com/vvka-141/announce/internal/rules"
	"github.com/vvka-141/announce/internal/services"
	"github.com/vvka-141/announce/pkg/announce"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Match metadata against the rules table and post announcements",
	Long: `Run posts one announcement per selected metadata entry.

The run command:
1. Reads metadata entries, the rules table and the optional author map
2. Keeps entries whose type is listed in --types
3. Applies the first rule whose pattern matches the entry description
4. Fills <field> placeholders and resolves <author> to an @handle
5. Posts each announcement, one at a time, stopping at the first failure

Inputs are taken from flags, then from GitHub Actions inputs (INPUT_METADATA,
INPUT_RULES, INPUT_AUTHORS, INPUT_TYPES), then from announce.yaml.

Credentials:
  Credentials are NOT accepted as CLI flags. Set them in the environment or
  in a file passed with --env-file:
    TWITTER_CONSUMER_KEY, TWITTER_CONSUMER_SECRET,
    TWITTER_ACCESS_TOKEN, TWITTER_ACCESS_TOKEN_SECRET

Examples:
  # Announce packages from a release
  announce run --rules .github/announce.json --types package \
    --metadata-file release.json --authors .github/authors.json

  # Inline author map, retry transient failures
  announce run --rules rules.yaml --types package,release \
    --metadata "$METADATA" --authors '{"alice": "alicehandle"}' \
    --publish-retries 3`,
	Args: cobra.NoArgs,
	RunE: runAnnounce,
}

var runFlags runFlagValues

func init() {
	rootCmd.AddCommand(runCmd)
	addRunFlags(runCmd, &runFlags)
}

// newLogger selects the logger for format. Text output becomes workflow
// commands when running as an Actions step.
func newLogger(verbose bool, format, runID string) announce.Logger {
	if format == logFormatJSON {
		return logging.NewJSONLogger(verbose).With("run_id", runID)
	}
	if logging.RunningInActions() {
		return logging.NewActionsLogger(verbose)
	}
	return logging.NewConsoleLogger(verbose)
}

// newPublisher builds the publisher chain for cfg.
func newPublisher(cfg announce.RunConfig, logger announce.Logger) (announce.Publisher, error) {
	if cfg.DryRun {
		return publish.NewDryRunPublisher(logger), nil
	}

	twitter, err := publish.NewTwitterPublisher(cfg.Credentials,
		publish.WithBaseURL(cfg.APIBaseURL),
		publish.WithAPIVersion(cfg.APIVersion),
		publish.WithMinInterval(cfg.MinInterval),
		publish.WithLogger(logger),
	)
	if err != nil {
		return nil, err
	}

	var pub announce.Publisher = twitter
	if cfg.PublishRetries > 0 {
		pub = publish.NewRetryingPublisher(pub, cfg.PublishRetries, logger)
	}
	return pub, nil
}

// executeRun loads every input before the first post so malformed metadata,
// rules or author maps fail the run without publishing anything.
func executeRun(
	ctx context.Context,
	cfg announce.RunConfig,
	fsProvider filesystem.FileSystemProvider,
	publisher announce.Publisher,
	chooser rules.Chooser,
	logger announce.Logger,
) (*services.Summary, error) {
	entries, err := metadata.Parse(cfg.Metadata)
	if err != nil {
		return nil, err
	}

	table, err := rules.Load(fsProvider, cfg.RulesPath)
	if err != nil {
		return nil, err
	}
	logger.Verbose("Loaded rules for %d type(s) from %s", len(table.Types()), cfg.RulesPath)

	authorMap, err := authors.Load(fsProvider, cfg.Authors)
	if err != nil {
		return nil, err
	}
	if authorMap.Present() {
		logger.Verbose("Loaded %d author handle(s)", authorMap.Len())
	}

	announcer := services.NewAnnouncer(publisher, chooser, logger)
	return announcer.Run(ctx, services.Input{
		Entries: entries,
		Table:   table,
		Authors: authorMap,
		Types:   cfg.Types,
	})
}

// prepareRun resolves the configuration shared by run and preview.
func prepareRun(cmd *cobra.Command, f *runFlagValues, dryRun bool) (announce.RunConfig, filesystem.FileSystemProvider, error) {
	verbose := getVerboseFlag(cmd)
	fsProvider := filesystem.NewOSFileSystem()

	inputs.LoadDotEnv()
	overrides, err := inputs.ReadEnvFiles(fsProvider, f.envFiles)
	if err != nil {
		return announce.RunConfig{}, nil, err
	}

	cfg, err := buildRunConfig(cmd, f, inputs.NewSource(overrides), fsProvider, dryRun, verbose)
	if err != nil {
		return announce.RunConfig{}, nil, err
	}
	return cfg, fsProvider, nil
}

// runContext bounds the run by cfg.Timeout and cancels it on SIGINT/SIGTERM.
func runContext(cfg announce.RunConfig, logger announce.Logger) (context.Context, context.CancelFunc) {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if cfg.Timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), cfg.Timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}

	// Handle interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			logger.Error("Received interrupt signal, cancelling run...")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}

func runAnnounce(cmd *cobra.Command, args []string) error {
	cfg, fsProvider, err := prepareRun(cmd, &runFlags, false)
	if err != nil {
		return err
	}

	format, err := getLogFormat(cmd)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger := newLogger(cfg.Verbose, format, runID)
	logger.Verbose("Run id: %s", runID)

	publisher, err := newPublisher(cfg, logger)
	if err != nil {
		return err
	}

	ctx, cancel := runContext(cfg, logger)
	defer cancel()

	summary, err := executeRun(ctx, cfg, fsProvider, publisher, rules.NewShuffleChooser(nil), logger)
	if summary != nil {
		logger.Info("Published %d announcement(s): %d processed, %d skipped by type, %d unmatched",
			summary.Published(), summary.Processed, summary.Skipped, summary.Unmatched)
	}
	if err != nil {
		return fmt.Errorf("announce run failed: %w", err)
	}
	return nil
}
