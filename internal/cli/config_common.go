package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/announce/internal/config"
	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/internal/inputs"
	"github.com/vvka-141/announce/pkg/announce"
)

// runFlagValues holds the flags shared by run and preview.
type runFlagValues struct {
	metadata     string
	metadataFile string
	rules        string
	authors      string
	types        string
	configPath   string
	envFiles     []string
	apiVersion   string
	apiBaseURL   string
	retries      int
	minInterval  time.Duration
	timeout      time.Duration
}

func addRunFlags(cmd *cobra.Command, f *runFlagValues) {
	cmd.Flags().StringVar(&f.metadata, "metadata", "",
		"Metadata entries as a JSON list\n"+
			"Precedence: --metadata > --metadata-file > $INPUT_METADATA")
	cmd.Flags().StringVar(&f.metadataFile, "metadata-file", "",
		"Read metadata entries from a JSON file")
	cmd.Flags().StringVar(&f.rules, "rules", "",
		"Path to the rules table (.json, .jsonc, .yaml)\n"+
			"Precedence: --rules > $INPUT_RULES > announce.yaml")
	cmd.Flags().StringVar(&f.authors, "authors", "",
		"Path to the author map, or an inline JSON object\n"+
			"Example: --authors '{\"alice\": \"alicehandle\"}'")
	cmd.Flags().StringVar(&f.types, "types", "",
		"Comma separated entry types to announce\n"+
			"Example: --types package,release")
	cmd.Flags().StringVar(&f.configPath, "config", "",
		"Project config file (default: ./announce.yaml when present)")
	cmd.Flags().StringSliceVar(&f.envFiles, "env-file", nil,
		"Load variables from .env files (can be specified multiple times)\n"+
			"Later files override earlier ones and the process environment")
	cmd.Flags().StringVar(&f.apiVersion, "api-version", "",
		"Posting endpoint: v1.1 (default) or v2")
	cmd.Flags().StringVar(&f.apiBaseURL, "api-base-url", "",
		"Social feed API root (default "+announce.DefaultAPIBaseURL+")")
	cmd.Flags().IntVar(&f.retries, "publish-retries", announce.DefaultPublishRetries,
		"Retries for rate limited, 5xx and network failures (default 0: fail immediately)")
	cmd.Flags().DurationVar(&f.minInterval, "min-interval", 0,
		"Minimum spacing between posts, e.g. 2s (default: no spacing)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", announce.DefaultTimeout,
		"Upper bound for the whole run (default 2m)\n"+
			"Examples: 30s, 5m")
}

// loadProjectConfig loads announce.yaml. Returns nil config if the default
// file does not exist; an explicit --config path must exist.
func loadProjectConfig(path string) (*config.ProjectConfig, error) {
	if path != "" {
		cfg, err := config.LoadFile(path)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("config file '%s' not found: %w", path, announce.ErrInvalidConfig)
			}
			return nil, fmt.Errorf("failed to load %s: %w", path, err)
		}
		return cfg, nil
	}

	cfg, err := config.Load(".")
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) {
			return nil, nil // Config file not found is not an error
		}
		return nil, fmt.Errorf("failed to load %s: %w", announce.ConfigFileName, err)
	}
	return cfg, nil
}

// buildRunConfig resolves every run setting.
// Precedence (highest to lowest): CLI flag > action input > announce.yaml > default.
func buildRunConfig(
	cmd *cobra.Command,
	f *runFlagValues,
	src inputs.Source,
	fsProvider filesystem.FileSystemProvider,
	dryRun bool,
	verbose bool,
) (announce.RunConfig, error) {
	projectCfg, err := loadProjectConfig(f.configPath)
	if err != nil {
		return announce.RunConfig{}, err
	}
	if projectCfg == nil {
		projectCfg = &config.ProjectConfig{}
	}

	metadata, err := resolveMetadata(f, src, fsProvider)
	if err != nil {
		return announce.RunConfig{}, err
	}

	types := inputs.ParseTypes(firstNonEmpty(f.types, src.Input(inputs.Types)))
	if len(types) == 0 {
		types = inputs.NormalizeTypes(projectCfg.Types)
	}

	apiVersion, err := announce.ParseAPIVersion(firstNonEmpty(f.apiVersion, projectCfg.API.Version))
	if err != nil {
		return announce.RunConfig{}, err
	}

	retries := f.retries
	if !cmd.Flags().Changed("publish-retries") && projectCfg.Publish.Retries != nil {
		retries = *projectCfg.Publish.Retries
	}

	minInterval := f.minInterval
	if !cmd.Flags().Changed("min-interval") {
		if d, ok, err := projectCfg.MinIntervalDuration(); err != nil {
			return announce.RunConfig{}, err
		} else if ok {
			minInterval = d
		}
	}

	timeout := f.timeout
	if !cmd.Flags().Changed("timeout") {
		if d, ok, err := projectCfg.TimeoutDuration(); err != nil {
			return announce.RunConfig{}, err
		} else if ok {
			timeout = d
		}
	}

	cfg := announce.RunConfig{
		Metadata:       metadata,
		RulesPath:      firstNonEmpty(f.rules, src.Input(inputs.Rules), projectCfg.Rules),
		Authors:        firstNonEmpty(f.authors, src.Input(inputs.Authors), string(projectCfg.Authors)),
		Types:          types,
		Credentials:    src.Credentials(),
		APIVersion:     apiVersion,
		APIBaseURL:     firstNonEmpty(f.apiBaseURL, projectCfg.API.BaseURL, announce.DefaultAPIBaseURL),
		PublishRetries: retries,
		MinInterval:    minInterval,
		Timeout:        timeout,
		DryRun:         dryRun,
		Verbose:        verbose,
	}

	if err := cfg.Validate(); err != nil {
		return announce.RunConfig{}, err
	}
	return cfg, nil
}

func resolveMetadata(f *runFlagValues, src inputs.Source, fsProvider filesystem.FileSystemProvider) ([]byte, error) {
	if f.metadata != "" {
		return []byte(f.metadata), nil
	}
	if f.metadataFile != "" {
		data, err := fsProvider.ReadFile(f.metadataFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read metadata file '%s': %w: %w", f.metadataFile, err, announce.ErrInvalidInput)
		}
		return data, nil
	}
	return []byte(src.Input(inputs.Metadata)), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
