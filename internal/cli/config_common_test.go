package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/internal/inputs"
	"github.com/vvka-141/announce/pkg/announce"
)

func newTestRunCmd() (*cobra.Command, *runFlagValues) {
	f := &runFlagValues{}
	cmd := &cobra.Command{Use: "test"}
	addRunFlags(cmd, f)
	return cmd, f
}

func envSource(env map[string]string) inputs.Source {
	return inputs.NewSourceFunc(func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}, nil)
}

var fullCredentials = map[string]string{
	inputs.EnvConsumerKey:       "ck",
	inputs.EnvConsumerSecret:    "cs",
	inputs.EnvAccessToken:       "at",
	inputs.EnvAccessTokenSecret: "ats",
}

func withCredentials(env map[string]string) map[string]string {
	merged := make(map[string]string, len(env)+len(fullCredentials))
	for k, v := range fullCredentials {
		merged[k] = v
	}
	for k, v := range env {
		merged[k] = v
	}
	return merged
}

func TestBuildRunConfig_ActionInputs(t *testing.T) {
	chdir(t, t.TempDir())
	cmd, f := newTestRunCmd()

	src := envSource(withCredentials(map[string]string{
		"INPUT_METADATA": `[{"type":"package","description":"x"}]`,
		"INPUT_RULES":    "rules.json",
		"INPUT_AUTHORS":  `{"alice":"alicehandle"}`,
		"INPUT_TYPES":    "package, release",
	}))

	cfg, err := buildRunConfig(cmd, f, src, filesystem.NewMemoryFileSystem("/"), false, true)
	require.NoError(t, err)

	assert.Equal(t, `[{"type":"package","description":"x"}]`, string(cfg.Metadata))
	assert.Equal(t, "rules.json", cfg.RulesPath)
	assert.Equal(t, `{"alice":"alicehandle"}`, cfg.Authors)
	assert.Equal(t, []string{"package", "release"}, cfg.Types)
	assert.Equal(t, announce.APIVersionV1, cfg.APIVersion)
	assert.Equal(t, announce.DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, announce.DefaultTimeout, cfg.Timeout)
	assert.Equal(t, 0, cfg.PublishRetries)
	assert.Equal(t, "ck", cfg.Credentials.ConsumerKey)
	assert.True(t, cfg.Verbose)
}

func TestBuildRunConfig_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, announce.ConfigFileName), []byte(`rules: from-config.json
authors: config-authors.json
types: [docs]
api:
  version: v2
  base_url: https://config.example.test
publish:
  retries: 2
  min_interval: 1s
timeout: 45s
`), 0644))

	cmd, f := newTestRunCmd()
	require.NoError(t, cmd.Flags().Set("rules", "from-flag.json"))
	require.NoError(t, cmd.Flags().Set("publish-retries", "5"))

	src := envSource(withCredentials(map[string]string{
		"INPUT_METADATA": "[]",
		"INPUT_RULES":    "from-input.json",
		"INPUT_AUTHORS":  "input-authors.json",
	}))

	cfg, err := buildRunConfig(cmd, f, src, filesystem.NewMemoryFileSystem("/"), false, false)
	require.NoError(t, err)

	assert.Equal(t, "from-flag.json", cfg.RulesPath, "flag beats input and config")
	assert.Equal(t, "input-authors.json", cfg.Authors, "input beats config")
	assert.Equal(t, []string{"docs"}, cfg.Types, "config fills unset values")
	assert.Equal(t, announce.APIVersionV2, cfg.APIVersion)
	assert.Equal(t, "https://config.example.test", cfg.APIBaseURL)
	assert.Equal(t, 5, cfg.PublishRetries)
	assert.Equal(t, time.Second, cfg.MinInterval)
	assert.Equal(t, 45*time.Second, cfg.Timeout)
}

func TestBuildRunConfig_MetadataFile(t *testing.T) {
	chdir(t, t.TempDir())
	cmd, f := newTestRunCmd()
	require.NoError(t, cmd.Flags().Set("metadata-file", "release.json"))
	require.NoError(t, cmd.Flags().Set("rules", "rules.json"))
	require.NoError(t, cmd.Flags().Set("types", "package"))

	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("/work/release.json", `[{"type":"package"}]`)

	cfg, err := buildRunConfig(cmd, f, envSource(map[string]string{"INPUT_METADATA": "ignored"}), mfs, true, false)
	require.NoError(t, err)
	assert.Equal(t, `[{"type":"package"}]`, string(cfg.Metadata))
}

func TestBuildRunConfig_MissingMetadataFile(t *testing.T) {
	chdir(t, t.TempDir())
	cmd, f := newTestRunCmd()
	require.NoError(t, cmd.Flags().Set("metadata-file", "missing.json"))

	_, err := buildRunConfig(cmd, f, envSource(nil), filesystem.NewMemoryFileSystem("/"), true, false)
	assert.Equal(t, announce.ExitInputError, announce.ExitCodeForError(err))
}

func TestBuildRunConfig_Validation(t *testing.T) {
	chdir(t, t.TempDir())

	tests := []struct {
		name   string
		env    map[string]string
		dryRun bool
	}{
		{
			name: "missing credentials",
			env:  map[string]string{"INPUT_METADATA": "[]", "INPUT_RULES": "r.json", "INPUT_TYPES": "package"},
		},
		{
			name:   "missing types",
			env:    map[string]string{"INPUT_METADATA": "[]", "INPUT_RULES": "r.json", "INPUT_TYPES": " , "},
			dryRun: true,
		},
		{
			name:   "missing rules",
			env:    map[string]string{"INPUT_METADATA": "[]", "INPUT_TYPES": "package"},
			dryRun: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f := newTestRunCmd()
			_, err := buildRunConfig(cmd, f, envSource(tt.env), filesystem.NewMemoryFileSystem("/"), tt.dryRun, false)
			assert.ErrorIs(t, err, announce.ErrInvalidConfig)
		})
	}
}

func TestBuildRunConfig_DryRunSkipsCredentials(t *testing.T) {
	chdir(t, t.TempDir())
	cmd, f := newTestRunCmd()

	src := envSource(map[string]string{"INPUT_METADATA": "[]", "INPUT_RULES": "r.json", "INPUT_TYPES": "package"})
	cfg, err := buildRunConfig(cmd, f, src, filesystem.NewMemoryFileSystem("/"), true, false)
	require.NoError(t, err)
	assert.True(t, cfg.DryRun)
}

func TestBuildRunConfig_InvalidAPIVersion(t *testing.T) {
	chdir(t, t.TempDir())
	cmd, f := newTestRunCmd()
	require.NoError(t, cmd.Flags().Set("api-version", "v9"))

	_, err := buildRunConfig(cmd, f, envSource(nil), filesystem.NewMemoryFileSystem("/"), true, false)
	assert.ErrorIs(t, err, announce.ErrInvalidConfig)
}

func TestLoadProjectConfig_ExplicitPathMustExist(t *testing.T) {
	_, err := loadProjectConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, announce.ErrInvalidConfig)
}

func TestLoadProjectConfig_DefaultMissingIsNil(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := loadProjectConfig("")
	require.NoError(t, err)
	assert.Nil(t, cfg)
}

// chdir changes the working directory for the duration of the test,
// restoring it on cleanup (equivalent of testing.T.Chdir, Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}
