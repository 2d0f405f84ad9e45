package cli

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/internal/logging"
	"github.com/vvka-141/announce/internal/publish"
	"github.com/vvka-141/announce/internal/rules"
	"github.com/vvka-141/announce/pkg/announce"
)

func firstOption(options []string) string { return options[0] }

func newProjectFS() *filesystem.MemoryFileSystem {
	mfs := filesystem.NewMemoryFileSystem("/repo")
	mfs.AddFile("/repo/.github/rules.json", `{
		// announcements for published packages
		"package": {"Added new utility": "Check out our new utility <author>!"},
	}`)
	mfs.AddFile("/repo/.github/rules.yaml", "package:\n  \"/^added (\\\\w+)/i\": \"New: $1 by <author>\"\n")
	mfs.AddFile("/repo/.github/authors.json", `{"alice": "@alicehandle"}`)
	return mfs
}

func TestExecuteRun_EndToEnd(t *testing.T) {
	pub := publish.NewDryRunPublisher(nil)
	cfg := announce.RunConfig{
		Metadata:  []byte(`[{"type":"package","description":"Added new utility","author":{"username":"alice","name":"Alice A."}}]`),
		RulesPath: ".github/rules.json",
		Authors:   ".github/authors.json",
		Types:     []string{"package"},
		DryRun:    true,
	}

	summary, err := executeRun(context.Background(), cfg, newProjectFS(), pub, rules.ChooserFunc(firstOption), logging.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Published())
	assert.Equal(t, []string{"Check out our new utility @alicehandle!"}, pub.Posts())
}

func TestExecuteRun_YAMLRulesAndInlineAuthors(t *testing.T) {
	pub := publish.NewDryRunPublisher(nil)
	cfg := announce.RunConfig{
		Metadata:  []byte(`[{"type":"package","description":"added parser","author":{"username":"bob","name":"Bob B."}}]`),
		RulesPath: ".github/rules.yaml",
		Authors:   ` {"carol": "carolhandle"}`,
		Types:     []string{"package"},
	}

	_, err := executeRun(context.Background(), cfg, newProjectFS(), pub, rules.ChooserFunc(firstOption), logging.NewNullLogger())
	require.NoError(t, err)
	assert.Equal(t, []string{"New: parser by Bob B."}, pub.Posts())
}

func TestExecuteRun_MalformedMetadataPublishesNothing(t *testing.T) {
	tests := []struct {
		name     string
		metadata string
	}{
		{"truncated", `[{"type":"package",`},
		{"trailing comma", `[{"type":"package","description":"Added new utility",},]`},
		{"block comment", `[{"type":"package" /* c */,"description":"Added new utility"}]`},
		{"line comment", `[{"type":"package","description":"Added new utility"}] // tail`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pub := publish.NewDryRunPublisher(nil)
			cfg := announce.RunConfig{
				Metadata:  []byte(tt.metadata),
				RulesPath: ".github/rules.json",
				Types:     []string{"package"},
			}

			_, err := executeRun(context.Background(), cfg, newProjectFS(), pub, rules.ChooserFunc(firstOption), logging.NewNullLogger())
			require.Error(t, err)
			assert.Equal(t, announce.ExitInputError, announce.ExitCodeForError(err))
			assert.Empty(t, pub.Posts())
		})
	}
}

func TestExecuteRun_MissingRulesFile(t *testing.T) {
	pub := publish.NewDryRunPublisher(nil)
	cfg := announce.RunConfig{
		Metadata:  []byte(`[]`),
		RulesPath: "nope.json",
		Types:     []string{"package"},
	}

	_, err := executeRun(context.Background(), cfg, newProjectFS(), pub, rules.ChooserFunc(firstOption), logging.NewNullLogger())
	assert.Error(t, err)
}

func TestNewPublisher_Selection(t *testing.T) {
	logger := logging.NewNullLogger()

	dry, err := newPublisher(announce.RunConfig{DryRun: true}, logger)
	require.NoError(t, err)
	assert.IsType(t, &publish.DryRunPublisher{}, dry)

	creds := announce.Credentials{ConsumerKey: "a", ConsumerSecret: "b", AccessToken: "c", AccessTokenSecret: "d"}
	direct, err := newPublisher(announce.RunConfig{Credentials: creds, APIBaseURL: announce.DefaultAPIBaseURL, APIVersion: announce.APIVersionV1}, logger)
	require.NoError(t, err)
	assert.IsType(t, &publish.TwitterPublisher{}, direct)

	retrying, err := newPublisher(announce.RunConfig{Credentials: creds, APIBaseURL: announce.DefaultAPIBaseURL, APIVersion: announce.APIVersionV2, PublishRetries: 2}, logger)
	require.NoError(t, err)
	assert.IsType(t, &publish.RetryingPublisher{}, retrying)

	_, err = newPublisher(announce.RunConfig{APIBaseURL: announce.DefaultAPIBaseURL}, logger)
	assert.ErrorIs(t, err, announce.ErrInvalidConfig)
}

func TestNewLogger_ActionsMode(t *testing.T) {
	t.Setenv("GITHUB_ACTIONS", "true")
	assert.IsType(t, &logging.ActionsLogger{}, newLogger(false, logFormatText, "id"))
	assert.IsType(t, &logging.JSONLogger{}, newLogger(false, logFormatJSON, "id"))

	t.Setenv("GITHUB_ACTIONS", "")
	assert.IsType(t, &logging.ConsoleLogger{}, newLogger(false, logFormatText, "id"))
}
