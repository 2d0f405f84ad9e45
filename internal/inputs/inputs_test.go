package inputs

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/pkg/announce"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestInputVar(t *testing.T) {
	assert.Equal(t, "INPUT_METADATA", InputVar("metadata"))
	assert.Equal(t, "INPUT_RELEASE_NOTES", InputVar("release notes"))
	assert.Equal(t, "INPUT_MIN-INTERVAL", InputVar("min-interval"))
}

func TestSource_Input(t *testing.T) {
	src := NewSourceFunc(mapLookup(map[string]string{
		"INPUT_TYPES": "  package, release \n",
		"INPUT_RULES": "",
	}), nil)

	assert.Equal(t, "package, release", src.Input("types"))
	assert.Equal(t, "", src.Input("rules"))
	assert.Equal(t, "", src.Input("authors"))
}

func TestSource_OverridesShadowEnvironment(t *testing.T) {
	src := NewSourceFunc(mapLookup(map[string]string{
		EnvConsumerKey:    "from-env",
		EnvConsumerSecret: "secret-env",
	}), map[string]string{
		EnvConsumerKey:       "from-file",
		EnvAccessToken:       "token",
		EnvAccessTokenSecret: "token-secret",
	})

	assert.Equal(t, announce.Credentials{
		ConsumerKey:       "from-file",
		ConsumerSecret:    "secret-env",
		AccessToken:       "token",
		AccessTokenSecret: "token-secret",
	}, src.Credentials())
}

func TestNewSource_ProcessEnvironment(t *testing.T) {
	t.Setenv("INPUT_AUTHORS", "authors.json")
	assert.Equal(t, "authors.json", NewSource(nil).Input(Authors))
}

func TestParseTypes(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"package", []string{"package"}},
		{"package, release", []string{"package", "release"}},
		{" a ,, b , ,a", []string{"a", "b"}},
		{"", []string{}},
		{" , ", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTypes(tt.in))
		})
	}
}

func TestReadEnvFiles_LaterOverridesEarlier(t *testing.T) {
	mfs := filesystem.NewMemoryFileSystem("/work")
	mfs.AddFile("/work/base.env", "# credentials\nTWITTER_CONSUMER_KEY=base\nTWITTER_ACCESS_TOKEN='quoted token'\n")
	mfs.AddFile("/work/local.env", "TWITTER_CONSUMER_KEY=\"local\"\n")

	values, err := ReadEnvFiles(mfs, []string{"base.env", "local.env"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"TWITTER_CONSUMER_KEY": "local",
		"TWITTER_ACCESS_TOKEN": "quoted token",
	}, values)
}

func TestReadEnvFiles_MissingFile(t *testing.T) {
	_, err := ReadEnvFiles(filesystem.NewMemoryFileSystem("/"), []string{"nope.env"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
}
