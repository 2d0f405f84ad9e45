package inputs

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vvka-141/announce/internal/files/filesystem"
	"github.com/vvka-141/announce/pkg/announce"
)

// Action input names.
const (
	Metadata = "metadata"
	Rules    = "rules"
	Authors  = "authors"
	Types    = "types"
)

// Credential variable names.
const (
	EnvConsumerKey       = "TWITTER_CONSUMER_KEY"
	EnvConsumerSecret    = "TWITTER_CONSUMER_SECRET"
	EnvAccessToken       = "TWITTER_ACCESS_TOKEN"
	EnvAccessTokenSecret = "TWITTER_ACCESS_TOKEN_SECRET"
)

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Source reads inputs and environment values.
type Source struct {
	lookup    LookupFunc
	overrides map[string]string
}

// NewSource reads the process environment. overrides, typically loaded with
// ReadEnvFiles, shadow process variables of the same name.
func NewSource(overrides map[string]string) Source {
	return NewSourceFunc(os.LookupEnv, overrides)
}

// NewSourceFunc reads variables through lookup instead of the process
// environment.
func NewSourceFunc(lookup LookupFunc, overrides map[string]string) Source {
	return Source{lookup: lookup, overrides: overrides}
}

// InputVar returns the environment variable carrying the named input.
func InputVar(name string) string {
	return "INPUT_" + strings.ToUpper(strings.ReplaceAll(name, " ", "_"))
}

// Input returns the trimmed value of an action input, or "" when unset.
func (s Source) Input(name string) string {
	return strings.TrimSpace(s.Env(InputVar(name)))
}

// Env returns an environment value, or "" when unset.
func (s Source) Env(key string) string {
	if v, ok := s.overrides[key]; ok {
		return v
	}
	if s.lookup == nil {
		return ""
	}
	v, _ := s.lookup(key)
	return v
}

// Credentials gathers the posting account keys.
func (s Source) Credentials() announce.Credentials {
	return announce.Credentials{
		ConsumerKey:       s.Env(EnvConsumerKey),
		ConsumerSecret:    s.Env(EnvConsumerSecret),
		AccessToken:       s.Env(EnvAccessToken),
		AccessTokenSecret: s.Env(EnvAccessTokenSecret),
	}
}

// ParseTypes splits a comma separated type list. Items are trimmed and
// empty items dropped.
func ParseTypes(s string) []string {
	return NormalizeTypes(strings.Split(s, ","))
}

// NormalizeTypes trims each type and drops empty and duplicate items,
// keeping first occurrence order.
func NormalizeTypes(types []string) []string {
	seen := make(map[string]struct{}, len(types))
	out := make([]string, 0, len(types))
	for _, t := range types {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// LoadDotEnv loads .env from the working directory into the process
// environment without overriding variables that are already set. A missing
// file is not an error.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// ReadEnvFiles parses each file in .env format. Later files override
// earlier ones.
func ReadEnvFiles(fsProvider filesystem.FileSystemProvider, paths []string) (map[string]string, error) {
	values := make(map[string]string)
	for _, path := range paths {
		content, err := fsProvider.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read env file '%s': %w", path, err)
		}

		fileValues, err := godotenv.Parse(bytes.NewReader(content))
		if err != nil {
			return nil, fmt.Errorf("failed to parse env file '%s': %v: %w\n\nTip: Verify the file format (KEY=VALUE)", path, err, announce.ErrInvalidConfig)
		}
		for k, v := range fileValues {
			values[k] = v
		}
	}
	return values, nil
}
