package announce

import (
	"errors"
	"fmt"
	"time"
)

// Credentials are the OAuth 1.0a keys of the posting account.
type Credentials struct {
	ConsumerKey       string
	ConsumerSecret    string
	AccessToken       string
	AccessTokenSecret string
}

// Validate reports every missing credential.
func (c Credentials) Validate() error {
	var errs []error
	fields := []struct{ name, value string }{
		{"TWITTER_CONSUMER_KEY", c.ConsumerKey},
		{"TWITTER_CONSUMER_SECRET", c.ConsumerSecret},
		{"TWITTER_ACCESS_TOKEN", c.AccessToken},
		{"TWITTER_ACCESS_TOKEN_SECRET", c.AccessTokenSecret},
	}
	for _, f := range fields {
		if f.value == "" {
			errs = append(errs, fmt.Errorf("%s is required: %w", f.name, ErrInvalidConfig))
		}
	}
	return errors.Join(errs...)
}

// RunConfig contains everything resolved from flags, action inputs and
// announce.yaml for a single run.
type RunConfig struct {
	// Metadata is the raw JSON list of entries.
	Metadata []byte

	// RulesPath is the path to the JSON, JSONC or YAML rules table.
	RulesPath string

	// Authors is either a path to a JSON author map or an inline JSON object.
	// Empty means no author map was supplied.
	Authors string

	// Types lists the entry types to announce.
	Types []string

	// Credentials authenticate the posting account. Ignored on dry runs.
	Credentials Credentials

	// APIVersion selects the posting endpoint.
	APIVersion APIVersion

	// APIBaseURL is the root URL of the social feed API.
	APIBaseURL string

	// PublishRetries is the number of retries for transient publish failures.
	PublishRetries int

	// MinInterval is the minimum spacing between posts (0 = no limit).
	MinInterval time.Duration

	// Timeout bounds the whole run.
	Timeout time.Duration

	// DryRun renders announcements without posting them.
	DryRun bool

	// Verbose enables detailed logging
	Verbose bool
}

// Validate checks if the RunConfig has all required fields and valid values.
// It returns a multi-error if multiple validation failures occur.
func (c *RunConfig) Validate() error {
	var errs []error

	if len(c.Metadata) == 0 {
		errs = append(errs, fmt.Errorf("metadata is required: %w", ErrInvalidConfig))
	}

	if c.RulesPath == "" {
		errs = append(errs, fmt.Errorf("rules path is required: %w", ErrInvalidConfig))
	}

	if len(c.Types) == 0 {
		errs = append(errs, fmt.Errorf("at least one entry type is required: %w", ErrInvalidConfig))
	}

	if c.PublishRetries < 0 {
		errs = append(errs, fmt.Errorf("publish retries cannot be negative: %w", ErrInvalidConfig))
	}

	if c.MinInterval < 0 {
		errs = append(errs, fmt.Errorf("min interval cannot be negative: %w", ErrInvalidConfig))
	}

	if c.Timeout < 0 {
		errs = append(errs, fmt.Errorf("timeout cannot be negative: %w", ErrInvalidConfig))
	}

	if !c.DryRun {
		if err := c.Credentials.Validate(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
