package announce

import (
	"fmt"
	"time"
)

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess       = 0  // Run completed, every matched entry was posted
	ExitGeneralError  = 1  // Unknown or unclassified error
	ExitUsageError    = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic         = 3  // Internal panic (unexpected crash)
	ExitConfigError   = 10 // Invalid configuration, rules table or credentials
	ExitInputError    = 11 // Malformed metadata or author input
	ExitPublishFailed = 12 // Posting to the social feed failed
)

const (
	// DefaultTimeout bounds a whole run, including every publish call.
	DefaultTimeout = 2 * time.Minute

	// DefaultRetryInitialDelay is the default initial delay before the first retry attempt.
	DefaultRetryInitialDelay = 500 * time.Millisecond

	// DefaultRetryMaxDelay is the default maximum delay between retry attempts.
	DefaultRetryMaxDelay = 30 * time.Second

	// DefaultPublishRetries is zero: a failed post fails the run.
	DefaultPublishRetries = 0

	// DefaultAPIBaseURL is the root of the social feed API.
	DefaultAPIBaseURL = "https://api.twitter.com"

	// AuthorField is the entry field resolved to a social handle.
	AuthorField = "author"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "announce.yaml"

	// MaxLogPreviewLength caps response bodies echoed into logs and errors.
	MaxLogPreviewLength = 300
)

// APIVersion selects the posting endpoint of the social feed API.
type APIVersion string

const (
	// APIVersionV1 posts form-encoded statuses to /1.1/statuses/update.json.
	APIVersionV1 APIVersion = "v1.1"
	// APIVersionV2 posts JSON to /2/tweets.
	APIVersionV2 APIVersion = "v2"
)

// ParseAPIVersion normalizes a user supplied API version.
// An empty string selects APIVersionV1.
func ParseAPIVersion(s string) (APIVersion, error) {
	switch s {
	case "", "1.1", "v1.1", "v1":
		return APIVersionV1, nil
	case "2", "v2":
		return APIVersionV2, nil
	}
	return "", fmt.Errorf("unsupported API version %q: %w", s, ErrInvalidConfig)
}
