package announce

import (
	"errors"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := announcer.Run(ctx, input)
//	if errors.Is(err, announce.ErrPublishFailed) {
//	    // some entries may already have been posted
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInvalidInput indicates metadata or author input could not be decoded.
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingRules indicates an allowed entry type has no rules in the rules table.
	ErrMissingRules = errors.New("no rules for entry type")

	// ErrInvalidPattern indicates a rule key could not be compiled into a pattern.
	ErrInvalidPattern = errors.New("invalid rule pattern")

	// ErrPublishFailed indicates the social feed API rejected or failed a post.
	ErrPublishFailed = errors.New("publish failed")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig),
		errors.Is(err, ErrMissingRules),
		errors.Is(err, ErrInvalidPattern):
		return ExitConfigError
	case errors.Is(err, ErrInvalidInput):
		return ExitInputError
	case errors.Is(err, ErrPublishFailed):
		return ExitPublishFailed
	}

	// cobra reports usage problems as plain errors
	errStr := err.Error()
	for _, prefix := range []string{"unknown flag", "unknown shorthand flag", "unknown command", "invalid argument", "required flag", "accepts "} {
		if strings.HasPrefix(errStr, prefix) {
			return ExitUsageError
		}
	}

	return ExitGeneralError
}
