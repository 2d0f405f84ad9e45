package metadata

import (
	"fmt"

	"github.com/vvka-141/announce/pkg/announce"
)

// EntryError represents a structured error about one metadata entry.
type EntryError struct {
	Index   int    // Zero-based position in the metadata list
	Field   string // Field name (e.g., "author") if applicable
	Message string // Primary error message
	Hint    string // Actionable suggestion for fixing
}

// Error implements the error interface.
func (e *EntryError) Error() string {
	msg := fmt.Sprintf("metadata entry %d: %s", e.Index, e.Message)
	if e.Field != "" {
		msg = fmt.Sprintf("metadata entry %d [field: %s]: %s", e.Index, e.Field, e.Message)
	}
	if e.Hint != "" {
		msg += "\n\nHint: " + e.Hint
	}
	return msg
}

// Unwrap lets errors.Is match announce.ErrInvalidInput.
func (e *EntryError) Unwrap() error {
	return announce.ErrInvalidInput
}
