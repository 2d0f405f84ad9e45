package publish

import (
	"fmt"
	"unicode/utf8"

	"github.com/vvka-141/announce/pkg/announce"
)

// APIError is returned when the feed API answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("feed API returned HTTP %d: %s", e.StatusCode, preview(e.Body))
}

// Unwrap makes every APIError match announce.ErrPublishFailed.
func (e *APIError) Unwrap() error {
	return announce.ErrPublishFailed
}

// HTTPStatus exposes the status code to retry classification.
func (e *APIError) HTTPStatus() int {
	return e.StatusCode
}

func preview(s string) string {
	if len(s) <= announce.MaxLogPreviewLength {
		return s
	}
	cut := announce.MaxLogPreviewLength
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
