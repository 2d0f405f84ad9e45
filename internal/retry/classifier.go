package retry

import (
	"context"
	"errors"
	"net"
	"net/http"
	"syscall"
)

// HTTPStatusError is implemented by errors carrying an HTTP response status.
type HTTPStatusError interface {
	error
	HTTPStatus() int
}

// HTTPErrorClassifier implements announce.ErrorClassifier for calls to the
// social feed API.
type HTTPErrorClassifier struct{}

// NewHTTPErrorClassifier creates a new HTTP error classifier.
func NewHTTPErrorClassifier() *HTTPErrorClassifier {
	return &HTTPErrorClassifier{}
}

// IsTransient determines if an error is temporary and retryable.
func (c *HTTPErrorClassifier) IsTransient(err error) bool {
	if err == nil {
		return false
	}

	// The run's own deadline or cancellation is never retried
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}

	var statusErr HTTPStatusError
	if errors.As(err, &statusErr) {
		return isTransientStatus(statusErr.HTTPStatus())
	}

	return isNetworkError(err)
}

func isTransientStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

// isNetworkError checks for network-level errors.
func isNetworkError(err error) bool {
	var dnsErr *net.DNSError
	if errors.As(err, &dnsErr) {
		return dnsErr.Temporary() || dnsErr.Timeout()
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}

	return errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, syscall.ENETUNREACH) ||
		errors.Is(err, syscall.EHOSTUNREACH) ||
		errors.Is(err, syscall.EPIPE)
}
