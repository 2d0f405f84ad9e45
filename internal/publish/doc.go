// Package publish posts announcement text to the social feed.
//
// TwitterPublisher signs each request with OAuth 1.0a and supports the
// form-encoded v1.1 statuses endpoint and the JSON v2 tweets endpoint.
// DryRunPublisher records text without touching the network, and
// RetryingPublisher wraps any Publisher with backoff for transient failures.
package publish
