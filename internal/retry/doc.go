// Package retry provides opt-in retry logic with exponential backoff for
// transient publish failures.
//
// A run never retries unless --publish-retries is set: the default strategy
// allows zero retries, so the first failed post fails the run.
//
// # Example Usage
//
//	classifier := retry.NewHTTPErrorClassifier()
//	strategy := retry.NewExponentialBackoff(3)
//	executor := retry.NewExecutor(classifier, strategy)
//
//	err := executor.Execute(ctx, func(ctx context.Context) error {
//	    _, err := publisher.Publish(ctx, text)
//	    return err
//	})
//
// # Error Classification
//
// HTTPErrorClassifier treats HTTP 429 and 5xx responses and temporary network
// failures as transient. Authentication failures, duplicate-status rejections
// and other 4xx responses are fatal.
//
// # Thread Safety
//
// Executor instances are safe for concurrent use. Use WithOnRetry() to create
// independent configurations per goroutine.
package retry
