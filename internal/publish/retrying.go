package publish

import (
	"context"
	"time"

	"github.com/vvka-141/announce/internal/logging"
	"github.com/vvka-141/announce/internal/retry"
	"github.com/vvka-141/announce/pkg/announce"
)

// RetryingPublisher retries transient failures of the wrapped publisher.
type RetryingPublisher struct {
	next     announce.Publisher
	executor *retry.Executor
}

// NewRetryingPublisher wraps next with exponential backoff. retries is the
// number of attempts after the first one; zero disables retrying.
func NewRetryingPublisher(next announce.Publisher, retries int, logger announce.Logger, opts ...retry.BackoffOption) *RetryingPublisher {
	if next == nil {
		panic("next publisher cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	executor := retry.NewExecutor(
		retry.NewHTTPErrorClassifier(),
		retry.NewExponentialBackoff(retries, opts...),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		logger.Info("Post failed (%v), retry %d/%d in %v", err, attempt+1, retries, delay)
	})

	return &RetryingPublisher{next: next, executor: executor}
}

// Publish delegates to the wrapped publisher until it succeeds, fails
// permanently or the retry budget runs out.
func (p *RetryingPublisher) Publish(ctx context.Context, text string) (*announce.PostResult, error) {
	var result *announce.PostResult
	err := p.executor.Execute(ctx, func(ctx context.Context) error {
		r, err := p.next.Publish(ctx, text)
		if err != nil {
			return err
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
