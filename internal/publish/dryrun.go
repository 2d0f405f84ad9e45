package publish

import (
	"context"
	"strconv"
	"sync"

	"github.com/vvka-141/announce/internal/logging"
	"github.com/vvka-141/announce/pkg/announce"
)

// DryRunPublisher records announcements instead of posting them.
type DryRunPublisher struct {
	mu     sync.Mutex
	posts  []string
	logger announce.Logger
}

// NewDryRunPublisher creates a recorder. A nil logger discards output.
func NewDryRunPublisher(logger announce.Logger) *DryRunPublisher {
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &DryRunPublisher{logger: logger}
}

// Publish records text and returns a synthetic id.
func (p *DryRunPublisher) Publish(ctx context.Context, text string) (*announce.PostResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	p.mu.Lock()
	p.posts = append(p.posts, text)
	id := "dry-run-" + strconv.Itoa(len(p.posts))
	p.mu.Unlock()

	p.logger.Verbose("Dry run, not posting: %s", text)
	return &announce.PostResult{ID: id, Text: text}, nil
}

// Posts returns the recorded texts in publish order.
func (p *DryRunPublisher) Posts() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.posts...)
}
