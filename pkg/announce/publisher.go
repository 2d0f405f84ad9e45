package announce

import "context"

// PostResult describes an accepted post.
type PostResult struct {
	// ID is the identifier assigned by the feed, empty when unknown.
	ID string

	// Text is the text that was posted.
	Text string

	// Raw is the unparsed response body.
	Raw []byte
}

// Publisher sends announcement text to a social feed.
type Publisher interface {
	// Publish posts text and returns once the feed has accepted or rejected it.
	Publish(ctx context.Context, text string) (*PostResult, error)
}
