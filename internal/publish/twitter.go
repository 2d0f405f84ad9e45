package publish

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dghubble/oauth1"
	"golang.org/x/time/rate"

	"github.com/vvka-141/announce/internal/logging"
	"github.com/vvka-141/announce/pkg/announce"
)

const maxResponseBytes = 1 << 20

// TwitterPublisher posts to the Twitter API with OAuth 1.0a user context.
// Safe for concurrent use; posts are spaced by the optional rate limiter.
type TwitterPublisher struct {
	client  *http.Client
	baseURL string
	version announce.APIVersion
	limiter *rate.Limiter
	logger  announce.Logger
}

// TwitterOption customizes a TwitterPublisher.
type TwitterOption func(*twitterOptions)

type twitterOptions struct {
	baseURL     string
	version     announce.APIVersion
	httpClient  *http.Client
	minInterval time.Duration
	logger      announce.Logger
}

// WithBaseURL overrides the API root (default announce.DefaultAPIBaseURL).
func WithBaseURL(u string) TwitterOption {
	return func(o *twitterOptions) { o.baseURL = u }
}

// WithAPIVersion selects the posting endpoint (default v1.1).
func WithAPIVersion(v announce.APIVersion) TwitterOption {
	return func(o *twitterOptions) { o.version = v }
}

// WithHTTPClient sets the client whose transport and timeout the signed
// client reuses.
func WithHTTPClient(c *http.Client) TwitterOption {
	return func(o *twitterOptions) { o.httpClient = c }
}

// WithMinInterval enforces a minimum spacing between posts.
func WithMinInterval(d time.Duration) TwitterOption {
	return func(o *twitterOptions) { o.minInterval = d }
}

// WithLogger sets the logger used for request diagnostics.
func WithLogger(l announce.Logger) TwitterOption {
	return func(o *twitterOptions) { o.logger = l }
}

// NewTwitterPublisher creates a publisher for the account identified by creds.
// Returns ErrInvalidConfig if any credential is empty or the base URL is malformed.
func NewTwitterPublisher(creds announce.Credentials, opts ...TwitterOption) (*TwitterPublisher, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	o := twitterOptions{
		baseURL:    announce.DefaultAPIBaseURL,
		version:    announce.APIVersionV1,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logging.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	base, err := url.Parse(o.baseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("invalid API base URL %q: %w", o.baseURL, announce.ErrInvalidConfig)
	}
	if o.version != announce.APIVersionV1 && o.version != announce.APIVersionV2 {
		return nil, fmt.Errorf("unsupported API version %q: %w", o.version, announce.ErrInvalidConfig)
	}

	config := oauth1.NewConfig(creds.ConsumerKey, creds.ConsumerSecret)
	token := oauth1.NewToken(creds.AccessToken, creds.AccessTokenSecret)
	ctx := context.WithValue(context.Background(), oauth1.HTTPClient, o.httpClient)

	// oauth1 only carries over the transport of the base client
	client := config.Client(ctx, token)
	client.Timeout = o.httpClient.Timeout

	p := &TwitterPublisher{
		client:  client,
		baseURL: strings.TrimRight(o.baseURL, "/"),
		version: o.version,
		logger:  o.logger,
	}
	if o.minInterval > 0 {
		p.limiter = rate.NewLimiter(rate.Every(o.minInterval), 1)
	}
	return p, nil
}

// Publish posts text and returns the id assigned by the feed.
func (p *TwitterPublisher) Publish(ctx context.Context, text string) (*announce.PostResult, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("waiting for posting slot: %w", err)
		}
	}

	req, err := p.newRequest(ctx, text)
	if err != nil {
		return nil, err
	}

	p.logger.Verbose("POST %s", req.URL.Redacted())
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", announce.ErrPublishFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %w", announce.ErrPublishFailed, err)
	}
	p.logger.Verbose("Response %d: %s", resp.StatusCode, preview(string(body)))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return &announce.PostResult{
		ID:   extractID(body),
		Text: text,
		Raw:  body,
	}, nil
}

func (p *TwitterPublisher) newRequest(ctx context.Context, text string) (*http.Request, error) {
	var (
		endpoint    string
		body        []byte
		contentType string
	)

	switch p.version {
	case announce.APIVersionV2:
		endpoint = p.baseURL + "/2/tweets"
		payload, err := json.Marshal(struct {
			Text string `json:"text"`
		}{Text: text})
		if err != nil {
			return nil, fmt.Errorf("encoding post: %w", err)
		}
		body = payload
		contentType = "application/json"
	default:
		endpoint = p.baseURL + "/1.1/statuses/update.json"
		body = []byte(url.Values{"status": {text}}.Encode())
		contentType = "application/x-www-form-urlencoded"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	return req, nil
}

// extractID reads the post id from either API generation's response.
// Responses without a recognizable id yield "".
func extractID(body []byte) string {
	var resp struct {
		IDStr string `json:"id_str"`
		Data  struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return ""
	}
	if resp.Data.ID != "" {
		return resp.Data.ID
	}
	return resp.IDStr
}
