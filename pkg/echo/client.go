// Package echo is a client for the NASA ECHO catalog REST API, scoped to
// granule searches against the MOD09GA collection.
package echo

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultBaseURL is the ECHO granule search endpoint.
const DefaultBaseURL = "https://api.echo.nasa.gov/catalog-rest/echo_catalog/granules.json"

// DefaultPageSize is the number of granules requested per catalog page.
const DefaultPageSize = 2000

// Logger represents the minimal logging interface used by the client.
type Logger interface {
	Debugf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Middleware manipulates an outgoing *http.Request before it is executed.
// The context is provided for cancellation and to support auth
// implementations that may need to refresh credentials.
type Middleware func(context.Context, *http.Request) error

// ClientOption configures the Client.
type ClientOption func(*Client)

// Client represents an ECHO catalog client.
type Client struct {
	baseURL     *url.URL
	httpClient  *http.Client
	middleware  []Middleware
	retryPolicy RetryPolicy
	pageSize    int
	logger      Logger
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = client }
}

// WithTimeout sets the HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithPageSize sets the granule page size used when paging through results.
func WithPageSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithMiddleware registers one or more request-middleware functions.
func WithMiddleware(mw ...Middleware) ClientOption {
	return func(c *Client) { c.middleware = append(c.middleware, mw...) }
}

// WithRetryPolicy configures retry behavior for transient failures.
func WithRetryPolicy(policy RetryPolicy) ClientOption {
	return func(c *Client) { c.retryPolicy = policy }
}

// WithLogger registers a logger used for request lifecycle events.
func WithLogger(logger Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// NewClient creates a new catalog client. An empty baseURL selects the
// public ECHO endpoint.
func NewClient(baseURL string, opts ...ClientOption) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	if !u.IsAbs() {
		return nil, ErrInvalidBaseURL
	}

	c := &Client{
		baseURL:     u,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		retryPolicy: DefaultRetryPolicy,
		pageSize:    DefaultPageSize,
	}
	for _, o := range opts {
		o(c)
	}
	if c.httpClient == nil {
		return nil, ErrNilHTTPClient
	}
	return c, nil
}

// doRequest is the single place a request is built, run through middleware,
// and executed. Every endpoint funnels its outbound calls through this
// helper so the middleware loop and retry handling are never repeated.
func (c *Client) doRequest(ctx context.Context, method, rawURL string, body io.Reader) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawURL, body)
	if err != nil {
		return nil, err
	}

	for _, mw := range c.middleware {
		if err := mw(ctx, req); err != nil {
			return nil, err
		}
	}

	if c.logger != nil {
		c.logger.Debugf("echo: %s %s", method, req.URL)
	}

	return c.retry(ctx, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
}
