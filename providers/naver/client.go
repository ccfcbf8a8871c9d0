package naver

import (
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the Naver Search API root. Tests override it with
	// [WithBaseURL] to point at an httptest server.
	DefaultBaseURL = "https://openapi.naver.com/v1/search"

	// DefaultTimeout bounds the blocking transport used by [Client.RawResults].
	// The context transport carries no internal timeout; deadlines come from
	// the caller's context.
	DefaultTimeout = 10 * time.Second
)

// Client talks to the Naver Search API. It is immutable after construction
// and safe for concurrent use. The blocking operations ([Client.RawResults],
// [Client.Results]) run on a timeout-bounded HTTP client; the context
// operations ([Client.RawResultsContext], [Client.ResultsContext]) run on an
// independent client whose cancellation and deadlines come from the caller.
type Client struct {
	creds      Credentials
	baseURL    string
	timeout    time.Duration
	syncClient *http.Client
	ctxClient  *http.Client
}

// Option configures a Client at construction.
type Option func(*Client)

// WithBaseURL replaces the API root. A trailing slash is trimmed so path
// construction stays uniform.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient injects the HTTP client used by both transport paths.
// The caller keeps ownership of its configuration, including any timeout.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.syncClient = hc
		c.ctxClient = hc
	}
}

// WithTimeout sets the timeout of the default blocking transport. It has no
// effect when [WithHTTPClient] is also given.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient builds a Client from the given credentials. It fails fast with
// [ErrMissingCredentials] when either secret is empty, so a misconfigured
// client cannot be constructed and fail later mid-request.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if !creds.set() {
		return nil, ErrMissingCredentials
	}

	c := &Client{
		creds:   creds,
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.syncClient == nil {
		c.syncClient = &http.Client{Timeout: c.timeout}
	}
	if c.ctxClient == nil {
		c.ctxClient = &http.Client{}
	}
	return c, nil
}
