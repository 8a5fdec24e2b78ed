package artifacts

import (
	"net/http"
	"time"
)

// Option configures a Client.
type Option func(*clientOptions)

// clientOptions holds configuration options for the Client.
type clientOptions struct {
	baseURL    string
	timeout    time.Duration
	userAgent  string
	pageSize   int
	httpClient *http.Client
}

// WithBaseURL points the client at a different host.
func WithBaseURL(baseURL string) Option {
	return func(o *clientOptions) {
		o.baseURL = baseURL
	}
}

// WithTimeout sets the HTTP client timeout.
// Ignored when a custom HTTP client is supplied.
func WithTimeout(timeout time.Duration) Option {
	return func(o *clientOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(o *clientOptions) {
		o.httpClient = client
	}
}

// WithUserAgent sets a custom user agent string.
func WithUserAgent(userAgent string) Option {
	return func(o *clientOptions) {
		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithPageSize sets the size query parameter sent with paginated listings.
// Zero leaves the page size to the server.
func WithPageSize(size int) Option {
	return func(o *clientOptions) {
		if size >= 0 {
			o.pageSize = size
		}
	}
}
