package artifacts

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

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the public ArtifactsMMO API host.
	DefaultBaseURL = "https://api.artifactsmmo.com"
	// DefaultTimeout bounds a single HTTP exchange.
	DefaultTimeout = 30 * time.Second
	// DefaultUserAgent is sent when no custom user agent is configured.
	DefaultUserAgent = "artifactsmmo-go"
)

// Client represents an ArtifactsMMO API client
type Client struct {
	baseURL    string
	token      string
	userAgent  string
	pageSize   int
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a new ArtifactsMMO client authenticated with a bearer token
func NewClient(token string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: API token is required", ErrInvalidConfig)
	}

	options := clientOptions{
		baseURL:   DefaultBaseURL,
		timeout:   DefaultTimeout,
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(&options)
	}

	if options.baseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", ErrInvalidConfig)
	}
	if _, err := url.ParseRequestURI(options.baseURL); err != nil {
		return nil, fmt.Errorf("%w: invalid base URL %q: %v", ErrInvalidConfig, options.baseURL, err)
	}

	httpClient := options.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: options.timeout}
	}

	return &Client{
		baseURL:    strings.TrimRight(options.baseURL, "/"),
		token:      token,
		userAgent:  options.userAgent,
		pageSize:   options.pageSize,
		httpClient: httpClient,
		logger:     logger,
	}, nil
}

// BaseURL returns the host the client talks to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// request describes one logical API operation
type request struct {
	method string
	path   string
	body   any
	query  url.Values
}

// envelope is the success wrapper returned on HTTP 200
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// errorEnvelope is the wrapper returned on any other status
type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// doRequest performs one HTTP exchange and returns the status code and raw body
func (c *Client) doRequest(ctx context.Context, r request) (int, []byte, error) {
	endpoint := c.baseURL + r.path
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return 0, nil, &TransportError{Method: r.method, URL: endpoint, Err: fmt.Errorf("failed to encode request body: %w", err)}
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, endpoint, body)
	if err != nil {
		return 0, nil, &TransportError{Method: r.method, URL: endpoint, Err: err}
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("User-Agent", c.userAgent)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Method: r.method, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Method: r.method, URL: endpoint, Err: fmt.Errorf("failed to read response body: %w", err)}
	}

	c.logger.Debug().
		Str("method", r.method).
		Str("path", r.path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("ArtifactsMMO API request")

	return resp.StatusCode, raw, nil
}

// send issues the request and decodes the success envelope into T
func send[T any](ctx context.Context, c *Client, r request) (T, error) {
	var zero T

	status, raw, err := c.doRequest(ctx, r)
	if err != nil {
		return zero, err
	}
	if status != http.StatusOK {
		return zero, decodeError(status, raw)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return zero, &DecodeError{StatusCode: status, Body: string(raw), Err: err}
	}
	if isNull(env.Data) {
		return zero, &DecodeError{StatusCode: status, Body: string(raw), Err: errMissingData}
	}

	var out T
	if err := json.Unmarshal(env.Data, &out); err != nil {
		return zero, &DecodeError{StatusCode: status, Body: string(raw), Err: err}
	}
	return out, nil
}

// isNull reports whether a data field is absent or JSON null
func isNull(data json.RawMessage) bool {
	return len(data) == 0 || bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// decodeError turns a non-200 body into an *APIError, or a *DecodeError when
// the body is not an error envelope
func decodeError(status int, raw []byte) error {
	var env errorEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &DecodeError{StatusCode: status, Body: string(raw), Err: err}
	}
	if env.Error == nil {
		return &DecodeError{StatusCode: status, Body: string(raw), Err: errMissingError}
	}
	return &APIError{
		StatusCode: status,
		Code:       ErrorCode(env.Error.Code),
		Message:    env.Error.Message,
	}
}
