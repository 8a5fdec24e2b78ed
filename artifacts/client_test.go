package artifacts

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return data
}

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	opts = append([]Option{WithBaseURL(server.URL)}, opts...)
	client, err := NewClient("test-token", zerolog.Nop(), opts...)
	require.NoError(t, err)
	return client
}

func TestNewClient(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name    string
		token   string
		opts    []Option
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid config",
			token: "test-token",
		},
		{
			name:    "missing token",
			token:   "  ",
			wantErr: true,
			errMsg:  "API token is required",
		},
		{
			name:    "empty base URL",
			token:   "test-token",
			opts:    []Option{WithBaseURL("")},
			wantErr: true,
			errMsg:  "base URL is required",
		},
		{
			name:    "invalid base URL",
			token:   "test-token",
			opts:    []Option{WithBaseURL("not a url")},
			wantErr: true,
			errMsg:  "invalid base URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(tt.token, logger, tt.opts...)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidConfig)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, DefaultBaseURL, client.BaseURL())
			assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
			assert.Equal(t, DefaultUserAgent, client.userAgent)
		})
	}
}

func TestClientOptions(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("with base URL trims trailing slash", func(t *testing.T) {
		client, err := NewClient("test-token", logger, WithBaseURL("http://localhost:8080/"))
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080", client.BaseURL())
	})

	t.Run("with timeout", func(t *testing.T) {
		client, err := NewClient("test-token", logger, WithTimeout(5*time.Second))
		require.NoError(t, err)
		assert.Equal(t, 5*time.Second, client.httpClient.Timeout)
	})

	t.Run("with page size", func(t *testing.T) {
		client, err := NewClient("test-token", logger, WithPageSize(50))
		require.NoError(t, err)
		assert.Equal(t, 50, client.pageSize)
	})

	t.Run("with user agent", func(t *testing.T) {
		client, err := NewClient("test-token", logger, WithUserAgent("bot/1.0"))
		require.NoError(t, err)
		assert.Equal(t, "bot/1.0", client.userAgent)
	})

	t.Run("with custom http client", func(t *testing.T) {
		customClient := &http.Client{Timeout: 10 * time.Second}
		client, err := NewClient("test-token", logger, WithHTTPClient(customClient))
		require.NoError(t, err)
		assert.Same(t, customClient, client.httpClient)
	})
}

func TestRequestHeaders(t *testing.T) {
	t.Run("POST with body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/my/hero/action/move", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Accept"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Equal(t, "bot/1.0", r.Header.Get("User-Agent"))

			body, err := io.ReadAll(r.Body)
			require.NoError(t, err)
			assert.JSONEq(t, `{"x": 3, "y": -1}`, string(body))

			w.Write(loadFixture(t, "character_movement.json"))
		}, WithUserAgent("bot/1.0"))

		_, err := client.Move(context.Background(), "hero", 3, -1)
		require.NoError(t, err)
	})

	t.Run("GET without body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Empty(t, r.Header.Get("Content-Type"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			w.Write(loadFixture(t, "status.json"))
		})

		_, err := client.Status(context.Background())
		require.NoError(t, err)
	})
}

func TestErrorEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		code    ErrorCode
		message string
	}{
		{"not found", http.StatusNotFound, CodeNotFound, "Character not found."},
		{"invalid token", 452, CodeInvalidToken, "Token is invalid."},
		{"missing item", 478, CodeMissingItem, "Missing item or insufficient quantity."},
		{"inventory full", 497, CodeInventoryFull, "Character inventory is full."},
		{"cooldown", 499, CodeCooldown, "Character in cooldown: 5.0 seconds left."},
		{"not on map", 598, CodeContentNotOnMap, "Monster not found on this map."},
		{"server error", http.StatusInternalServerError, ErrorCode(500), "Internal error."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]any{"code": int(tt.code), "message": tt.message},
				})
			})

			_, err := client.Fight(context.Background(), "hero")
			require.Error(t, err)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.Equal(t, tt.message, apiErr.Message)
		})
	}
}

func TestErrorFixture(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(499)
		w.Write(loadFixture(t, "error_cooldown.json"))
	})

	_, err := client.Gather(context.Background(), "hero")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.True(t, apiErr.IsCooldown())
	assert.Equal(t, "Character in cooldown: 5.0 seconds left.", apiErr.Message)
	assert.ErrorIs(t, err, &APIError{Code: CodeCooldown})
}

func TestMalformedResponses(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"success body not JSON", http.StatusOK, `<html>oops</html>`},
		{"success body without data", http.StatusOK, `{"result": "ok"}`},
		{"success data of wrong shape", http.StatusOK, `{"data": "hero"}`},
		{"success data null", http.StatusOK, `{"data": null}`},
		{"error body not JSON", http.StatusBadGateway, `Bad Gateway`},
		{"error body without error", http.StatusNotFound, `{"detail": "nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				io.WriteString(w, tt.body)
			})

			_, err := client.Character(context.Background(), "hero")
			require.Error(t, err)

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.Equal(t, tt.status, decodeErr.StatusCode)
			assert.Equal(t, tt.body, decodeErr.Body)

			var apiErr *APIError
			assert.False(t, errors.As(err, &apiErr))
		})
	}
}

func TestNullDataIsMissing(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `{"data": null}`)
	})

	character, err := client.Character(context.Background(), "hero")
	assert.Nil(t, character)
	assert.ErrorIs(t, err, errMissingData)

	_, err = client.Rest(context.Background(), "hero")
	assert.ErrorIs(t, err, errMissingData)
}

func TestRequestBodyEncodingFailure(t *testing.T) {
	var called bool
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, _, err := client.doRequest(context.Background(), request{
		method: http.MethodPost,
		path:   "/my/hero/action/move",
		body:   map[string]any{"x": make(chan int)},
	})
	require.Error(t, err)
	assert.False(t, called)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodPost, transportErr.Method)
	assert.Contains(t, err.Error(), "failed to encode request body")

	var unsupported *json.UnsupportedTypeError
	assert.ErrorAs(t, err, &unsupported)
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	client, err := NewClient("test-token", zerolog.Nop(), WithBaseURL(baseURL))
	require.NoError(t, err)

	_, err = client.Status(context.Background())
	require.Error(t, err)

	var transportErr *TransportError
	require.ErrorAs(t, err, &transportErr)
	assert.Equal(t, http.MethodGet, transportErr.Method)
	assert.Equal(t, baseURL+"/", transportErr.URL)
}

func TestContextCancellation(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write(loadFixture(t, "status.json"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := client.Status(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
