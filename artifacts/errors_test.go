package artifacts

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAPIError(t *testing.T) {
	tests := []struct {
		name             string
		err              *APIError
		wantNotFound     bool
		wantUnauthorized bool
		wantCooldown     bool
	}{
		{
			name:         "not found code",
			err:          &APIError{StatusCode: 404, Code: CodeNotFound, Message: "Item not found."},
			wantNotFound: true,
		},
		{
			name:             "invalid token",
			err:              &APIError{StatusCode: 452, Code: CodeInvalidToken, Message: "Token is invalid."},
			wantUnauthorized: true,
		},
		{
			name:             "forbidden status",
			err:              &APIError{StatusCode: http.StatusForbidden, Code: 403},
			wantUnauthorized: true,
		},
		{
			name:         "cooldown",
			err:          &APIError{StatusCode: 499, Code: CodeCooldown, Message: "Character in cooldown."},
			wantCooldown: true,
		},
		{
			name: "inventory full",
			err:  &APIError{StatusCode: 497, Code: CodeInventoryFull},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantNotFound, tt.err.IsNotFound())
			assert.Equal(t, tt.wantUnauthorized, tt.err.IsUnauthorized())
			assert.Equal(t, tt.wantCooldown, tt.err.IsCooldown())
		})
	}
}

func TestAPIErrorMessage(t *testing.T) {
	err := &APIError{StatusCode: 499, Code: CodeCooldown, Message: "Character in cooldown: 5.0 seconds left."}
	assert.Equal(t, "artifacts API error: code 499: Character in cooldown: 5.0 seconds left.", err.Error())
}

func TestAPIErrorIs(t *testing.T) {
	wrapped := fmt.Errorf("moving hero: %w", &APIError{StatusCode: 490, Code: CodeAlreadyAtDestination})

	assert.ErrorIs(t, wrapped, &APIError{Code: CodeAlreadyAtDestination})
	assert.NotErrorIs(t, wrapped, &APIError{Code: CodeCooldown})
	assert.NotErrorIs(t, wrapped, &APIError{})
}

func TestErrorKindsUnwrap(t *testing.T) {
	cause := errors.New("connection reset")

	transportErr := &TransportError{Method: http.MethodGet, URL: "https://api.artifactsmmo.com/", Err: cause}
	assert.ErrorIs(t, transportErr, cause)
	assert.Contains(t, transportErr.Error(), "GET https://api.artifactsmmo.com/")

	decodeErr := &DecodeError{StatusCode: 200, Body: "{}", Err: errMissingData}
	assert.ErrorIs(t, decodeErr, errMissingData)
	assert.Contains(t, decodeErr.Error(), "status 200")
}
