package apierror

import (
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFromResponse(t *testing.T) {
	assert.NoError(t, FromResponse(http.StatusOK, ""))
	assert.NoError(t, FromResponse(http.StatusCreated, `{"token":"x"}`))

	err := FromResponse(http.StatusNotFound, `{"message":"OBP-30001: Bank not found"}`)
	assert.Error(t, err)
	apiErr, ok := err.(APIError)
	assert.True(t, ok)
	assert.Equal(t, ErrRemoteRequestFailed, apiErr.Code)
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Contains(t, apiErr.Body, "Bank not found")

	err = FromResponse(http.StatusTooManyRequests, "rate limit exceeded")
	assert.True(t, IsRateLimited(err))
}

func TestIsThroughWrapping(t *testing.T) {
	err := FromResponse(http.StatusTooManyRequests, "slow down")
	wrapped := errors.Wrap(err, "creating historical transaction")
	assert.True(t, IsRateLimited(wrapped))
	assert.False(t, IsAuthenticationFailed(wrapped))
}

func TestAuthenticationError(t *testing.T) {
	err := NewAPIError(ErrAuthenticationFailed, http.StatusUnauthorized, "invalid credentials")
	assert.True(t, IsAuthenticationFailed(err))
	assert.Contains(t, err.Error(), "AUTHENTICATION_FAILED")
	assert.Contains(t, err.Error(), "401")
}
