package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func AssertBasicAuth(t *testing.T, req RecordedRequest, username, password string) {
	t.Helper()

	require.True(t, req.HasAuth, "Request should carry basic auth")
	assert.Equal(t, username, req.Username, "Basic auth username mismatch")
	assert.Equal(t, password, req.Password, "Basic auth password mismatch")
}

func AssertJSONBody(t *testing.T, req RecordedRequest, expected string) {
	t.Helper()

	assert.Equal(t, "application/json", req.Header.Get("Content-Type"),
		"Request Content-Type should be application/json")
	assert.JSONEq(t, expected, string(req.Body), "Request body mismatch")
}

func AssertNoBody(t *testing.T, req RecordedRequest) {
	t.Helper()
	assert.Empty(t, req.Body, "Request should have no body")
	assert.Empty(t, req.Header.Get("Content-Type"), "Request without body should have no Content-Type")
}

func AssertRoute(t *testing.T, req RecordedRequest, method, path string) {
	t.Helper()
	assert.Equal(t, method, req.Method, "Request method mismatch")
	assert.Equal(t, path, req.Path, "Request path mismatch")
}

// AssertSameRequest checks that a retry re-sent exactly what the first
// attempt sent.
func AssertSameRequest(t *testing.T, first, retry RecordedRequest) {
	t.Helper()

	assert.Equal(t, first.Method, retry.Method, "Retry method mismatch")
	assert.Equal(t, first.Path, retry.Path, "Retry path mismatch")
	assert.Equal(t, first.RawQuery, retry.RawQuery, "Retry query mismatch")
	assert.Equal(t, string(first.Body), string(retry.Body), "Retry body mismatch")
	assert.Equal(t, first.Header.Get("X-Request-ID"), retry.Header.Get("X-Request-ID"), "Retry request ID mismatch")
}
