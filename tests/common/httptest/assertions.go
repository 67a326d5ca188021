//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"coachdesk/internal/handler/httperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// AssertSuccessResponse checks the status and, for 2xx, decodes the body into target.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, target any) {
	t.Helper()

	if !assert.Equalf(t, expectedStatus, w.Code, "unexpected status; body: %s", w.Body.String()) {
		return
	}
	if expectedStatus >= 200 && expectedStatus < 300 && target != nil {
		assert.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), target), "failed to decode response JSON: %s", w.Body.String())
	}
}

// AssertErrorResponse checks the status, the machine-readable code and, when
// expectedMsg is set, that the message contains it.
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsg string) {
	t.Helper()

	assert.Equalf(t, expectedStatus, w.Code, "unexpected status; body: %s", w.Body.String())

	var resp httperr.Response
	require.NoErrorf(t, json.Unmarshal(w.Body.Bytes(), &resp), "failed to decode error JSON: %s", w.Body.String())
	assert.Equal(t, httperr.CodeFor(expectedStatus), resp.Error.Code)
	if expectedMsg != "" {
		assert.Contains(t, resp.Error.Message, expectedMsg)
	}
}

func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
