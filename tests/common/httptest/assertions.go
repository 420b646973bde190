//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	if expectedStatus >= 200 && expectedStatus < 300 && targetStruct != nil {
		err := json.Unmarshal(w.Body.Bytes(), targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String()))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var errorResponse struct {
		Error string `json:"error"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))

	if expectedErrorMsg != "" {
		assert.Contains(t, errorResponse.Error, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertVerifyFailure checks the counterparty-facing failure envelope
// {"success":false,"error_message":"..."} used by the public endpoints.
func AssertVerifyFailure(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedMsgFragment string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var failure struct {
		Success      bool   `json:"success"`
		ErrorMessage string `json:"error_message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &failure)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode failure response JSON: %s", w.Body.String()))

	assert.False(t, failure.Success, "failure envelope must carry success=false")
	if expectedMsgFragment != "" {
		assert.Contains(t, failure.ErrorMessage, expectedMsgFragment,
			"Failure message doesn't contain expected text")
	}
}
