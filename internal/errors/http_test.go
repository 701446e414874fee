package errors

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeAndDecode(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest("GET", "/order/abc", nil)

	WriteHTTP(w, r, err)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestWriteHTTP_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"not found", NewNotFoundError("order not found"), 404, "NOT_FOUND"},
		{"conflict", NewConflictError("illegal transition"), 409, "CONFLICT"},
		{"forbidden", NewForbiddenError("not your order"), 403, "FORBIDDEN"},
		{"unauthenticated", NewUnauthenticatedError("token required"), 401, "UNAUTHORIZED"},
		{"validation", NewValidationError("validation failed"), 400, "BAD_REQUEST"},
		{"internal", NewInternalError("boom", errors.New("cause")), 500, "INTERNAL_SERVER_ERROR"},
		{"unclassified", errors.New("anything"), 500, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := writeAndDecode(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body.ErrorCode)
			assert.Equal(t, "/order/abc", body.APIPath)

			_, err := time.Parse(time.RFC3339, body.ErrorTime)
			assert.NoError(t, err)
		})
	}
}

func TestWriteHTTP_InternalHidesCause(t *testing.T) {
	_, body := writeAndDecode(t, NewInternalError("query failed", errors.New("dsn secrets")))
	assert.Equal(t, "an unexpected error occurred", body.ErrorMessage)
}

func TestWriteHTTP_ValidationEnumeratesFields(t *testing.T) {
	err := NewValidationError("validation failed",
		ValidationDetail{Field: "items", Message: "must not be empty"},
		ValidationDetail{Field: "restaurantId", Message: "is required"},
	)

	status, body := writeAndDecode(t, err)
	assert.Equal(t, 400, status)
	assert.Contains(t, body.ErrorMessage, "items: must not be empty")
	assert.Contains(t, body.ErrorMessage, "restaurantId: is required")
}
