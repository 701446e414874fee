package errors

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// ErrorResponse is the uniform wire envelope for every failed request,
// except user registration/update which report field errors separately.
type ErrorResponse struct {
	APIPath      string `json:"apiPath"`
	ErrorCode    string `json:"errorCode"`
	ErrorMessage string `json:"errorMessage"`
	ErrorTime    string `json:"errorTime"`
}

// WriteJSON encodes data with the given status. Encoding failures are
// silently dropped; by that point the status line is already on the wire.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// WriteHTTP maps a domain error onto its HTTP status and writes the
// uniform envelope. Unclassified errors become 500 without leaking the cause.
func WriteHTTP(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	code := "INTERNAL_SERVER_ERROR"
	message := "an unexpected error occurred"

	switch {
	case isValidation(err):
		ve, _ := IsValidationError(err)
		status = http.StatusBadRequest
		code = "BAD_REQUEST"
		message = validationMessage(ve)
	case isUnauthenticated(err):
		status = http.StatusUnauthorized
		code = "UNAUTHORIZED"
		message = err.Error()
	case isForbidden(err):
		status = http.StatusForbidden
		code = "FORBIDDEN"
		message = err.Error()
	case isNotFound(err):
		status = http.StatusNotFound
		code = "NOT_FOUND"
		message = err.Error()
	case isConflict(err):
		status = http.StatusConflict
		code = "CONFLICT"
		message = err.Error()
	}

	WriteJSON(w, status, ErrorResponse{
		APIPath:      r.URL.Path,
		ErrorCode:    code,
		ErrorMessage: message,
		ErrorTime:    time.Now().UTC().Format(time.RFC3339),
	})
}

func validationMessage(ve *ValidationError) string {
	if len(ve.Details) == 0 {
		return ve.Message
	}
	parts := make([]string, 0, len(ve.Details))
	for _, d := range ve.Details {
		parts = append(parts, d.Field+": "+d.Message)
	}
	return ve.Message + " [" + strings.Join(parts, "; ") + "]"
}

func isValidation(err error) bool {
	_, ok := IsValidationError(err)
	return ok
}

func isUnauthenticated(err error) bool {
	_, ok := IsUnauthenticatedError(err)
	return ok
}

func isForbidden(err error) bool {
	_, ok := IsForbiddenError(err)
	return ok
}

func isNotFound(err error) bool {
	_, ok := IsNotFoundError(err)
	return ok
}

func isConflict(err error) bool {
	_, ok := IsConflictError(err)
	return ok
}
