package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/roach88/dashview/internal/model"
)

// Transport-level error codes. Domain errors keep their model.ErrorCode.
const (
	codeBadRequest       = "BAD_REQUEST"
	codeNotFound         = "NOT_FOUND"
	codeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	codeInternal         = "INTERNAL"
)

// Response is the envelope for every body the server writes.
type Response struct {
	Status string     `json:"status"` // "ok" or "error"
	Data   any        `json:"data,omitempty"`
	Error  *ErrorBody `json:"error,omitempty"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func writeOK(w http.ResponseWriter, data any) {
	writeJSON(w, http.StatusOK, Response{Status: "ok", Data: data})
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, Response{
		Status: "error",
		Error:  &ErrorBody{Code: code, Message: message},
	})
}

// statusFor maps a domain error code to an HTTP status.
func statusFor(code model.ErrorCode) int {
	switch code {
	case model.ErrCodeInvalidInput:
		return http.StatusBadRequest
	case model.ErrCodeInvalidConfiguration:
		return http.StatusUnprocessableEntity
	case model.ErrCodeOutOfRange:
		return http.StatusNotFound
	case model.ErrCodeEmptyCollection:
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}

// writeModelError writes err with its domain status. It reports false for
// errors that carry no model.ErrorCode.
func writeModelError(w http.ResponseWriter, err error) bool {
	var e *model.Error
	if !errors.As(err, &e) {
		return false
	}
	writeJSON(w, statusFor(e.Code), Response{
		Status: "error",
		Error: &ErrorBody{
			Code:    string(e.Code),
			Message: e.Message,
			Details: e.Details,
		},
	})
	return true
}
