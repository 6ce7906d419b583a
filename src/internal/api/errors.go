package api

import (
	"encoding/json"
	"net/http"

	"github.com/holectl/holectl/src/internal/errors"
	"github.com/holectl/holectl/src/internal/log"
)

// ErrorCode represents API error codes that have no domain counterpart.
type ErrorCode = errors.ErrorCode

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// ErrCodeForbidden indicates that the client address is not allowed.
	ErrCodeForbidden ErrorCode = "FORBIDDEN"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "INTERNAL_ERROR"
)

// APIError represents a structured API error response.
type APIError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// ErrorResponse wraps an APIError for JSON responses.
type ErrorResponse struct {
	Error APIError `json:"error"`
}

// NewAPIError creates a new APIError with the given code and message.
func NewAPIError(code ErrorCode, message string) APIError {
	return APIError{
		Code:    code,
		Message: message,
	}
}

// WithDetails adds details to an APIError.
func (e APIError) WithDetails(details map[string]interface{}) APIError {
	e.Details = details
	return e
}

// WriteError writes an error response to the HTTP response writer.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if encodeErr := json.NewEncoder(w).Encode(ErrorResponse{Error: err}); encodeErr != nil {
		log.Warnf("Failed to encode error response: %v", encodeErr)
	}
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}

// StatusCodeFor maps a domain error code to an HTTP status.
func StatusCodeFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeInvalidDomain, errors.ErrCodeValidation:
		return http.StatusBadRequest
	case errors.ErrCodeAlreadyExists:
		return http.StatusConflict
	case errors.ErrCodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// WriteDomainError writes err with the status matching its code. The code is
// preserved in the response body.
func WriteDomainError(w http.ResponseWriter, err error) {
	code := errors.CodeOf(err)
	status := StatusCodeFor(code)
	if status == http.StatusInternalServerError {
		log.Errorf("Request failed: %v", err)
	}
	WriteError(w, status, NewAPIError(code, err.Error()))
}
