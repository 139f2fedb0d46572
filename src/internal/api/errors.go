package api

import (
	"encoding/json"
	"net/http"
)

// ErrorCode represents standard API error codes.
type ErrorCode string

const (
	// ErrCodeInvalidRequest indicates malformed or invalid request data.
	ErrCodeInvalidRequest ErrorCode = "invalid_request"

	// ErrCodeInvalidFormat indicates an address or prefix that does not parse.
	ErrCodeInvalidFormat ErrorCode = "invalid_format"

	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "not_found"

	// ErrCodeNoRoute indicates that no prefix in the table contains the address.
	ErrCodeNoRoute ErrorCode = "no_route"

	// ErrCodeResolveFailed indicates a hostname could not be resolved.
	ErrCodeResolveFailed ErrorCode = "resolve_failed"

	// ErrCodeForbidden indicates the client is not allowed to use the API.
	ErrCodeForbidden ErrorCode = "forbidden"

	// ErrCodeInternalError indicates an internal server error.
	ErrCodeInternalError ErrorCode = "internal_error"
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
	json.NewEncoder(w).Encode(ErrorResponse{Error: err})
}

// WriteInvalidRequest writes a 400 Bad Request error.
func WriteInvalidRequest(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidRequest, message))
}

// WriteInvalidFormat writes a 400 Bad Request naming the rejected input.
func WriteInvalidFormat(w http.ResponseWriter, input string, err error) {
	WriteError(w, http.StatusBadRequest, NewAPIError(ErrCodeInvalidFormat, err.Error()).WithDetails(map[string]interface{}{
		"input": input,
	}))
}

// WriteNotFound writes a 404 Not Found error.
func WriteNotFound(w http.ResponseWriter, resource string) {
	WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNotFound, resource+" not found"))
}

// WriteNoRoute writes a 404 for an address outside every known prefix.
func WriteNoRoute(w http.ResponseWriter, address string) {
	WriteError(w, http.StatusNotFound, NewAPIError(ErrCodeNoRoute, "no route to "+address).WithDetails(map[string]interface{}{
		"address": address,
	}))
}

// WriteResolveFailed writes a 502 Bad Gateway for a failed DNS lookup.
func WriteResolveFailed(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusBadGateway, NewAPIError(ErrCodeResolveFailed, message))
}

// WriteForbidden writes a 403 Forbidden error.
func WriteForbidden(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusForbidden, NewAPIError(ErrCodeForbidden, message))
}

// WriteInternalError writes a 500 Internal Server Error.
func WriteInternalError(w http.ResponseWriter, message string) {
	WriteError(w, http.StatusInternalServerError, NewAPIError(ErrCodeInternalError, message))
}
