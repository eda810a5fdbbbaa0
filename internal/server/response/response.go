// Package response provides the JSON envelope used by every API endpoint:
// a data field for successful responses and an error field for failures.
// Listings that fell back from invalid input also carry warnings.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/agentstation/spotmap/pkg/errors"
)

// Response is the API response envelope.
type Response struct {
	Data     any      `json:"data"`
	Error    *Error   `json:"error"`
	Warnings []string `json:"warnings,omitempty"`
}

// Error is an API error with code, message, and optional details.
type Error struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details string   `json:"details,omitempty"`
	Allowed []string `json:"allowed,omitempty"` // accepted values for a rejected field
}

// Success creates a successful response with data.
func Success(data any) Response {
	return Response{Data: data}
}

// Fail creates an error response.
func Fail(code, message, details string) Response {
	return Response{
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already sent, so an encoding error cannot be reported.
	_ = json.NewEncoder(w).Encode(resp)
}

// OK writes a successful response with 200 status.
func OK(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, Success(data))
}

// OKWithWarnings writes a successful response that also lists warnings.
func OKWithWarnings(w http.ResponseWriter, data any, warnings []string) {
	resp := Success(data)
	resp.Warnings = warnings
	JSON(w, http.StatusOK, resp)
}

// BadRequest writes a 400 error response.
func BadRequest(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusBadRequest, Fail("BAD_REQUEST", message, details))
}

// Unauthorized writes a 401 error response.
func Unauthorized(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusUnauthorized, Fail("UNAUTHORIZED", message, details))
}

// NotFound writes a 404 error response.
func NotFound(w http.ResponseWriter, message, details string) {
	JSON(w, http.StatusNotFound, Fail("NOT_FOUND", message, details))
}

// RateLimited writes a 429 error response.
func RateLimited(w http.ResponseWriter, message string) {
	JSON(w, http.StatusTooManyRequests, Fail("RATE_LIMITED", "Rate limit exceeded", message))
}

// InternalError writes a 500 error response. The error itself is not
// exposed to the client.
func InternalError(w http.ResponseWriter, _ error) {
	JSON(w, http.StatusInternalServerError, Fail(
		"INTERNAL_ERROR",
		"Internal server error",
		"An unexpected error occurred",
	))
}

// ServiceUnavailable writes a 503 error response.
func ServiceUnavailable(w http.ResponseWriter, message string) {
	JSON(w, http.StatusServiceUnavailable, Fail("SERVICE_UNAVAILABLE", "Service unavailable", message))
}

// ErrorFromType maps typed errors, including wrapped ones, to HTTP responses.
func ErrorFromType(w http.ResponseWriter, err error) {
	var (
		notFound   *errors.NotFoundError
		validation *errors.ValidationError
	)
	switch {
	case errors.As(err, &notFound):
		NotFound(w, notFound.Error(), "")
	case errors.As(err, &validation):
		resp := Fail("BAD_REQUEST", validation.Error(), "")
		resp.Error.Allowed = validation.Allowed
		JSON(w, http.StatusBadRequest, resp)
	case errors.Is(err, errors.ErrRateLimited):
		RateLimited(w, err.Error())
	default:
		InternalError(w, err)
	}
}
