package errors

import "net/http"

// HTTPError is an error that carries the status and code to return to the client.
type HTTPError struct {
	StatusCode int    `json:"-"`
	Code       int    `json:"error_code"`
	Message    string `json:"message"`
}

// NewHTTPError builds an HTTPError whose code equals the status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

// NewHTTPErrorWithCode builds an HTTPError with an application code distinct from the status.
func NewHTTPErrorWithCode(status, code int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: code, Message: message}
}

func (e *HTTPError) Error() string { return e.Message }

var (
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrNotFound            = NewHTTPError(http.StatusNotFound, "not found")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
)
