package errors

import "net/http"

// HTTPError is a delivery-layer error carrying the status code it maps to.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
