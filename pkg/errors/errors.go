package errors

import (
	"net/http"

	"github.com/andersonbelino29/eventmate-pro-sub001/pkg/status"
)

// AppError is the request-scoped error shape every layer returns. The HTTP
// handler destructs it into the response envelope.
type AppError struct {
	HTTPStatusCode int
	Status         string
	Message        string
}

func (e *AppError) Error() string {
	return e.Message
}

func New(httpStatusCode int, status string, message string) error {
	return &AppError{
		HTTPStatusCode: httpStatusCode,
		Status:         status,
		Message:        message,
	}
}

// Destruct resolves any error into an AppError, mapping unknown error types
// to an internal server error so processor or driver internals never leak.
func Destruct(err error) *AppError {
	if ae, ok := err.(*AppError); ok {
		return ae
	}

	return &AppError{
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         status.INTERNAL_SERVER_ERROR,
		Message:        "an unexpected error occurred",
	}
}
