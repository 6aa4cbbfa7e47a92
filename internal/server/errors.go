package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/jobtracker/internal/resumeparse"
)

// ErrNotFound indicates the requested resource does not exist
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		validation *ErrValidation
		upload     *resumeparse.UploadError
		tooLarge   *http.MaxBytesError
	)
	switch {
	case errors.As(err, &notFound), errors.Is(err, resumeparse.ErrClosed):
		return http.StatusNotFound
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &validation), errors.As(err, &upload), errors.Is(err, resumeparse.ErrUnknownField):
		return http.StatusBadRequest
	case errors.Is(err, resumeparse.ErrCancelled):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
