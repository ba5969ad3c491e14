package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/resume-ranker/internal/fetch"
	"github.com/jonathan/resume-ranker/internal/ingestion"
	"github.com/jonathan/resume-ranker/internal/pipeline"
)

// ErrStoreFull indicates the upload store reached its configured capacity.
type ErrStoreFull struct {
	Limit int
}

func (e *ErrStoreFull) Error() string {
	return fmt.Sprintf("upload store full: limit of %d resumes reached", e.Limit)
}

// ErrNotFound indicates a stored entity does not exist.
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// HTTPStatus maps the typed errors of every layer to a response status:
// store misses to 404, capacity to 507, oversized uploads to 413, bad
// requests and unreadable documents to 400, upstream fetch failures to
// 502, anything unrecognized to 500.
func HTTPStatus(err error) int {
	var (
		notFound   *ErrNotFound
		storeFull  *ErrStoreFull
		maxBytes   *http.MaxBytesError
		inputErr   *pipeline.InputValidationError
		extractErr *ingestion.ExtractionError
		fetchErr   *fetch.Error
	)
	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &storeFull):
		return http.StatusInsufficientStorage
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	case errors.As(err, &inputErr):
		return http.StatusBadRequest
	case errors.As(err, &extractErr):
		return http.StatusBadRequest
	case errors.As(err, &fetchErr):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
