package http

import (
	"errors"
	"net/http"

	"task-scheduler/internal/adjustment"
	pkgErrors "task-scheduler/pkg/errors"
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, adjustment.ErrMissingUserID):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "user id is required")
	case errors.Is(err, adjustment.ErrEmptyUtterance):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
