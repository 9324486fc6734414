package http

import (
	"errors"
	"net/http"

	"task-scheduler/internal/schedule"
	pkgErrors "task-scheduler/pkg/errors"
)

var errEmptyPlan = errors.New("plan has no tasks")

// mapError translates use-case errors into HTTP errors. Anything unknown is a store
// or infrastructure failure and becomes a 500.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, schedule.ErrMissingUserID):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "user id is required")
	case errors.Is(err, schedule.ErrEmptyText):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "text is empty")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
