package http

import (
	"context"
	"errors"
	"net/http"

	"student-productivity/internal/course"
	pkgErrors "student-productivity/pkg/errors"
)

var errNothingToUpdate = pkgErrors.NewHTTPError(http.StatusBadRequest, "at least one field must be provided")

// mapError translates use case errors into HTTP errors. Unknown errors are
// reported and hidden behind a 500.
func (h *handler) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, course.ErrCourseNotFound),
		errors.Is(err, course.ErrTaskNotFound),
		errors.Is(err, course.ErrDeadlineNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, course.ErrDuplicateCode):
		return pkgErrors.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, course.ErrEmptyChecklist):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, course.ErrCalendarNotConfigured):
		return pkgErrors.NewHTTPError(http.StatusServiceUnavailable, err.Error())
	default:
		h.reporter.Report(ctx, err, map[string]any{"domain": "course"})
		return pkgErrors.ErrInternalServerError
	}
}
