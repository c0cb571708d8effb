package http

import (
	"context"
	"errors"
	"net/http"

	"student-productivity/internal/resume"
	pkgErrors "student-productivity/pkg/errors"
)

func (h *handler) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, resume.ErrEmptyInput):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		h.reporter.Report(ctx, err, map[string]any{"domain": "resume"})
		return pkgErrors.ErrInternalServerError
	}
}
