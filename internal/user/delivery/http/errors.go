package http

import (
	"context"
	"errors"
	"net/http"

	"student-productivity/internal/user"
	pkgErrors "student-productivity/pkg/errors"
)

// mapError translates use case errors into HTTP errors. Unknown errors are
// reported and hidden behind a 500.
func (h *handler) mapError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, "username already exists")
	case errors.Is(err, user.ErrEmailTaken):
		return pkgErrors.NewHTTPError(http.StatusConflict, "email already exists")
	case errors.Is(err, user.ErrInvalidCredentials):
		return pkgErrors.NewHTTPError(http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, user.ErrWeakPassword):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, user.ErrUserNotFound):
		return pkgErrors.ErrNotFound
	default:
		h.reporter.Report(ctx, err, map[string]any{"domain": "user"})
		return pkgErrors.ErrInternalServerError
	}
}
