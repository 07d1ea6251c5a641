package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"ringbook/internal/domain"
)

// writeError maps the domain error taxonomy onto HTTP statuses. Validation
// gets 400, conflicts and state violations 409, missing records 404,
// anything else a generic 500 with no partial-success claim.
func (s *Server) writeError(c echo.Context, err error) error {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		stateErr      *domain.StateError
		warningsErr   *domain.WarningsError
	)
	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, map[string]any{"errors": validationErr.Messages})
	case errors.As(err, &conflictErr):
		return c.JSON(http.StatusConflict, map[string]any{"error": conflictErr.Message})
	case errors.As(err, &stateErr):
		return c.JSON(http.StatusConflict, map[string]any{"error": stateErr.Message})
	case errors.As(err, &warningsErr):
		return c.JSON(http.StatusConflict, map[string]any{
			"error":    "outstanding warnings require acknowledgment",
			"warnings": warningsErr.Warnings,
		})
	case errors.Is(err, domain.ErrNotFound):
		return c.JSON(http.StatusNotFound, map[string]any{"error": "not found"})
	default:
		s.logger.Error().Err(err).Str("path", c.Path()).Msg("request failed")
		return c.JSON(http.StatusInternalServerError, map[string]any{"error": "internal error"})
	}
}
