package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"abc-retail-backend/internal/repository"
	"abc-retail-backend/internal/service"
	"abc-retail-backend/internal/table"
)

// httpError maps the service/repository error taxonomy onto status codes.
func httpError(err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound), errors.Is(err, table.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "not found")
	case errors.Is(err, table.ErrConflict):
		return echo.NewHTTPError(http.StatusConflict, "entity changed, re-fetch and retry")
	case errors.Is(err, service.ErrInvalidCredentials):
		return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
	case errors.Is(err, service.ErrUserExists),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInsufficientStock):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return err
	}
}
