package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	apperrors "github.com/julioszeferino/api-faculdade/internal/errors"
)

// httpError converts a domain error into an echo HTTP error with the
// standardized response body.
func httpError(err error) *echo.HTTPError {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// parseID reads the :id path parameter.
func parseID(c echo.Context) (uint, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return uint(id), nil
}
