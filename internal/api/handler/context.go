package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thingful/thingful-api/internal/api/middleware"
	"github.com/thingful/thingful-api/internal/core/domain"
)

// ctxPrincipal extracts the Principal injected by the auth middleware.
// Its absence means the route was misconfigured without a gate; reject
// rather than proceed unauthenticated.
func ctxPrincipal(c echo.Context) (domain.Principal, error) {
	principal, ok := c.Get(middleware.PrincipalKey).(domain.Principal)
	if !ok {
		return domain.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized request")
	}
	return principal, nil
}
