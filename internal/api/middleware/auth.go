package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/thingful/thingful-api/internal/api/metrics"
	"github.com/thingful/thingful-api/internal/core/auth"
	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
)

// PrincipalKey is the echo context key the verified Principal is stored under.
const PrincipalKey = "principal"

// External message contract. Everything except the missing-header case
// collapses to "Unauthorized request" so responses reveal nothing about why
// verification failed.
const (
	msgMissingBasic  = "Missing basic token"
	msgMissingBearer = "Missing bearer token"
	msgUnauthorized  = "Unauthorized request"
)

// RequireAuth gates a route on the given authenticator and attaches the
// verified Principal to the request context. On failure the handler never
// runs.
func RequireAuth(authn ports.Authenticator) echo.MiddlewareFunc {
	missing := msgMissingBasic
	if authn.Scheme() == auth.SchemeBearer {
		missing = msgMissingBearer
	}
	scheme := strings.ToLower(string(authn.Scheme()))

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cred, err := auth.ExtractCredential(c.Request().Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, domain.ErrMissingCredentials) {
					metrics.AuthAttemptsTotal.WithLabelValues(scheme, "missing").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, missing)
				}
				metrics.AuthAttemptsTotal.WithLabelValues(scheme, "malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
			}
			if cred.Scheme != authn.Scheme() {
				metrics.AuthAttemptsTotal.WithLabelValues(scheme, "malformed").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
			}

			principal, err := authn.Authenticate(c.Request().Context(), cred)
			if err != nil {
				if isAuthFailure(err) {
					metrics.AuthAttemptsTotal.WithLabelValues(scheme, "unauthorized").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, msgUnauthorized)
				}
				// Infrastructure failure, not a credential problem.
				return err
			}

			metrics.AuthAttemptsTotal.WithLabelValues(scheme, "ok").Inc()
			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

func isAuthFailure(err error) bool {
	return errors.Is(err, domain.ErrInvalidCredentials) ||
		errors.Is(err, domain.ErrUnauthorized) ||
		errors.Is(err, domain.ErrExpiredToken) ||
		errors.Is(err, domain.ErrInvalidSignature) ||
		errors.Is(err, domain.ErrMalformedToken) ||
		errors.Is(err, domain.ErrMalformedCredentials)
}
