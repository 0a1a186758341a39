package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their contractual status codes and messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors: auth middleware rejections, bind failures, 404s
	// from the router.
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	// Request validation failures carry their client-facing message.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ve.Msg
	}

	switch {
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusBadRequest, "Username already taken"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusBadRequest, "Incorrect user_name or password"
	case errors.Is(err, domain.ErrThingNotFound):
		return http.StatusNotFound, "Thing doesn't exist"
	case errors.Is(err, domain.ErrUnauthorized),
		errors.Is(err, domain.ErrExpiredToken),
		errors.Is(err, domain.ErrInvalidSignature),
		errors.Is(err, domain.ErrMalformedToken):
		return http.StatusUnauthorized, "Unauthorized request"
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}
