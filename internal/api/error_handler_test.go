package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/thingful/thingful-api/internal/core/domain"
)

func renderError(t *testing.T, err error) (int, string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(zerolog.Nop())(err, c)
	return rec.Code, strings.TrimSpace(rec.Body.String())
}

func TestErrorHandler_DomainMappings(t *testing.T) {
	cases := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"user exists", domain.ErrUserExists, http.StatusBadRequest, `{"error":"Username already taken"}`},
		{"bad login", domain.ErrInvalidCredentials, http.StatusBadRequest, `{"error":"Incorrect user_name or password"}`},
		{"thing missing", domain.ErrThingNotFound, http.StatusNotFound, `{"error":"Thing doesn't exist"}`},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized, `{"error":"Unauthorized request"}`},
		{"expired token", domain.ErrExpiredToken, http.StatusUnauthorized, `{"error":"Unauthorized request"}`},
		{"validation", domain.NewValidationError("Missing 'full_name' in request body"), http.StatusBadRequest, `{"error":"Missing 'full_name' in request body"}`},
		{"http error", echo.NewHTTPError(http.StatusUnauthorized, "Missing bearer token"), http.StatusUnauthorized, `{"error":"Missing bearer token"}`},
		{"unexpected", errors.New("pq: connection reset"), http.StatusInternalServerError, `{"error":"internal server error"}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			code, body := renderError(t, tc.err)
			if code != tc.wantCode {
				t.Fatalf("expected status %d, got %d", tc.wantCode, code)
			}
			if body != tc.wantBody {
				t.Fatalf("expected body %s, got %s", tc.wantBody, body)
			}
		})
	}
}

func TestErrorHandler_WrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("get thing"), domain.ErrThingNotFound)

	code, body := renderError(t, wrapped)
	if code != http.StatusNotFound {
		t.Fatalf("wrapped sentinel not unwrapped, got status %d", code)
	}
	if body != `{"error":"Thing doesn't exist"}` {
		t.Fatalf("unexpected body: %s", body)
	}
}
