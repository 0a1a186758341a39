package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thingful/thingful-api/internal/core/ports"
)

type AuthHandler struct {
	auth ports.AuthService
}

func NewAuthHandler(auth ports.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

type loginRequest struct {
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	AuthToken string `json:"authToken"`
}

// Login exchanges a user_name/password pair for a signed bearer token.
// @Summary Log in
// @Accept json
// @Produce json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} loginResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	token, err := h.auth.Login(c.Request().Context(), req.UserName, req.Password)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, loginResponse{AuthToken: token})
}
