package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thingful/thingful-api/internal/api/metrics"
	"github.com/thingful/thingful-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type registerRequest struct {
	FullName string `json:"full_name" validate:"required"`
	UserName string `json:"user_name" validate:"required"`
	Password string `json:"password" validate:"required"`
	Nickname string `json:"nickname"`
}

// Register creates a new account.
// @Summary Register a user
// @Accept json
// @Produce json
// @Param request body registerRequest true "new user"
// @Success 201 {object} ports.UserView
// @Router /api/users [post]
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), ports.RegisterUserInput{
		UserName: req.UserName,
		FullName: req.FullName,
		Nickname: req.Nickname,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.UsersRegisteredTotal.Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/users/%d", user.ID))
	return c.JSON(http.StatusCreated, user)
}
