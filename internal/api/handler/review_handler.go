package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thingful/thingful-api/internal/api/metrics"
	"github.com/thingful/thingful-api/internal/core/ports"
)

type ReviewHandler struct {
	reviews ports.ReviewService
}

func NewReviewHandler(reviews ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

type createReviewRequest struct {
	ThingID int64  `json:"thing_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Text    string `json:"text" validate:"required"`
}

// Create posts a review. The author is always the authenticated principal.
// @Summary Post a review
// @Accept json
// @Produce json
// @Param request body createReviewRequest true "new review"
// @Success 201 {object} ports.ReviewView
// @Router /api/reviews [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.reviews.Create(c.Request().Context(), ports.CreateReviewInput{
		ThingID: req.ThingID,
		Rating:  req.Rating,
		Text:    req.Text,
		UserID:  principal.UserID,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	c.Response().Header().Set(echo.HeaderLocation, fmt.Sprintf("/api/reviews/%d", review.ID))
	return c.JSON(http.StatusCreated, review)
}
