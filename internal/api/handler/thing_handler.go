package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/thingful/thingful-api/internal/core/domain"
	"github.com/thingful/thingful-api/internal/core/ports"
)

type ThingHandler struct {
	things ports.ThingService
}

func NewThingHandler(things ports.ThingService) *ThingHandler {
	return &ThingHandler{things: things}
}

// List returns every thing with its owner and review statistics.
// @Summary List things
// @Produce json
// @Success 200 {array} ports.ThingView
// @Router /api/things [get]
func (h *ThingHandler) List(c echo.Context) error {
	things, err := h.things.ListThings(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, things)
}

// Get returns a single thing by id.
// @Summary Get a thing
// @Produce json
// @Param thing_id path int true "thing id"
// @Success 200 {object} ports.ThingView
// @Router /api/things/{thing_id} [get]
func (h *ThingHandler) Get(c echo.Context) error {
	id, err := thingID(c)
	if err != nil {
		return err
	}

	thing, err := h.things.GetThing(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, thing)
}

// ListReviews returns the reviews posted for a thing.
// @Summary List reviews for a thing
// @Produce json
// @Param thing_id path int true "thing id"
// @Success 200 {array} ports.ReviewView
// @Router /api/things/{thing_id}/reviews [get]
func (h *ThingHandler) ListReviews(c echo.Context) error {
	id, err := thingID(c)
	if err != nil {
		return err
	}

	reviews, err := h.things.ListThingReviews(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, reviews)
}

// thingID parses the :thing_id path param. A non-numeric id can never match
// a row, so it reports the same not-found error a missing row does.
func thingID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("thing_id"), 10, 64)
	if err != nil {
		return 0, domain.ErrThingNotFound
	}
	return id, nil
}
