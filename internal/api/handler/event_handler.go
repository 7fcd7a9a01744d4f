package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type EventHandler struct {
	service ports.EventService
}

func NewEventHandler(service ports.EventService) *EventHandler {
	return &EventHandler{service: service}
}

type createEventRequest struct {
	Title       string    `json:"title"        validate:"required"`
	Description string    `json:"description"`
	EventDate   time.Time `json:"event_date"   validate:"required"`
	Duration    int       `json:"duration"     validate:"gte=0"`
	MeetingLink string    `json:"meeting_link"`
}

// Create schedules a platform event.
//
// @Summary      Create an event
// @Tags         events
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createEventRequest  true  "Event details"
// @Success      201   {object}  domain.Event
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/events [post]
func (h *EventHandler) Create(c echo.Context) error {
	var req createEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	event, err := h.service.Create(c.Request().Context(), ports.CreateEventInput{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.EventDate,
		Duration:    req.Duration,
		MeetingLink: req.MeetingLink,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, event)
}

// Get returns one event.
//
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Event id"
// @Success      200  {object}  domain.Event
// @Failure      404  {object}  map[string]string
// @Router       /api/events/{id} [get]
func (h *EventHandler) Get(c echo.Context) error {
	event, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, event)
}

// List returns events in chronological order. With ?upcoming=true only
// events strictly in the future are returned.
//
// @Summary      List events
// @Tags         events
// @Produce      json
// @Security     BearerAuth
// @Param        upcoming  query     bool  false  "Only future events"
// @Success      200       {array}   domain.Event
// @Router       /api/events [get]
func (h *EventHandler) List(c echo.Context) error {
	upcoming := c.QueryParam("upcoming") == "true"
	events, err := h.service.List(c.Request().Context(), upcoming)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, events)
}
