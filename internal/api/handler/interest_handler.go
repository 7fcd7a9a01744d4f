package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type InterestHandler struct {
	service ports.InterestService
}

func NewInterestHandler(service ports.InterestService) *InterestHandler {
	return &InterestHandler{service: service}
}

type createInterestRequest struct {
	StartupID string `json:"startup_id" validate:"required"`
	Notes     string `json:"notes"`
	Feedback  string `json:"feedback"`
}

type updateInterestRequest struct {
	Notes    *string `json:"notes"`
	Feedback *string `json:"feedback"`
	Status   *string `json:"status" validate:"omitempty,oneof=pending accepted rejected"`
}

// Create registers the authenticated investor's interest in a startup and
// notifies the startup owner.
//
// @Summary      Register interest in a startup
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createInterestRequest  true  "Interest details"
// @Success      201   {object}  domain.Interest
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/interests [post]
func (h *InterestHandler) Create(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createInterestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	interest, err := h.service.Create(c.Request().Context(), ports.CreateInterestInput{
		InvestorID: actorID,
		StartupID:  req.StartupID,
		Notes:      req.Notes,
		Feedback:   req.Feedback,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, interest)
}

// ListByInvestor returns an investor's interests, newest first.
//
// @Summary      List interests of an investor
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Investor user id"
// @Success      200         {array}   domain.Interest
// @Router       /api/investors/{id}/interests [get]
func (h *InterestHandler) ListByInvestor(c echo.Context) error {
	interests, err := h.service.ListByInvestor(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interests)
}

// ListByStartup returns the interests registered against a startup.
//
// @Summary      List interests in a startup
// @Tags         interests
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Startup id"
// @Success      200        {array}   domain.Interest
// @Router       /api/startups/{id}/interests [get]
func (h *InterestHandler) ListByStartup(c echo.Context) error {
	interests, err := h.service.ListByStartup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interests)
}

// Update patches an interest's notes, feedback or status.
//
// @Summary      Update an interest
// @Tags         interests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Interest id"
// @Param        body  body      updateInterestRequest  true  "Fields to update"
// @Success      200   {object}  domain.Interest
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /api/interests/{id} [patch]
func (h *InterestHandler) Update(c echo.Context) error {
	var req updateInterestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	update := ports.InterestUpdate{
		Notes:    req.Notes,
		Feedback: req.Feedback,
	}
	if req.Status != nil {
		status := domain.InterestStatus(*req.Status)
		update.Status = &status
	}

	actorID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	interest, err := h.service.Update(c.Request().Context(), c.Param("id"), actorID, role, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, interest)
}

// Delete withdraws an interest.
//
// @Summary      Withdraw an interest
// @Tags         interests
// @Security     BearerAuth
// @Param        id  path  string  true  "Interest id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/interests/{id} [delete]
func (h *InterestHandler) Delete(c echo.Context) error {
	actorID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"), actorID, role)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "interest not found")
	}
	return c.NoContent(http.StatusNoContent)
}
