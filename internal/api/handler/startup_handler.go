package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// StartupHandler handles HTTP requests for pitch listings.
type StartupHandler struct {
	service  ports.StartupService
	analyzer ports.AnalyzerService
}

func NewStartupHandler(service ports.StartupService, analyzer ports.AnalyzerService) *StartupHandler {
	return &StartupHandler{service: service, analyzer: analyzer}
}

// Create registers a new pitch listing owned by the authenticated user.
//
// @Summary      Create a startup pitch
// @Tags         startups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createStartupRequest  true  "Pitch details"
// @Success      201   {object}  domain.Startup
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Router       /api/startups [post]
func (h *StartupHandler) Create(c echo.Context) error {
	actorID, _, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req createStartupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	startup, err := h.service.Create(c.Request().Context(), ports.CreateStartupInput{
		UserID:       actorID,
		Name:         req.Name,
		Tagline:      req.Tagline,
		Description:  req.Description,
		Industry:     req.Industry,
		FundingMin:   req.FundingMin,
		FundingMax:   req.FundingMax,
		FundingStage: req.FundingStage,
		Location:     req.Location,
		Website:      req.Website,
		PitchDeck:    req.PitchDeck,
		PitchVideo:   req.PitchVideo,
		Logo:         req.Logo,
		CoverImage:   req.CoverImage,
		Tags:         req.Tags,
		TeamMembers:  toTeamMembers(req.TeamMembers),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, startup)
}

// Get returns a single pitch listing.
//
// @Summary      Get a startup pitch
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Startup id"
// @Success      200  {object}  domain.Startup
// @Failure      404  {object}  map[string]string
// @Router       /api/startups/{id} [get]
func (h *StartupHandler) Get(c echo.Context) error {
	startup, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startup)
}

// List returns pitch listings matching the query filters, newest first.
//
// @Summary      List startup pitches
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Param        industry       query     string  false  "Industry filter"
// @Param        funding_stage  query     string  false  "Funding stage filter"
// @Param        location       query     string  false  "Location filter"
// @Param        tags           query     string  false  "Comma-separated tags (any match)"
// @Param        funding_min    query     int     false  "Minimum funding sought"
// @Param        funding_max    query     int     false  "Maximum funding sought"
// @Success      200           {array}   domain.Startup
// @Router       /api/startups [get]
func (h *StartupHandler) List(c echo.Context) error {
	filter := ports.StartupFilter{
		Industry:     c.QueryParam("industry"),
		FundingStage: c.QueryParam("funding_stage"),
		Location:     c.QueryParam("location"),
	}
	if tags := c.QueryParam("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.Tags = append(filter.Tags, t)
			}
		}
	}
	if raw := c.QueryParam("funding_min"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "funding_min must be an integer")
		}
		filter.FundingMin = v
	}
	if raw := c.QueryParam("funding_max"); raw != "" {
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "funding_max must be an integer")
		}
		filter.FundingMax = v
	}

	startups, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startups)
}

// ListByOwner returns every pitch owned by one user.
//
// @Summary      List a user's startup pitches
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Owner user id"
// @Success      200     {array}   domain.Startup
// @Router       /api/users/{id}/startups [get]
func (h *StartupHandler) ListByOwner(c echo.Context) error {
	startups, err := h.service.ListByOwner(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startups)
}

// Update patches a pitch listing. Only the owner or an admin may do so.
//
// @Summary      Update a startup pitch
// @Tags         startups
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Startup id"
// @Param        body  body      updateStartupRequest  true  "Fields to update"
// @Success      200   {object}  domain.Startup
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/startups/{id} [patch]
func (h *StartupHandler) Update(c echo.Context) error {
	actorID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateStartupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	update := ports.StartupUpdate{
		Name:         req.Name,
		Tagline:      req.Tagline,
		Description:  req.Description,
		Industry:     req.Industry,
		FundingMin:   req.FundingMin,
		FundingMax:   req.FundingMax,
		FundingStage: req.FundingStage,
		Location:     req.Location,
		Website:      req.Website,
		PitchDeck:    req.PitchDeck,
		PitchVideo:   req.PitchVideo,
		Logo:         req.Logo,
		CoverImage:   req.CoverImage,
		Tags:         req.Tags,
	}
	if req.TeamMembers != nil {
		members := toTeamMembers(*req.TeamMembers)
		update.TeamMembers = &members
	}

	startup, err := h.service.Update(c.Request().Context(), c.Param("id"), actorID, role, update)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, startup)
}

// Delete removes a pitch listing along with its interests and AI feedback.
//
// @Summary      Delete a startup pitch
// @Tags         startups
// @Security     BearerAuth
// @Param        id  path  string  true  "Startup id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/startups/{id} [delete]
func (h *StartupHandler) Delete(c echo.Context) error {
	actorID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	deleted, err := h.service.Delete(c.Request().Context(), c.Param("id"), actorID, role)
	if err != nil {
		return err
	}
	if !deleted {
		return echo.NewHTTPError(http.StatusNotFound, "startup not found")
	}
	return c.NoContent(http.StatusNoContent)
}

// Analyze runs the AI pitch analysis for a startup and stores the feedback.
//
// @Summary      Analyze a startup pitch
// @Tags         startups
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Startup id"
// @Success      200  {object}  domain.PitchFeedback
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /api/startups/{id}/analyze [post]
func (h *StartupHandler) Analyze(c echo.Context) error {
	feedback, err := h.analyzer.AnalyzeStartup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedback)
}
