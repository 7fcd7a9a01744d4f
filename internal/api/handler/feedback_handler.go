package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type swotRequest struct {
	Strengths     []string `json:"strengths"`
	Weaknesses    []string `json:"weaknesses"`
	Opportunities []string `json:"opportunities"`
	Threats       []string `json:"threats"`
}

type saveFeedbackRequest struct {
	StartupID    string      `json:"startup_id"    validate:"required"`
	Clarity      int         `json:"clarity"       validate:"gte=0,lte=100"`
	MarketNeed   int         `json:"market_need"   validate:"gte=0,lte=100"`
	TeamStrength int         `json:"team_strength" validate:"gte=0,lte=100"`
	OverallScore int         `json:"overall_score" validate:"gte=0,lte=100"`
	Suggestion   string      `json:"suggestion"`
	Swot         swotRequest `json:"swot_analysis"`
}

// Save stores AI feedback produced outside the server and notifies the
// startup owner. One feedback record is kept per startup; saving again
// replaces the previous scores.
//
// @Summary      Save AI pitch feedback
// @Tags         ai-feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      saveFeedbackRequest  true  "Feedback scores"
// @Success      201   {object}  domain.PitchFeedback
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/ai-feedback [post]
func (h *FeedbackHandler) Save(c echo.Context) error {
	var req saveFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	feedback, err := h.service.Save(c.Request().Context(), ports.SaveFeedbackInput{
		StartupID:    req.StartupID,
		Clarity:      req.Clarity,
		MarketNeed:   req.MarketNeed,
		TeamStrength: req.TeamStrength,
		OverallScore: req.OverallScore,
		Suggestion:   req.Suggestion,
		Swot: domain.SwotAnalysis{
			Strengths:     req.Swot.Strengths,
			Weaknesses:    req.Swot.Weaknesses,
			Opportunities: req.Swot.Opportunities,
			Threats:       req.Swot.Threats,
		},
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, feedback)
}

// GetByStartup returns the stored AI feedback for a startup.
//
// @Summary      Get AI feedback for a startup
// @Tags         ai-feedback
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Startup id"
// @Success      200        {object}  domain.PitchFeedback
// @Failure      404        {object}  map[string]string
// @Router       /api/startups/{id}/ai-feedback [get]
func (h *FeedbackHandler) GetByStartup(c echo.Context) error {
	feedback, err := h.service.GetByStartup(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, feedback)
}
