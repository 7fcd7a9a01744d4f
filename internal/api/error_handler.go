package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error  string   `json:"error"`
	Fields []string `json:"fields,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, resp := resolveError(err, log, c)
		_ = c.JSON(code, resp)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	// Request validation errors → 400 with the offending fields.
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		fields := make([]string, 0, len(ve))
		for _, fe := range ve {
			fields = append(fields, fe.Field())
		}
		return http.StatusBadRequest, errorResponse{Error: "validation failed", Fields: fields}
	}

	// Upstream analysis failures → 502.
	var pe *ports.AnalysisParseError
	if errors.As(err, &pe) {
		log.Error().Err(err).Msg("analysis response unparseable")
		return http.StatusBadGateway, errorResponse{Error: "analysis service returned an unusable response"}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Error: "user not found"}
	case errors.Is(err, domain.ErrStartupNotFound):
		return http.StatusNotFound, errorResponse{Error: "startup not found"}
	case errors.Is(err, domain.ErrInterestNotFound):
		return http.StatusNotFound, errorResponse{Error: "interest not found"}
	case errors.Is(err, domain.ErrEventNotFound):
		return http.StatusNotFound, errorResponse{Error: "event not found"}
	case errors.Is(err, domain.ErrFeedbackNotFound):
		return http.StatusNotFound, errorResponse{Error: "ai feedback not found"}
	case errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound, errorResponse{Error: "notification not found"}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Error: "user already exists"}
	case errors.Is(err, domain.ErrInterestExists):
		return http.StatusConflict, errorResponse{Error: "interest already registered for this startup"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Error: "invalid credentials"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Error: "access forbidden"}
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusUnprocessableEntity, errorResponse{Error: err.Error()}
	case errors.Is(err, domain.ErrInvalidFundingRange):
		return http.StatusBadRequest, errorResponse{Error: err.Error()}
	case errors.Is(err, ports.ErrUpstream):
		log.Error().Err(err).Msg("analysis upstream unavailable")
		return http.StatusBadGateway, errorResponse{Error: "analysis service unavailable"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Error: "internal server error"}
}
