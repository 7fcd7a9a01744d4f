package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/api/middleware"
)

// ctxActor reads the auth claims injected by the Auth middleware and
// performs a fast-fail check before any service call: both the user id and
// the role must be present, otherwise the JWT is structurally valid but
// operationally unusable and is rejected with 401.
func ctxActor(c echo.Context) (userID, role string, err error) {
	userID = middleware.UserID(c)
	role = middleware.Role(c)
	if userID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, role, nil
}
