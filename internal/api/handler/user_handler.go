package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/pitchbridge/pitchbridge-api/internal/core/domain"
	"github.com/pitchbridge/pitchbridge-api/internal/core/ports"
)

type UserHandler struct {
	users ports.UserService
}

func NewUserHandler(users ports.UserService) *UserHandler {
	return &UserHandler{users: users}
}

type updateUserRequest struct {
	FullName     *string   `json:"full_name"`
	Email        *string   `json:"email" validate:"omitempty,email"`
	Bio          *string   `json:"bio"`
	Location     *string   `json:"location"`
	ProfileImage *string   `json:"profile_image"`
	Interests    *[]string `json:"interests"`
	Expertise    *[]string `json:"expertise"`
}

// Get returns a user profile.
//
// @Summary      Get a user profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  map[string]string
// @Router       /api/users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	user, err := h.users.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// Update patches a user profile. Only the profile owner or an admin may do so.
//
// @Summary      Update a user profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c echo.Context) error {
	actorID, role, err := ctxActor(c)
	if err != nil {
		return err
	}
	id := c.Param("id")
	if actorID != id && role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.users.Update(c.Request().Context(), id, ports.UserUpdate{
		FullName:     req.FullName,
		Email:        req.Email,
		Bio:          req.Bio,
		Location:     req.Location,
		ProfileImage: req.ProfileImage,
		Interests:    req.Interests,
		Expertise:    req.Expertise,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}
