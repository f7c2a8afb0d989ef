package server

import (
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type updateProfileRequest struct {
	Name         string `json:"name"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	IsPublic     bool   `json:"is_public"`
}

// GetProfile handles GET /api/profile
// @Summary Get own profile
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Profile
// @Router /profile [get]
func (s *Server) GetProfile(c *fiber.Ctx) error {
	profile, err := s.profileService.GetProfile(c.UserContext(), actor(c).UserID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(profile)
}

// UpdateProfile handles PUT /api/profile. All four fields are replaced.
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body updateProfileRequest true "Profile"
// @Success 200 {object} object{success=bool}
// @Failure 400 {object} models.ErrorResponse
// @Router /profile [put]
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	var req updateProfileRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	if _, err := s.profileService.UpdateProfile(c.UserContext(), actor(c).UserID, service.UpdateProfileInput{
		Name:         req.Name,
		Location:     req.Location,
		Availability: req.Availability,
		IsPublic:     req.IsPublic,
	}); err != nil {
		return respondError(c, err)
	}
	return success(c, nil)
}

// BrowseUsers handles GET /api/users?search=
// @Summary Browse public users
// @Description Public, non-banned users other than the caller, optionally filtered by offered skill
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param search query string false "Offered skill substring"
// @Success 200 {array} models.UserSummary
// @Router /users [get]
func (s *Server) BrowseUsers(c *fiber.Ctx) error {
	users, err := s.profileService.Browse(c.UserContext(), actor(c).UserID, c.Query("search"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}
