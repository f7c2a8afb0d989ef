package server

import (
	"skillswap/internal/models"

	"github.com/gofiber/fiber/v2"
)

type banRequest struct {
	IsBanned *bool `json:"is_banned"`
}

type broadcastRequest struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

// AdminListUsers handles GET /api/admin/users
// @Summary List non-admin users
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AdminUserView
// @Failure 403 {object} models.ErrorResponse
// @Router /admin/users [get]
func (s *Server) AdminListUsers(c *fiber.Ctx) error {
	users, err := s.adminService.ListUsers(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(users)
}

// AdminSetBan handles PUT /api/admin/users/:id/ban
// @Summary Ban or unban a user
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Param request body banRequest true "Ban flag"
// @Success 200 {object} object{success=bool}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /admin/users/{id}/ban [put]
func (s *Server) AdminSetBan(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var req banRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}
	if req.IsBanned == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("is_banned must be a boolean"))
	}

	if err := s.adminService.SetBanned(c.UserContext(), actor(c), id, *req.IsBanned); err != nil {
		return respondError(c, err)
	}
	return success(c, nil)
}

// AdminListSwaps handles GET /api/admin/swaps
// @Summary List every swap request
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SwapRequestView
// @Router /admin/swaps [get]
func (s *Server) AdminListSwaps(c *fiber.Ctx) error {
	views, err := s.swapService.ListAll(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// AdminCreateMessage handles POST /api/admin/messages
// @Summary Broadcast a message
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body broadcastRequest true "Message"
// @Success 200 {object} object{success=bool,messageId=int}
// @Failure 400 {object} models.ErrorResponse
// @Router /admin/messages [post]
func (s *Server) AdminCreateMessage(c *fiber.Ctx) error {
	var req broadcastRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	msg, err := s.adminService.Broadcast(c.UserContext(), req.Title, req.Message)
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.Map{"messageId": msg.ID})
}

// AdminStats handles GET /api/admin/stats
// @Summary Platform totals
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.PlatformStats
// @Failure 500 {object} models.ErrorResponse
// @Router /admin/stats [get]
func (s *Server) AdminStats(c *fiber.Ctx) error {
	stats, err := s.adminService.Stats(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(stats)
}
