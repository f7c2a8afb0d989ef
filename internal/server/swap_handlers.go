package server

import (
	"skillswap/internal/models"
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createSwapRequest struct {
	RequestedID  uint   `json:"requested_id"`
	OfferedSkill string `json:"offered_skill"`
	WantedSkill  string `json:"wanted_skill"`
	Message      string `json:"message"`
}

type updateSwapRequest struct {
	Status string `json:"status"`
}

// CreateSwapRequest handles POST /api/swap-requests
// @Summary Propose a swap
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createSwapRequest true "Swap request"
// @Success 200 {object} object{success=bool,requestId=int}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /swap-requests [post]
func (s *Server) CreateSwapRequest(c *fiber.Ctx) error {
	var req createSwapRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	swap, err := s.swapService.Create(c.UserContext(), actor(c), service.CreateSwapInput{
		RequestedID:  req.RequestedID,
		OfferedSkill: req.OfferedSkill,
		WantedSkill:  req.WantedSkill,
		Message:      req.Message,
	})
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.Map{"requestId": swap.ID})
}

// ListSwapRequests handles GET /api/swap-requests
// @Summary List your swap requests
// @Description Requests you sent or received, newest first
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.SwapRequestView
// @Router /swap-requests [get]
func (s *Server) ListSwapRequests(c *fiber.Ctx) error {
	views, err := s.swapService.List(c.UserContext(), actor(c))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(views)
}

// GetSwapRequest handles GET /api/swap-requests/:id
// @Summary Get one swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Success 200 {object} models.SwapRequestView
// @Failure 404 {object} models.ErrorResponse
// @Router /swap-requests/{id} [get]
func (s *Server) GetSwapRequest(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	view, err := s.swapService.Get(c.UserContext(), actor(c), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(view)
}

// UpdateSwapRequest handles PUT /api/swap-requests/:id
// @Summary Change a swap request's status
// @Tags swaps
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Param request body updateSwapRequest true "Target status"
// @Success 200 {object} object{success=bool}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /swap-requests/{id} [put]
func (s *Server) UpdateSwapRequest(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	var req updateSwapRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	if _, err := s.swapService.Transition(c.UserContext(), actor(c), id, models.SwapStatus(req.Status)); err != nil {
		return respondError(c, err)
	}
	return success(c, nil)
}

// DeleteSwapRequest handles DELETE /api/swap-requests/:id
// @Summary Withdraw a pending swap request
// @Tags swaps
// @Produce json
// @Security BearerAuth
// @Param id path int true "Swap request ID"
// @Success 200 {object} object{success=bool}
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /swap-requests/{id} [delete]
func (s *Server) DeleteSwapRequest(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return nil
	}
	if err := s.swapService.Delete(c.UserContext(), actor(c), id); err != nil {
		return respondError(c, err)
	}
	return success(c, nil)
}
