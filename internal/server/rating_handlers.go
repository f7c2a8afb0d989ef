package server

import (
	"skillswap/internal/service"

	"github.com/gofiber/fiber/v2"
)

type createRatingRequest struct {
	SwapID   uint   `json:"swap_id"`
	RatedID  uint   `json:"rated_id"`
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback"`
}

// CreateRating handles POST /api/ratings
// @Summary Rate the other party of a completed swap
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createRatingRequest true "Rating"
// @Success 200 {object} object{success=bool,ratingId=int}
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /ratings [post]
func (s *Server) CreateRating(c *fiber.Ctx) error {
	var req createRatingRequest
	if err := parseBody(c, &req); err != nil {
		return nil
	}

	rating, err := s.ratingService.Submit(c.UserContext(), actor(c), service.SubmitRatingInput{
		SwapID:   req.SwapID,
		RatedID:  req.RatedID,
		Rating:   req.Rating,
		Feedback: req.Feedback,
	})
	if err != nil {
		return respondError(c, err)
	}
	return success(c, fiber.Map{"ratingId": rating.ID})
}
