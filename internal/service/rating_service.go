package service

import (
	"context"
	"fmt"

	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// RatingService records feedback between the two parties of a finished swap.
type RatingService struct {
	swapRepo   repository.SwapRepository
	ratingRepo repository.RatingRepository
}

func NewRatingService(swapRepo repository.SwapRepository, ratingRepo repository.RatingRepository) *RatingService {
	return &RatingService{swapRepo: swapRepo, ratingRepo: ratingRepo}
}

type SubmitRatingInput struct {
	SwapID   uint
	RatedID  uint
	Rating   int
	Feedback string
}

// Submit stores a rating from the actor about the other participant of a
// completed swap. Repeat ratings of the same swap are accepted.
func (s *RatingService) Submit(ctx context.Context, actor Actor, in SubmitRatingInput) (*models.Rating, error) {
	if in.SwapID == 0 {
		return nil, models.NewValidationError("swap_id is required")
	}
	if in.Rating < models.MinRating || in.Rating > models.MaxRating {
		return nil, models.NewValidationError(
			fmt.Sprintf("Rating must be between %d and %d", models.MinRating, models.MaxRating))
	}
	if err := validation.ValidateLength("feedback", in.Feedback, validation.MaxTextLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Outsiders see the same 404 as a missing swap.
	swap, err := s.swapRepo.GetByID(ctx, in.SwapID)
	if err != nil {
		if isNotFound(err) {
			return nil, swapNotFound(err)
		}
		return nil, err
	}
	if !swap.IsParticipant(actor.UserID) {
		return nil, swapNotFound(nil)
	}
	if in.RatedID != swap.Counterparty(actor.UserID) {
		return nil, models.NewValidationError("rated_id must be the other participant of the swap")
	}
	if swap.Status != models.SwapStatusCompleted {
		return nil, models.NewStateConflictError("Only completed swaps can be rated")
	}

	rating := &models.Rating{
		SwapID:   swap.ID,
		RaterID:  actor.UserID,
		RatedID:  in.RatedID,
		Score:    in.Rating,
		Feedback: in.Feedback,
	}
	if err := s.ratingRepo.Create(ctx, rating); err != nil {
		return nil, err
	}

	observability.RatingsSubmitted.Inc()
	return rating, nil
}
