package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
	"skillswap/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

const swapNotFoundMessage = "Swap request not found or not authorized"

// SwapService runs the swap request lifecycle.
type SwapService struct {
	swapRepo   repository.SwapRepository
	userRepo   repository.UserRepository
	ratingRepo repository.RatingRepository
	policy     TransitionPolicy
	now        func() time.Time
}

func NewSwapService(
	swapRepo repository.SwapRepository,
	userRepo repository.UserRepository,
	ratingRepo repository.RatingRepository,
	policy TransitionPolicy,
) *SwapService {
	return &SwapService{
		swapRepo:   swapRepo,
		userRepo:   userRepo,
		ratingRepo: ratingRepo,
		policy:     policy,
		now:        time.Now,
	}
}

type CreateSwapInput struct {
	RequestedID  uint
	OfferedSkill string
	WantedSkill  string
	Message      string
}

// Create opens a pending request from the actor to another existing user.
func (s *SwapService) Create(ctx context.Context, actor Actor, in CreateSwapInput) (_ *models.SwapRequest, err error) {
	ctx, end := observability.StartSpan(ctx, "SwapService.Create",
		attribute.Int64("swap.requester_id", int64(actor.UserID)),
		attribute.Int64("swap.requested_id", int64(in.RequestedID)),
	)
	defer func() { end(err) }()

	in.OfferedSkill = strings.TrimSpace(in.OfferedSkill)
	in.WantedSkill = strings.TrimSpace(in.WantedSkill)

	if in.RequestedID == 0 {
		return nil, models.NewValidationError("requested_id is required")
	}
	if in.RequestedID == actor.UserID {
		return nil, models.NewValidationError("Cannot request a swap with yourself")
	}
	if err := validation.ValidateRequired("offered_skill", in.OfferedSkill, validation.MaxSkillNameLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateRequired("wanted_skill", in.WantedSkill, validation.MaxSkillNameLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength("message", in.Message, validation.MaxTextLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if _, err := s.userRepo.GetByID(ctx, in.RequestedID); err != nil {
		return nil, err
	}

	now := s.timestamp()
	swap := &models.SwapRequest{
		RequesterID:  actor.UserID,
		RequestedID:  in.RequestedID,
		OfferedSkill: in.OfferedSkill,
		WantedSkill:  in.WantedSkill,
		Message:      in.Message,
		Status:       models.SwapStatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.swapRepo.Create(ctx, swap); err != nil {
		return nil, err
	}

	observability.SwapRequestsCreated.Inc()
	middleware.Logger.InfoContext(ctx, "swap request created",
		"swap_id", swap.ID, "requester_id", swap.RequesterID, "requested_id", swap.RequestedID)
	return swap, nil
}

// Transition moves a request to status on behalf of one of its participants.
func (s *SwapService) Transition(ctx context.Context, actor Actor, id uint, status models.SwapStatus) (_ *models.SwapRequest, err error) {
	ctx, end := observability.StartSpan(ctx, "SwapService.Transition",
		attribute.Int64("swap.id", int64(id)),
		attribute.String("swap.to", string(status)),
	)
	defer func() { end(err) }()

	if !status.IsTransitionTarget() {
		return nil, models.NewValidationError("Invalid status")
	}

	swap, err := s.participantSwap(ctx, actor, id)
	if err != nil {
		return nil, err
	}

	role := RoleRequested
	if swap.RequesterID == actor.UserID {
		role = RoleRequester
	}
	from := swap.Status
	if !s.policy.Allows(from, status, role) {
		return nil, models.NewInvalidTransitionError(string(from), string(status))
	}

	updatedAt := s.timestamp()
	if !updatedAt.After(swap.UpdatedAt) {
		updatedAt = swap.UpdatedAt.Add(time.Millisecond)
	}

	ok, err := s.swapRepo.CompareAndSetStatus(ctx, id, from, status, updatedAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, models.NewStateConflictError("Swap request was modified concurrently")
	}

	observability.SwapTransitions.WithLabelValues(string(from), string(status)).Inc()
	middleware.Logger.InfoContext(ctx, "swap request transitioned",
		"swap_id", id, "from", from, "to", status, "role", role)

	swap.Status = status
	swap.UpdatedAt = updatedAt
	return swap, nil
}

// Delete withdraws a request. Only the requester may do so and only while it
// is still pending.
func (s *SwapService) Delete(ctx context.Context, actor Actor, id uint) error {
	swap, err := s.swapRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return swapNotFound(err)
		}
		return err
	}
	if swap.RequesterID != actor.UserID {
		return swapNotFound(nil)
	}
	if swap.Status != models.SwapStatusPending {
		return models.NewStateConflictError("Only pending swap requests can be deleted")
	}

	deleted, err := s.swapRepo.DeletePending(ctx, id, actor.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewStateConflictError("Only pending swap requests can be deleted")
	}
	return nil
}

// List returns every request the actor takes part in, newest first.
func (s *SwapService) List(ctx context.Context, actor Actor) ([]models.SwapRequestView, error) {
	views, err := s.swapRepo.ListForUser(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	if err := s.attachRatings(ctx, views, actor.UserID); err != nil {
		return nil, err
	}
	return views, nil
}

// Get returns one enriched request to a participant.
func (s *SwapService) Get(ctx context.Context, actor Actor, id uint) (*models.SwapRequestView, error) {
	view, err := s.swapRepo.GetView(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, swapNotFound(err)
		}
		return nil, err
	}
	if !view.IsParticipant(actor.UserID) {
		return nil, swapNotFound(nil)
	}

	views := []models.SwapRequestView{*view}
	if err := s.attachRatings(ctx, views, actor.UserID); err != nil {
		return nil, err
	}
	return &views[0], nil
}

// ListAll is the moderation view over every request.
func (s *SwapService) ListAll(ctx context.Context) ([]models.SwapRequestView, error) {
	views, err := s.swapRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.attachRatings(ctx, views, 0); err != nil {
		return nil, err
	}
	return views, nil
}

func (s *SwapService) participantSwap(ctx context.Context, actor Actor, id uint) (*models.SwapRequest, error) {
	swap, err := s.swapRepo.GetByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, swapNotFound(err)
		}
		return nil, err
	}
	if !swap.IsParticipant(actor.UserID) {
		return nil, swapNotFound(nil)
	}
	return swap, nil
}

// attachRatings fills Ratings on every view and sets Rated when viewerID
// has rated that swap.
func (s *SwapService) attachRatings(ctx context.Context, views []models.SwapRequestView, viewerID uint) error {
	if len(views) == 0 {
		return nil
	}

	ids := make([]uint, len(views))
	for i := range views {
		ids[i] = views[i].ID
	}
	ratings, err := s.ratingRepo.ListBySwapIDs(ctx, ids)
	if err != nil {
		return err
	}

	bySwap := make(map[uint][]models.Rating, len(views))
	for _, r := range ratings {
		bySwap[r.SwapID] = append(bySwap[r.SwapID], r)
	}
	for i := range views {
		views[i].Ratings = []models.Rating{}
		if rs, ok := bySwap[views[i].ID]; ok {
			views[i].Ratings = rs
		}
		for _, r := range views[i].Ratings {
			if viewerID != 0 && r.RaterID == viewerID {
				views[i].Rated = true
				break
			}
		}
	}
	return nil
}

// timestamp truncates to the microsecond precision postgres keeps.
func (s *SwapService) timestamp() time.Time {
	return s.now().UTC().Truncate(time.Microsecond)
}

// swapNotFound hides whether a request exists from non-participants.
func swapNotFound(err error) *models.AppError {
	return &models.AppError{Code: models.CodeNotFound, Message: swapNotFoundMessage, Err: err}
}

func isNotFound(err error) bool {
	var appErr *models.AppError
	return errors.As(err, &appErr) && appErr.Code == models.CodeNotFound
}
