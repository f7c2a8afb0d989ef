package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

// ProfileService reads and edits the caller's profile and serves the user
// directory.
type ProfileService struct {
	userRepo  repository.UserRepository
	skillRepo repository.SkillRepository
}

func NewProfileService(userRepo repository.UserRepository, skillRepo repository.SkillRepository) *ProfileService {
	return &ProfileService{userRepo: userRepo, skillRepo: skillRepo}
}

// UpdateProfileInput replaces all four editable fields.
type UpdateProfileInput struct {
	Name         string
	Location     string
	Availability string
	IsPublic     bool
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uint) (*models.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	skills, err := s.skillRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &models.Profile{User: *user, Skills: skills}, nil
}

func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, in UpdateProfileInput) (*models.Profile, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := validation.ValidateRequired("name", in.Name, validation.MaxNameLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength("location", in.Location, validation.MaxNameLength*2); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength("availability", in.Availability, validation.MaxNameLength*2); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if err := s.userRepo.UpdateProfile(ctx, userID, repository.ProfileUpdate{
		Name:         in.Name,
		Location:     strings.TrimSpace(in.Location),
		Availability: strings.TrimSpace(in.Availability),
		IsPublic:     in.IsPublic,
	}); err != nil {
		return nil, err
	}
	return s.GetProfile(ctx, userID)
}

// Browse lists public, non-banned users other than the viewer, optionally
// narrowed to those offering a skill matching search.
func (s *ProfileService) Browse(ctx context.Context, viewerID uint, search string) ([]models.UserSummary, error) {
	return s.userRepo.Browse(ctx, viewerID, strings.TrimSpace(search))
}
