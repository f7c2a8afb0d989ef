package service

import (
	"context"
	"strings"

	"skillswap/internal/models"
	"skillswap/internal/repository"
	"skillswap/internal/validation"
)

type SkillService struct {
	skillRepo repository.SkillRepository
}

func NewSkillService(skillRepo repository.SkillRepository) *SkillService {
	return &SkillService{skillRepo: skillRepo}
}

type AddSkillInput struct {
	SkillName   string
	SkillType   models.SkillType
	Description string
	Level       models.SkillLevel
}

// AddSkill creates a skill entry owned by userID.
func (s *SkillService) AddSkill(ctx context.Context, userID uint, in AddSkillInput) (*models.SkillEntry, error) {
	in.SkillName = strings.TrimSpace(in.SkillName)
	if err := validation.ValidateSkill(in.SkillName, in.SkillType, in.Level); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength("description", in.Description, validation.MaxTextLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	skill := &models.SkillEntry{
		UserID:      userID,
		SkillName:   in.SkillName,
		SkillType:   in.SkillType,
		Description: strings.TrimSpace(in.Description),
		Level:       in.Level,
	}
	if err := s.skillRepo.Create(ctx, skill); err != nil {
		return nil, err
	}
	return skill, nil
}

// DeleteSkill removes one of the caller's own entries. Someone else's entry
// is indistinguishable from a missing one.
func (s *SkillService) DeleteSkill(ctx context.Context, userID, skillID uint) error {
	deleted, err := s.skillRepo.DeleteOwned(ctx, skillID, userID)
	if err != nil {
		return err
	}
	if !deleted {
		return models.NewNotFoundError("Skill", skillID)
	}
	return nil
}
