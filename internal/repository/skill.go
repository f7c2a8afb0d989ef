package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// SkillRepository defines persistence operations for skill entries.
type SkillRepository interface {
	Create(ctx context.Context, skill *models.SkillEntry) error
	ListByUser(ctx context.Context, userID uint) ([]models.SkillEntry, error)
	DeleteOwned(ctx context.Context, id, userID uint) (bool, error)
}

type skillRepository struct {
	db *gorm.DB
}

// NewSkillRepository returns a new SkillRepository implementation.
func NewSkillRepository(db *gorm.DB) SkillRepository {
	return &skillRepository{db: db}
}

func (r *skillRepository) Create(ctx context.Context, skill *models.SkillEntry) error {
	if err := r.db.WithContext(ctx).Create(skill).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *skillRepository) ListByUser(ctx context.Context, userID uint) ([]models.SkillEntry, error) {
	skills := []models.SkillEntry{}
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return skills, nil
}

// DeleteOwned removes the entry only when userID owns it and reports whether
// a row was deleted.
func (r *skillRepository) DeleteOwned(ctx context.Context, id, userID uint) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SkillEntry{})
	if result.Error != nil {
		return false, models.NewInternalError(result.Error)
	}
	return result.RowsAffected > 0, nil
}
