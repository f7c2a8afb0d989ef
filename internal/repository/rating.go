package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// RatingRepository defines persistence operations for ratings.
type RatingRepository interface {
	Create(ctx context.Context, rating *models.Rating) error
	ListBySwapIDs(ctx context.Context, swapIDs []uint) ([]models.Rating, error)
}

type ratingRepository struct {
	db *gorm.DB
}

// NewRatingRepository returns a new RatingRepository implementation.
func NewRatingRepository(db *gorm.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	if err := r.db.WithContext(ctx).Omit("Swap").Create(rating).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *ratingRepository) ListBySwapIDs(ctx context.Context, swapIDs []uint) ([]models.Rating, error) {
	ratings := []models.Rating{}
	if len(swapIDs) == 0 {
		return ratings, nil
	}
	if err := r.db.WithContext(ctx).
		Where("swap_id IN ?", swapIDs).
		Order("id").
		Find(&ratings).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return ratings, nil
}
