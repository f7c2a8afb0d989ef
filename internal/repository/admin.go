package repository

import (
	"context"

	"skillswap/internal/models"

	"gorm.io/gorm"
)

// AdminRepository covers broadcast messages and the dashboard counters.
type AdminRepository interface {
	CreateMessage(ctx context.Context, msg *models.AdminMessage) error
	CountNonAdminUsers(ctx context.Context) (int64, error)
	CountSwaps(ctx context.Context) (int64, error)
	CountSkills(ctx context.Context) (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository returns a new AdminRepository implementation.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateMessage(ctx context.Context, msg *models.AdminMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

// CountNonAdminUsers counts banned users too.
func (r *adminRepository) CountNonAdminUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.User{}, "is_admin = ?", false)
}

func (r *adminRepository) CountSwaps(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.SwapRequest{})
}

func (r *adminRepository) CountSkills(ctx context.Context) (int64, error) {
	return r.count(ctx, &models.SkillEntry{})
}

func (r *adminRepository) count(ctx context.Context, model interface{}, where ...interface{}) (int64, error) {
	var n int64
	q := r.db.WithContext(ctx).Model(model)
	if len(where) > 0 {
		q = q.Where(where[0], where[1:]...)
	}
	if err := q.Count(&n).Error; err != nil {
		return 0, models.NewInternalError(err)
	}
	return n, nil
}
