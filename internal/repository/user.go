// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"gorm.io/gorm"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) error
	SetBanned(ctx context.Context, id uint, banned bool) error
	SetAdmin(ctx context.Context, id uint, admin bool) error
	Browse(ctx context.Context, viewerID uint, search string) ([]models.UserSummary, error)
	ListNonAdmin(ctx context.Context) ([]models.AdminUserView, error)
	ListAdmins(ctx context.Context) ([]models.User, error)
}

// ProfileUpdate is the full set of self-editable profile fields.
type ProfileUpdate struct {
	Name         string
	Location     string
	Availability string
	IsPublic     bool
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new UserRepository implementation.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// GetByID reads through the Redis user cache. Cached copies never carry the
// password hash.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	key := cache.UserKey(id)

	err := cache.Aside(ctx, key, &user, cache.UserTTL, func() error {
		if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("User", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByUsername returns (nil, nil) when no such user exists.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewConflictError("Username or email already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}

func (r *userRepository) UpdateProfile(ctx context.Context, id uint, update ProfileUpdate) error {
	return r.updateColumns(ctx, id, map[string]interface{}{
		"name":         update.Name,
		"location":     update.Location,
		"availability": update.Availability,
		"is_public":    update.IsPublic,
	})
}

func (r *userRepository) SetBanned(ctx context.Context, id uint, banned bool) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"is_banned": banned})
}

func (r *userRepository) SetAdmin(ctx context.Context, id uint, admin bool) error {
	return r.updateColumns(ctx, id, map[string]interface{}{"is_admin": admin})
}

func (r *userRepository) updateColumns(ctx context.Context, id uint, columns map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(columns)
	if result.Error != nil {
		return models.NewInternalError(result.Error)
	}
	if result.RowsAffected == 0 {
		return models.NewNotFoundError("User", id)
	}
	cache.InvalidateUser(ctx, id)
	return nil
}

// Browse lists public, non-banned users other than viewerID. With a search
// term only users offering a skill whose name contains it are returned, and
// each row lists just the matching offered skills.
func (r *userRepository) Browse(ctx context.Context, viewerID uint, search string) ([]models.UserSummary, error) {
	db := r.db.WithContext(ctx)
	pattern := "%" + strings.ToLower(search) + "%"

	offered := func(q *gorm.DB) *gorm.DB {
		q = q.Where("skills.skill_type = ?", models.SkillTypeOffered)
		if search != "" {
			q = q.Where("LOWER(skills.skill_name) LIKE ?", pattern)
		}
		return q
	}

	var users []models.User
	q := db.Model(&models.User{}).
		Where("is_public = ? AND is_banned = ? AND id <> ?", true, false, viewerID)
	if search != "" {
		q = q.Where("EXISTS (?)", offered(db.Model(&models.SkillEntry{}).
			Select("1").
			Where("skills.user_id = users.id")))
	}
	if err := q.Order("users.id").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if len(users) == 0 {
		return []models.UserSummary{}, nil
	}

	ids := make([]uint, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}

	var skills []models.SkillEntry
	if err := offered(db.Model(&models.SkillEntry{}).Where("skills.user_id IN ?", ids)).
		Order("skills.id").
		Find(&skills).Error; err != nil {
		return nil, models.NewInternalError(err)
	}

	names := make(map[uint][]string, len(users))
	for _, s := range skills {
		names[s.UserID] = append(names[s.UserID], s.SkillName)
	}

	out := make([]models.UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, models.UserSummary{
			ID:           u.ID,
			Username:     u.Username,
			Name:         u.Name,
			Location:     u.Location,
			Availability: u.Availability,
			Skills:       strings.Join(names[u.ID], ","),
		})
	}
	return out, nil
}

func (r *userRepository) ListNonAdmin(ctx context.Context) ([]models.AdminUserView, error) {
	var users []models.AdminUserView
	if err := r.db.WithContext(ctx).Model(&models.User{}).
		Select("id, username, email, name, location, is_public, is_banned, created_at").
		Where("is_admin = ?", false).
		Order("id").
		Scan(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	if users == nil {
		users = []models.AdminUserView{}
	}
	return users, nil
}

func (r *userRepository) ListAdmins(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := r.db.WithContext(ctx).Where("is_admin = ?", true).Order("id").Find(&users).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return users, nil
}
