// Package bootstrap wires the process runtime: database, Redis, the root
// admin account and optional demo data.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skillswap/internal/cache"
	"skillswap/internal/config"
	"skillswap/internal/database"
	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/seed"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemo bool
}

// InitRuntime connects to DB and Redis, ensures the root admin and
// optionally seeds the demo accounts. The Redis client is nil when Redis is
// unreachable.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	// Init Redis (may result in nil client if unreachable)
	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := EnsureRootAdmin(ctx, cfg, db); err != nil {
		return nil, nil, fmt.Errorf("failed to bootstrap root admin: %w", err)
	}

	if opts.SeedDemo {
		created, err := seed.Demo(ctx, db)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
		middleware.Logger.InfoContext(ctx, "demo data ensured", "created_users", created)
	}

	return db, r, nil
}

// EnsureRootAdmin creates the configured root admin, or re-grants the admin
// flag when the account already exists. An existing password is never
// overwritten. Without ROOT_ADMIN_PASSWORD nothing happens.
func EnsureRootAdmin(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil {
		return nil
	}
	if cfg.RootAdminPassword == "" {
		middleware.Logger.WarnContext(ctx, "ROOT_ADMIN_PASSWORD not set, skipping root admin bootstrap")
		return nil
	}

	username := strings.TrimSpace(cfg.RootAdminUsername)
	if username == "" {
		username = "admin"
	}
	email := strings.TrimSpace(strings.ToLower(cfg.RootAdminEmail))
	if email == "" {
		email = "admin@skillswap.com"
	}

	var created, regranted bool
	var rootID uint
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var root models.User
		findErr := tx.Where("username = ?", username).First(&root).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.RootAdminPassword), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash root password: %w", err)
			}
			root = models.User{
				Username: username,
				Email:    email,
				Password: string(hashed),
				Name:     "Administrator",
				IsAdmin:  true,
			}
			created = true
			return tx.Create(&root).Error
		case findErr != nil:
			return findErr
		case root.IsAdmin && !root.IsBanned:
			return nil
		default:
			regranted, rootID = true, root.ID
			return tx.Model(&models.User{}).Where("id = ?", root.ID).
				Updates(map[string]any{"is_admin": true, "is_banned": false}).Error
		}
	})
	if err != nil {
		return err
	}
	if regranted {
		cache.InvalidateUser(ctx, rootID)
	}

	middleware.Logger.InfoContext(ctx, "root admin ensured", "username", username, "created", created)
	return nil
}
