package service

import (
	"context"
	"strings"

	"skillswap/internal/middleware"
	"skillswap/internal/models"
	"skillswap/internal/observability"
	"skillswap/internal/repository"
	"skillswap/internal/validation"

	"golang.org/x/sync/errgroup"
)

// AdminService backs the moderation surface and the operator CLI.
type AdminService struct {
	userRepo  repository.UserRepository
	adminRepo repository.AdminRepository
}

func NewAdminService(userRepo repository.UserRepository, adminRepo repository.AdminRepository) *AdminService {
	return &AdminService{userRepo: userRepo, adminRepo: adminRepo}
}

func (s *AdminService) ListUsers(ctx context.Context) ([]models.AdminUserView, error) {
	return s.userRepo.ListNonAdmin(ctx)
}

// SetBanned sets the target's banned flag. Admins cannot ban themselves.
func (s *AdminService) SetBanned(ctx context.Context, actor Actor, userID uint, banned bool) error {
	if banned && userID == actor.UserID {
		return models.NewValidationError("Cannot ban yourself")
	}
	if err := s.userRepo.SetBanned(ctx, userID, banned); err != nil {
		return err
	}
	middleware.Logger.InfoContext(ctx, "user ban flag changed",
		"target_user_id", userID, "is_banned", banned, "admin_id", actor.UserID)
	return nil
}

// SetAdmin grants or revokes the admin role by username.
func (s *AdminService) SetAdmin(ctx context.Context, username string, admin bool) (*models.User, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetAdmin(ctx, user.ID, admin); err != nil {
		return nil, err
	}
	user.IsAdmin = admin
	return user, nil
}

// SetBannedByUsername is the operator CLI form of SetBanned.
func (s *AdminService) SetBannedByUsername(ctx context.Context, username string, banned bool) (*models.User, error) {
	user, err := s.userByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.SetBanned(ctx, user.ID, banned); err != nil {
		return nil, err
	}
	user.IsBanned = banned
	return user, nil
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]models.User, error) {
	return s.userRepo.ListAdmins(ctx)
}

// Broadcast appends an announcement.
func (s *AdminService) Broadcast(ctx context.Context, title, message string) (*models.AdminMessage, error) {
	title = strings.TrimSpace(title)
	message = strings.TrimSpace(message)
	if title == "" || message == "" {
		return nil, models.NewValidationError("Title and message are required")
	}
	if err := validation.ValidateLength("title", title, 255); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateLength("message", message, validation.MaxTextLength); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	msg := &models.AdminMessage{Title: title, Body: message}
	if err := s.adminRepo.CreateMessage(ctx, msg); err != nil {
		return nil, err
	}
	observability.AdminBroadcasts.Inc()
	return msg, nil
}

// Stats runs the three counts concurrently; any failure fails the whole call.
func (s *AdminService) Stats(ctx context.Context) (*models.PlatformStats, error) {
	var stats models.PlatformStats
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		stats.TotalUsers, err = s.adminRepo.CountNonAdminUsers(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSwaps, err = s.adminRepo.CountSwaps(gctx)
		return err
	})
	g.Go(func() (err error) {
		stats.TotalSkills, err = s.adminRepo.CountSkills(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *AdminService) userByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}
