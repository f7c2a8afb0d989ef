package seed

import (
	"context"
	"fmt"
	"log"

	"skillswap/internal/cache"
	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

var fakeStatuses = []models.SwapStatus{
	models.SwapStatusPending, models.SwapStatusPending, models.SwapStatusAccepted,
	models.SwapStatusRejected, models.SwapStatusCompleted, models.SwapStatusCompleted,
	models.SwapStatusCancelled,
}

// Seeder populates a database with fake users, skills, swaps and ratings.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder writing through a Factory with opts.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll removes every swap, rating, skill and broadcast plus all
// non-admin users. Admin accounts survive so the operator can still log in.
// Cached rows and sessions of removed users are dropped after commit.
func (s *Seeder) ClearAll(ctx context.Context) error {
	log.Println("🧹 Clearing existing data...")
	var removed []uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.User{}).Where("is_admin = ?", false).Pluck("id", &removed).Error; err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		steps := []struct {
			model any
			where string
			args  []any
		}{
			{&models.Rating{}, "1 = 1", nil},
			{&models.SwapRequest{}, "1 = 1", nil},
			{&models.SkillEntry{}, "1 = 1", nil},
			{&models.AdminMessage{}, "1 = 1", nil},
			{&models.User{}, "is_admin = ?", []any{false}},
		}
		for _, step := range steps {
			if err := tx.Where(step.where, step.args...).Delete(step.model).Error; err != nil {
				return fmt.Errorf("clear %T: %w", step.model, err)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	for _, id := range removed {
		cache.InvalidateUser(ctx, id)
	}
	if err := cache.InvalidateSessionsOf(ctx, removed...); err != nil {
		return fmt.Errorf("drop sessions: %w", err)
	}
	return nil
}

// FakeUsers creates n users, each with one to four skills and at least one
// offered skill.
func (s *Seeder) FakeUsers(n int) ([]*models.User, error) {
	users := make([]*models.User, 0, n)
	for i := 0; i < n; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return users, fmt.Errorf("create user: %w", err)
		}

		skills := gofakeit.Number(1, 4)
		for j := 0; j < skills; j++ {
			var override []func(*models.SkillEntry)
			if j == 0 {
				override = append(override, func(e *models.SkillEntry) { e.SkillType = models.SkillTypeOffered })
			}
			if _, err := s.factory.CreateSkill(user, override...); err != nil {
				return users, fmt.Errorf("create skill: %w", err)
			}
		}
		users = append(users, user)
	}
	log.Printf("👥 Created %d users", len(users))
	return users, nil
}

// FakeSwaps creates n swaps between distinct random users. Completed swaps
// are rated by each side with even odds.
func (s *Seeder) FakeSwaps(users []*models.User, n int) ([]*models.SwapRequest, error) {
	if len(users) < 2 {
		return nil, fmt.Errorf("need at least two users to create swaps, got %d", len(users))
	}

	swaps := make([]*models.SwapRequest, 0, n)
	ratings := 0
	for i := 0; i < n; i++ {
		a := gofakeit.Number(0, len(users)-1)
		b := gofakeit.Number(0, len(users)-2)
		if b >= a {
			b++
		}
		status := fakeStatuses[gofakeit.Number(0, len(fakeStatuses)-1)]

		swap, err := s.factory.CreateSwap(users[a], users[b], func(sw *models.SwapRequest) {
			sw.Status = status
		})
		if err != nil {
			return swaps, fmt.Errorf("create swap: %w", err)
		}
		swaps = append(swaps, swap)

		if status != models.SwapStatusCompleted {
			continue
		}
		for _, rater := range []uint{swap.RequesterID, swap.RequestedID} {
			if !gofakeit.Bool() {
				continue
			}
			if _, err := s.factory.CreateRating(swap, rater); err != nil {
				return swaps, fmt.Errorf("create rating: %w", err)
			}
			ratings++
		}
	}
	log.Printf("🔁 Created %d swaps and %d ratings", len(swaps), ratings)
	return swaps, nil
}
