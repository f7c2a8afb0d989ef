package seed

import (
	"fmt"
	"log"
	"strings"
	"time"

	"skillswap/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// FakePassword is the password of every user the factory creates.
const FakePassword = "password123"

// Options tune how the factory builds and persists rows.
type Options struct {
	// DryRun assigns synthetic ids and skips every database write.
	DryRun bool
	// HashCost overrides the bcrypt cost; zero means bcrypt.DefaultCost.
	HashCost int
	// MaxDays spreads created_at over the last MaxDays days (default 90).
	MaxDays int
}

var (
	skillCatalog = []string{
		"JavaScript", "TypeScript", "Go", "Python", "Rust", "SQL", "React", "Node.js",
		"Photoshop", "Illustrator", "Figma", "Graphic Design", "Video Editing", "Photography",
		"Guitar", "Piano", "Singing", "Spanish", "French", "Japanese", "Cooking", "Baking",
		"Yoga", "Public Speaking", "Copywriting", "Excel", "Woodworking", "Knitting",
	}

	availabilities = []string{
		"Weekends", "Evenings", "Weekends, Evenings", "Weekdays after 6PM",
		"Mornings", "Flexible", "Lunch breaks",
	}

	levels = []models.SkillLevel{
		models.SkillLevelBeginner, models.SkillLevelIntermediate, models.SkillLevelAdvanced,
	}
)

// Factory builds domain entities with gofakeit and persists them.
// It is a thin helper used by the seeder and by tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	// synthetic ID counter when running in DryRun mode
	nextID uint
	hash   string
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// passwordHash hashes FakePassword once per factory.
func (f *Factory) passwordHash() (string, error) {
	if f.hash != "" {
		return f.hash, nil
	}
	cost := f.opts.HashCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(FakePassword), cost)
	if err != nil {
		return "", err
	}
	f.hash = string(hashed)
	return f.hash, nil
}

func (f *Factory) pastTime() time.Time {
	back := time.Duration(gofakeit.Number(0, f.opts.MaxDays*24*60)) * time.Minute
	return time.Now().Add(-back).UTC().Truncate(time.Microsecond)
}

func (f *Factory) persist(value any, id *uint) error {
	if f.opts.DryRun {
		f.nextID++
		*id = f.nextID
		return nil
	}
	return f.db.Create(value).Error
}

// fakeUsername builds a username that passes registration rules:
// lowercase letters, digits and one underscore, at most 30 characters.
func fakeUsername(first, last string) string {
	clean := func(s string) string {
		return strings.Map(func(r rune) rune {
			if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
				return r
			}
			return -1
		}, strings.ToLower(s))
	}
	base := clean(first) + "_" + clean(last)
	if len(base) > 24 {
		base = base[:24]
	}
	base = strings.Trim(base, "_")
	if base == "" {
		base = "user"
	}
	return fmt.Sprintf("%s%d", base, gofakeit.Number(10, 99999))
}

// CreateUser constructs and persists a public, non-admin user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	hashed, err := f.passwordHash()
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	first, last := gofakeit.FirstName(), gofakeit.LastName()
	username := fakeUsername(first, last)
	user := &models.User{
		Username:     username,
		Email:        username + "@" + gofakeit.DomainName(),
		Password:     hashed,
		Name:         first + " " + last,
		Location:     fmt.Sprintf("%s, %s", gofakeit.City(), gofakeit.StateAbr()),
		Availability: gofakeit.RandomString(availabilities),
		IsPublic:     gofakeit.Number(1, 10) > 2,
		CreatedAt:    f.pastTime(),
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.persist(user, &user.ID); err != nil {
		return nil, err
	}
	if f.opts.DryRun {
		log.Printf("[dry-run] CreateUser: %s", user.Username)
	}
	return user, nil
}

// CreateSkill adds a random catalog skill to user.
func (f *Factory) CreateSkill(user *models.User, overrides ...func(*models.SkillEntry)) (*models.SkillEntry, error) {
	skillType := models.SkillTypeOffered
	if gofakeit.Bool() {
		skillType = models.SkillTypeWanted
	}

	skill := &models.SkillEntry{
		UserID:      user.ID,
		SkillName:   gofakeit.RandomString(skillCatalog),
		SkillType:   skillType,
		Description: gofakeit.Sentence(6),
		Level:       levels[gofakeit.Number(0, len(levels)-1)],
	}

	for _, override := range overrides {
		override(skill)
	}

	if err := f.persist(skill, &skill.ID); err != nil {
		return nil, err
	}
	return skill, nil
}

// CreateSwap opens a request from requester to requested. The default status
// is pending with created_at == updated_at; other statuses get a later
// updated_at.
func (f *Factory) CreateSwap(requester, requested *models.User, overrides ...func(*models.SwapRequest)) (*models.SwapRequest, error) {
	created := f.pastTime()
	swap := &models.SwapRequest{
		RequesterID:  requester.ID,
		RequestedID:  requested.ID,
		OfferedSkill: gofakeit.RandomString(skillCatalog),
		WantedSkill:  gofakeit.RandomString(skillCatalog),
		Message:      gofakeit.Sentence(10),
		Status:       models.SwapStatusPending,
		CreatedAt:    created,
		UpdatedAt:    created,
	}

	for _, override := range overrides {
		override(swap)
	}
	if swap.Status != models.SwapStatusPending && !swap.UpdatedAt.After(swap.CreatedAt) {
		swap.UpdatedAt = swap.CreatedAt.Add(time.Duration(gofakeit.Number(1, 72)) * time.Hour)
	}

	if err := f.persist(swap, &swap.ID); err != nil {
		return nil, err
	}
	return swap, nil
}

// CreateRating records rater's rating of the other party of swap.
func (f *Factory) CreateRating(swap *models.SwapRequest, raterID uint, overrides ...func(*models.Rating)) (*models.Rating, error) {
	rating := &models.Rating{
		SwapID:   swap.ID,
		RaterID:  raterID,
		RatedID:  swap.Counterparty(raterID),
		Score:    gofakeit.Number(models.MinRating, models.MaxRating),
		Feedback: gofakeit.Sentence(8),
	}

	for _, override := range overrides {
		override(rating)
	}

	if err := f.persist(rating, &rating.ID); err != nil {
		return nil, err
	}
	return rating, nil
}
