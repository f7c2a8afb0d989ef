// Package seed provides helpers to create demo and test data for the
// SkillSwap database. These helpers are intended for development and
// testing only.
package seed

import (
	"context"
	_ "embed"
	"fmt"

	"skillswap/internal/models"
	"skillswap/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

//go:embed fixtures/demo.yml
var demoFixture []byte

// DemoSkill is one skill entry of a demo account.
type DemoSkill struct {
	Name        string            `yaml:"name"`
	Type        models.SkillType  `yaml:"type"`
	Description string            `yaml:"description"`
	Level       models.SkillLevel `yaml:"level"`
}

// DemoUser is a demo account together with its skills.
type DemoUser struct {
	Username     string      `yaml:"username"`
	Email        string      `yaml:"email"`
	Name         string      `yaml:"name"`
	Location     string      `yaml:"location"`
	Availability string      `yaml:"availability"`
	Skills       []DemoSkill `yaml:"skills"`
}

// DemoData is the parsed demo fixture. Every demo account shares Password.
type DemoData struct {
	Password string     `yaml:"password"`
	Users    []DemoUser `yaml:"users"`
}

// LoadDemo parses and validates the embedded demo fixture.
func LoadDemo() (*DemoData, error) {
	return parseDemo(demoFixture)
}

func parseDemo(raw []byte) (*DemoData, error) {
	var data DemoData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse demo fixture: %w", err)
	}
	if data.Password == "" {
		return nil, fmt.Errorf("demo fixture: password is required")
	}

	for _, u := range data.Users {
		if err := validation.ValidateUsername(u.Username); err != nil {
			return nil, fmt.Errorf("demo user %q: %w", u.Username, err)
		}
		if err := validation.ValidateEmail(u.Email); err != nil {
			return nil, fmt.Errorf("demo user %q: %w", u.Username, err)
		}
		for _, s := range u.Skills {
			if err := validation.ValidateSkill(s.Name, s.Type, s.Level); err != nil {
				return nil, fmt.Errorf("demo user %q skill %q: %w", u.Username, s.Name, err)
			}
		}
	}
	return &data, nil
}

// Demo inserts the demo accounts and their skills. An account whose username
// or email is already taken is skipped along with its skills, so running it
// twice changes nothing. It returns how many accounts were created.
func Demo(ctx context.Context, db *gorm.DB) (int, error) {
	data, err := LoadDemo()
	if err != nil {
		return 0, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash demo password: %w", err)
	}

	created := 0
	for _, du := range data.Users {
		err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			var taken int64
			if err := tx.Model(&models.User{}).
				Where("username = ? OR email = ?", du.Username, du.Email).
				Count(&taken).Error; err != nil {
				return err
			}
			if taken > 0 {
				return nil
			}

			user := models.User{
				Username:     du.Username,
				Email:        du.Email,
				Password:     string(hashed),
				Name:         du.Name,
				Location:     du.Location,
				Availability: du.Availability,
				IsPublic:     true,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}

			if len(du.Skills) > 0 {
				skills := make([]models.SkillEntry, 0, len(du.Skills))
				for _, s := range du.Skills {
					skills = append(skills, models.SkillEntry{
						UserID:      user.ID,
						SkillName:   s.Name,
						SkillType:   s.Type,
						Description: s.Description,
						Level:       s.Level,
					})
				}
				if err := tx.Create(&skills).Error; err != nil {
					return err
				}
			}

			created++
			return nil
		})
		if err != nil {
			return created, fmt.Errorf("seed demo user %q: %w", du.Username, err)
		}
	}
	return created, nil
}
