// Package models contains data structures for the application's domain models.
package models

import "time"

// User is a SkillSwap member. Users are never hard-deleted.
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null;size:50" json:"username"`
	Email        string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password     string    `gorm:"not null" json:"-"`
	Name         string    `gorm:"not null;size:100" json:"name"`
	Location     string    `gorm:"size:255" json:"location"`
	Availability string    `gorm:"size:255" json:"availability"`
	IsPublic     bool      `gorm:"not null" json:"is_public"`
	IsAdmin      bool      `gorm:"not null;default:false" json:"is_admin"`
	IsBanned     bool      `gorm:"not null;default:false;index" json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// Profile is the caller's own user record together with their skills.
type Profile struct {
	User
	Skills []SkillEntry `json:"skills"`
}

// UserSummary is a browse row: a public user and the offered skills that
// matched the search, comma-joined.
type UserSummary struct {
	ID           uint   `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Location     string `json:"location"`
	Availability string `json:"availability"`
	Skills       string `json:"skills"`
}

// AdminUserView is the moderation listing row.
type AdminUserView struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	IsPublic  bool      `json:"is_public"`
	IsBanned  bool      `json:"is_banned"`
	CreatedAt time.Time `json:"created_at"`
}
