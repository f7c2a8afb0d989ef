package models

import "time"

// AdminMessage is an append-only broadcast authored by an administrator.
type AdminMessage struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null;size:255" json:"title"`
	Body      string    `gorm:"column:message;type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for GORM
func (AdminMessage) TableName() string {
	return "admin_messages"
}

// PlatformStats are the aggregate counts shown on the admin dashboard.
type PlatformStats struct {
	TotalUsers  int64 `json:"totalUsers"`
	TotalSwaps  int64 `json:"totalSwaps"`
	TotalSkills int64 `json:"totalSkills"`
}
