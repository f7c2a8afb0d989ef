package models

import "time"

// Rating bounds.
const (
	MinRating = 1
	MaxRating = 5
)

// Rating is feedback one swap participant leaves about the other.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	SwapID    uint      `gorm:"not null;index" json:"swap_id"`
	RaterID   uint      `gorm:"not null;index" json:"rater_id"`
	RatedID   uint      `gorm:"not null;index" json:"rated_id"`
	Score     int       `gorm:"column:rating;not null;check:chk_ratings_rating,rating >= 1 AND rating <= 5" json:"rating"`
	Feedback  string    `gorm:"type:text" json:"feedback"`
	CreatedAt time.Time `json:"created_at"`

	Swap SwapRequest `gorm:"foreignKey:SwapID" json:"-"`
}

// TableName specifies the table name for GORM
func (Rating) TableName() string {
	return "ratings"
}
