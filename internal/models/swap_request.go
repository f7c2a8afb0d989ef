package models

import "time"

// SwapStatus is the lifecycle state of a swap request.
type SwapStatus string

const (
	SwapStatusPending   SwapStatus = "pending"
	SwapStatusAccepted  SwapStatus = "accepted"
	SwapStatusRejected  SwapStatus = "rejected"
	SwapStatusCompleted SwapStatus = "completed"
	SwapStatusCancelled SwapStatus = "cancelled"
)

// IsTransitionTarget reports whether s may be requested through a status
// update. Pending is only ever the initial state.
func (s SwapStatus) IsTransitionTarget() bool {
	switch s {
	case SwapStatusAccepted, SwapStatusRejected, SwapStatusCompleted, SwapStatusCancelled:
		return true
	}
	return false
}

// SwapRequest proposes exchanging an offered skill for a wanted skill between
// two users. Skill labels are free text, not references to skill entries.
type SwapRequest struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	RequesterID  uint       `gorm:"not null;index" json:"requester_id"`
	RequestedID  uint       `gorm:"not null;index" json:"requested_id"`
	OfferedSkill string     `gorm:"not null;size:100" json:"offered_skill"`
	WantedSkill  string     `gorm:"not null;size:100" json:"wanted_skill"`
	Message      string     `gorm:"type:text" json:"message"`
	Status       SwapStatus `gorm:"type:varchar(20);not null;index;check:chk_swap_requests_status,status IN ('pending','accepted','rejected','completed','cancelled')" json:"status"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Requester User `gorm:"foreignKey:RequesterID" json:"-"`
	Requested User `gorm:"foreignKey:RequestedID" json:"-"`
}

// TableName specifies the table name for GORM
func (SwapRequest) TableName() string {
	return "swap_requests"
}

// IsParticipant reports whether userID is one of the two parties.
func (s *SwapRequest) IsParticipant(userID uint) bool {
	return s.RequesterID == userID || s.RequestedID == userID
}

// Counterparty returns the other party of the swap for a participant.
func (s *SwapRequest) Counterparty(userID uint) uint {
	if s.RequesterID == userID {
		return s.RequestedID
	}
	return s.RequesterID
}

// SwapRequestView is a swap request enriched with both parties' names, the
// ratings recorded against it and whether the viewer already rated it.
type SwapRequestView struct {
	SwapRequest
	RequesterName     string   `json:"requester_name"`
	RequesterUsername string   `json:"requester_username"`
	RequestedName     string   `json:"requested_name"`
	RequestedUsername string   `json:"requested_username"`
	Ratings           []Rating `json:"ratings"`
	Rated             bool     `json:"rated"`
}
