package model

import (
	"time"
)

const (
	StatusPending    = "pending"
	StatusCompleted  = "completed"
	StatusIncomplete = "incomplete"
)

// TargetDateLayout is the calendar-date format for goal target dates.
// Target dates carry no time component and compare at day granularity.
const TargetDateLayout = "2006-01-02"

type Goal struct {
	ID          string    `db:"id" json:"id"`
	UserID      string    `db:"user_id" json:"userId"`
	Description string    `db:"description" json:"goal"`
	TargetDate  string    `db:"target_date" json:"targetDate"`
	Status      string    `db:"status" json:"status"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`

	// Read-side enrichment, resolved from the owning user on each read.
	// Not part of the goal's durable identity.
	OwnerEmail string `db:"-" json:"email"`
	OwnerName  string `db:"-" json:"userName"`
	Progress   int    `db:"-" json:"progress"`
}

// ValidStatus reports whether s is one of the three goal statuses.
// Anything else must be rejected before it reaches the store.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusCompleted, StatusIncomplete:
		return true
	}
	return false
}

// Terminal reports whether s is a finished state. Both terminal states
// may be reset back to pending.
func Terminal(s string) bool {
	return s == StatusCompleted || s == StatusIncomplete
}
