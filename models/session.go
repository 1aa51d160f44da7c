package models

import "time"

// Session is an API token bound to a user. The token itself is the ID.
type Session struct {
	ID         string    `json:"id" db:"id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Label      string    `json:"label" db:"label"`
	ExpiresAt  time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	LastUsedAt time.Time `json:"last_used_at" db:"last_used_at"`
}

// Notification is a short message emitted after every mutation attempt.
type Notification struct {
	UserID    string    `json:"-"`
	Level     string    `json:"level"`
	Title     string    `json:"title"`
	Detail    string    `json:"detail,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

const (
	NotificationSuccess = "success"
	NotificationError   = "error"
)
