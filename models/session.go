package models

import "time"

// GuestSession identifies one visitor's cart. Issued by POST /auth/session.
type GuestSession struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	ExpiresAt time.Time `json:"expires_at"`
}
