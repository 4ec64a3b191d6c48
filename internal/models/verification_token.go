package models

import "time"

// VerificationToken is a pending email OTP. One row per email at most:
// re-registering before consumption overwrites code and expiry in place.
type VerificationToken struct {
	Email     string    `gorm:"primaryKey" json:"email"`
	Token     string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null;index" json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}
