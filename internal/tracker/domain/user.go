package domain

import "time"

// User is a registered identity. Email and username are each globally
// unique; email is stored lower-cased so lookup and registration agree on
// case-insensitivity.
type User struct {
	ID           string
	Email        string
	Username     string
	PasswordHash string     // argon2id encoded, never exposed
	MFASecret    *string    // TOTP secret, base32 (nullable)
	MFAEnabled   *time.Time // when MFA was activated (nullable)
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasMFA reports whether the user has an activated second factor.
func (u User) HasMFA() bool { return u.MFAEnabled != nil }
