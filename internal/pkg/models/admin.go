package models

import (
	"time"
)

// Admin represents an operator account. Admins are bootstrapped from
// configuration at startup and never created through a public endpoint.
type Admin struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name" bson:"name"`
	Role      string    `json:"role" bson:"role"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// PasswordRecord separates hashed credentials from profile data.
// Keyed by (user_id, user_type) so an email change does not force a rehash.
type PasswordRecord struct {
	UserID       string    `bson:"user_id"`
	UserType     string    `bson:"user_type"`
	PasswordHash string    `bson:"password_hash"`
	UpdatedAt    time.Time `bson:"updated_at"`
}
