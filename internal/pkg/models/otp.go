package models

import (
	"time"
)

// OTP purposes
const (
	OTPPurposeRegistration  = "registration"
	OTPPurposeLogin         = "login"
	OTPPurposePasswordReset = "password_reset"
)

// OTP represents a short-lived one-time code bound to an email address
type OTP struct {
	ID        string    `json:"id" bson:"_id"`
	Email     string    `json:"email" bson:"email"`
	Code      string    `json:"code" bson:"code"`
	Purpose   string    `json:"purpose" bson:"purpose"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
}

// Session is a server-side session record. The primary login paths are
// JWT-only and do not write sessions; the collection exists for future
// revocation support.
type Session struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"user_id" bson:"user_id"`
	UserType  string    `json:"user_type" bson:"user_type"`
	Token     string    `json:"token" bson:"token"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	ExpiresAt time.Time `json:"expires_at" bson:"expires_at"`
}
