package auth

import (
	"errors"
)

// Sentinel errors for the auth flows. LoginFarmer and LoginAdmin both
// surface ErrInvalidCredentials for unknown principals and wrong passwords
// alike, so callers cannot distinguish the two cases.
var (
	ErrEmailTaken         = errors.New("email is already registered")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrWeakPassword       = errors.New("password must be at least 6 characters")
	ErrFarmerNotFound     = errors.New("farmer not found")
	ErrUnknownProvider    = errors.New("unsupported social provider")
)
