package auth

import (
	"context"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/carbonkhet/carbonkhet/services/auth CredentialStore

// CredentialStore persists farmers, admins, hashed passwords and OTP
// records. Two implementations exist (MongoDB and in-process memory); both
// must produce identical observable behavior for every method here.
//
// Find methods return (nil, nil) when no record exists.
type CredentialStore interface {
	FindFarmerByEmail(ctx context.Context, email string) (*models.Farmer, error)
	FindFarmerByID(ctx context.Context, id string) (*models.Farmer, error)
	// CreateFarmer creates a farmer for the email, deriving the income
	// estimate from registration data when provided. Returns ErrEmailTaken
	// when a farmer already holds the email.
	CreateFarmer(ctx context.Context, email string, reg *models.FarmerRegistration) (*models.Farmer, error)
	// UpdateFarmer applies a partial update, recomputing the income estimate
	// when land size, land unit or sustainable practices change. Returns
	// ErrFarmerNotFound when no such farmer exists.
	UpdateFarmer(ctx context.Context, id string, update *models.FarmerUpdate) (*models.Farmer, error)
	GetAllFarmers(ctx context.Context) ([]*models.Farmer, error)

	FindAdminByEmail(ctx context.Context, email string) (*models.Admin, error)
	FindAdminByID(ctx context.Context, id string) (*models.Admin, error)
	CreateDefaultAdmin(ctx context.Context, email, name string) (*models.Admin, error)

	// StorePassword hashes and persists a password, replacing any existing
	// record for the (userID, userType) pair.
	StorePassword(ctx context.Context, userID, userType, password string) error
	VerifyUserPassword(ctx context.Context, userID, userType, password string) (bool, error)

	// StoreOTP invalidates any prior OTP for the email before storing the
	// new record.
	StoreOTP(ctx context.Context, email, code, purpose string) error
	// VerifyOTP checks code equality and expiry. A matching, unexpired OTP
	// is consumed (deleted); mismatch or expiry returns false and leaves
	// the record in place.
	VerifyOTP(ctx context.Context, email, code string) (bool, error)
}
