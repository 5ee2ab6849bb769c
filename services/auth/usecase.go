package auth

import (
	"context"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/carbonkhet/carbonkhet/services/auth AuthUC

// AuthUC orchestrates the credential flows. It is the only component that
// touches the CredentialStore and the NotificationGW.
type AuthUC interface {
	// handle OTP login (doubles as first-time registration)
	RequestLoginOTP(ctx context.Context, email string) error
	CompleteOTPLogin(ctx context.Context, email, code string, reg *models.FarmerRegistration) (*models.AuthResponse, error)

	// password flows
	RegisterFarmer(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error)
	LoginFarmer(ctx context.Context, email, password string) (*models.AuthResponse, error)
	LoginAdmin(ctx context.Context, email, password string) (*models.AuthResponse, error)

	// social provider callback
	SocialLogin(ctx context.Context, provider, email, name string) (*models.AuthResponse, error)

	// session and profile
	VerifySession(ctx context.Context, token string) (*models.Principal, error)
	UpdateFarmerProfile(ctx context.Context, farmerID string, update *models.FarmerUpdate) (*models.Farmer, error)
	GetAllFarmers(ctx context.Context) ([]*models.Farmer, error)
}
