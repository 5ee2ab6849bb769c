package usecase

import (
	"context"
	"fmt"
	"strings"

	jwtpkg "github.com/carbonkhet/carbonkhet/internal/pkg/jwt"
	"github.com/carbonkhet/carbonkhet/internal/pkg/logger"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/internal/pkg/password"
	"github.com/carbonkhet/carbonkhet/internal/utils"
	"github.com/carbonkhet/carbonkhet/services/auth"
)

// socialProviders lists the providers whose callbacks we accept. The
// provider has already authenticated the email by the time it reaches us.
var socialProviders = map[string]bool{
	"google": true,
	"github": true,
}

// RequestLoginOTP issues a fresh OTP for the email and delivers it via the
// notification gateway. Any previously issued code for the email becomes
// invalid. The caller learns nothing about whether the email is registered.
func (u *AuthUC) RequestLoginOTP(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	code, err := utils.GenerateOTPCode()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	// Always tagged login: the flow registers unknown emails on
	// verification, and looking the email up here would only serve the tag
	if err := u.store.StoreOTP(ctx, email, code, models.OTPPurposeLogin); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	if !u.notifier.SendOTP(ctx, email, code) {
		logger.Warn("OTP delivery failed", logger.String("email", email))
	}

	return nil
}

// CompleteOTPLogin verifies the code and logs the farmer in, creating the
// account on first use. A matching code is consumed; a second attempt with
// the same code fails.
func (u *AuthUC) CompleteOTPLogin(ctx context.Context, email, code string, reg *models.FarmerRegistration) (*models.AuthResponse, error) {
	email = normalizeEmail(email)

	ok, err := u.store.VerifyOTP(ctx, email, code)
	if err != nil {
		return nil, fmt.Errorf("failed to verify OTP: %w", err)
	}
	if !ok {
		return nil, auth.ErrInvalidOTP
	}

	newUser := false
	farmer, err := u.store.FindFarmerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up farmer: %w", err)
	}
	if farmer == nil {
		farmer, err = u.store.CreateFarmer(ctx, email, reg)
		if err != nil {
			return nil, fmt.Errorf("failed to create farmer: %w", err)
		}
		newUser = true

		if !u.notifier.SendWelcome(ctx, farmer.Email, farmer.Name, farmer.EstimatedIncome) {
			logger.Warn("Welcome email delivery failed", logger.String("email", farmer.Email))
		}
	}

	return u.farmerAuthResponse(farmer, newUser)
}

// RegisterFarmer creates a password-based farmer account.
func (u *AuthUC) RegisterFarmer(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	if len(req.Password) < password.MinLength {
		return nil, auth.ErrWeakPassword
	}

	farmer, err := u.store.CreateFarmer(ctx, email, &models.FarmerRegistration{
		Name:  req.Name,
		Phone: req.Phone,
	})
	if err != nil {
		return nil, err
	}

	if err := u.store.StorePassword(ctx, farmer.ID, models.UserTypeFarmer, req.Password); err != nil {
		return nil, fmt.Errorf("failed to store password: %w", err)
	}

	if !u.notifier.SendWelcome(ctx, farmer.Email, farmer.Name, farmer.EstimatedIncome) {
		logger.Warn("Welcome email delivery failed", logger.String("email", farmer.Email))
	}

	return u.farmerAuthResponse(farmer, true)
}

// LoginFarmer authenticates a farmer by email and password. Unknown emails
// and wrong passwords both surface ErrInvalidCredentials.
func (u *AuthUC) LoginFarmer(ctx context.Context, email, plaintext string) (*models.AuthResponse, error) {
	email = normalizeEmail(email)

	farmer, err := u.store.FindFarmerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up farmer: %w", err)
	}
	if farmer == nil {
		return nil, auth.ErrInvalidCredentials
	}

	ok, err := u.store.VerifyUserPassword(ctx, farmer.ID, models.UserTypeFarmer, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, auth.ErrInvalidCredentials
	}

	return u.farmerAuthResponse(farmer, false)
}

// LoginAdmin authenticates an admin by email and password.
func (u *AuthUC) LoginAdmin(ctx context.Context, email, plaintext string) (*models.AuthResponse, error) {
	email = normalizeEmail(email)

	admin, err := u.store.FindAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}
	if admin == nil {
		return nil, auth.ErrInvalidCredentials
	}

	ok, err := u.store.VerifyUserPassword(ctx, admin.ID, models.UserTypeAdmin, plaintext)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		return nil, auth.ErrInvalidCredentials
	}

	token, _, err := jwtpkg.GenerateToken(admin.ID, models.UserTypeAdmin, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:    token,
		Admin:    admin,
		UserType: models.UserTypeAdmin,
	}, nil
}

// SocialLogin logs a farmer in based on a verified social provider
// identity, creating the account on first use.
func (u *AuthUC) SocialLogin(ctx context.Context, provider, email, name string) (*models.AuthResponse, error) {
	if !socialProviders[provider] {
		return nil, auth.ErrUnknownProvider
	}
	email = normalizeEmail(email)

	newUser := false
	farmer, err := u.store.FindFarmerByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to look up farmer: %w", err)
	}
	if farmer == nil {
		farmer, err = u.store.CreateFarmer(ctx, email, &models.FarmerRegistration{Name: name})
		if err != nil {
			return nil, fmt.Errorf("failed to create farmer: %w", err)
		}
		newUser = true

		if !u.notifier.SendWelcome(ctx, farmer.Email, farmer.Name, farmer.EstimatedIncome) {
			logger.Warn("Welcome email delivery failed", logger.String("email", farmer.Email))
		}
	}

	return u.farmerAuthResponse(farmer, newUser)
}

// VerifySession validates a token and resolves the full record behind it.
// A token whose principal no longer exists is treated as invalid.
func (u *AuthUC) VerifySession(ctx context.Context, token string) (*models.Principal, error) {
	claims, err := jwtpkg.ValidateToken(token, u.cfg.JWT.Secret)
	if err != nil {
		return nil, err
	}

	switch claims.UserType {
	case models.UserTypeFarmer:
		farmer, err := u.store.FindFarmerByID(ctx, claims.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up farmer: %w", err)
		}
		if farmer == nil {
			return nil, jwtpkg.ErrTokenInvalid
		}
		return &models.Principal{UserType: models.UserTypeFarmer, Farmer: farmer}, nil
	case models.UserTypeAdmin:
		admin, err := u.store.FindAdminByID(ctx, claims.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to look up admin: %w", err)
		}
		if admin == nil {
			return nil, jwtpkg.ErrTokenInvalid
		}
		return &models.Principal{UserType: models.UserTypeAdmin, Admin: admin}, nil
	default:
		return nil, jwtpkg.ErrTokenInvalid
	}
}

func (u *AuthUC) farmerAuthResponse(farmer *models.Farmer, newUser bool) (*models.AuthResponse, error) {
	token, _, err := jwtpkg.GenerateToken(farmer.ID, models.UserTypeFarmer, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:    token,
		Farmer:   farmer,
		UserType: models.UserTypeFarmer,
		NewUser:  newUser,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
