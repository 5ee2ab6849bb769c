package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/carbonkhet/carbonkhet/internal/pkg/jwt"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/services/auth"
	"github.com/carbonkhet/carbonkhet/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		App: models.AppConfig{Environment: "test"},
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 168,
			Issuer:     "carbonkhet-test",
		},
	}
}

func newTestAuthUC(t *testing.T) (*AuthUC, *mocks.MockCredentialStore, *mocks.MockNotificationGW) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStore := mocks.NewMockCredentialStore(ctrl)
	mockGW := mocks.NewMockNotificationGW(ctrl)

	return NewAuthUC(mockStore, mockGW, testConfig()), mockStore, mockGW
}

func TestRequestLoginOTP_Success(t *testing.T) {
	// Arrange
	uc, mockStore, mockGW := newTestAuthUC(t)

	// The code is tagged login regardless of whether the email is known;
	// the email is normalized before lookup and delivery
	mockStore.EXPECT().
		StoreOTP(gomock.Any(), "ravi@example.com", gomock.Any(), models.OTPPurposeLogin).
		Return(nil)
	mockGW.EXPECT().SendOTP(gomock.Any(), "ravi@example.com", gomock.Any()).Return(true)

	// Act
	err := uc.RequestLoginOTP(context.Background(), "Ravi@Example.com ")

	// Assert
	assert.NoError(t, err)
}

func TestRequestLoginOTP_DeliveryFailureStillSucceeds(t *testing.T) {
	uc, mockStore, mockGW := newTestAuthUC(t)

	mockStore.EXPECT().StoreOTP(gomock.Any(), "ravi@example.com", gomock.Any(), gomock.Any()).Return(nil)
	mockGW.EXPECT().SendOTP(gomock.Any(), "ravi@example.com", gomock.Any()).Return(false)

	err := uc.RequestLoginOTP(context.Background(), "ravi@example.com")

	// Delivery problems must not leak to the caller
	assert.NoError(t, err)
}

func TestRequestLoginOTP_StoreError(t *testing.T) {
	uc, mockStore, _ := newTestAuthUC(t)

	mockStore.EXPECT().StoreOTP(gomock.Any(), "ravi@example.com", gomock.Any(), gomock.Any()).
		Return(errors.New("db down"))

	err := uc.RequestLoginOTP(context.Background(), "ravi@example.com")

	assert.Error(t, err)
}

func TestCompleteOTPLogin_ExistingFarmer(t *testing.T) {
	// Arrange
	uc, mockStore, _ := newTestAuthUC(t)

	farmer := &models.Farmer{ID: "farmer-1", Email: "ravi@example.com", Name: "Ravi"}

	mockStore.EXPECT().VerifyOTP(gomock.Any(), "ravi@example.com", "123456").Return(true, nil)
	mockStore.EXPECT().FindFarmerByEmail(gomock.Any(), "ravi@example.com").Return(farmer, nil)

	// Act
	resp, err := uc.CompleteOTPLogin(context.Background(), "ravi@example.com", "123456", nil)

	// Assert
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserTypeFarmer, resp.UserType)
	assert.False(t, resp.NewUser)
	require.NotNil(t, resp.Farmer)
	assert.Equal(t, "farmer-1", resp.Farmer.ID)
	assert.Nil(t, resp.Admin)
}

func TestCompleteOTPLogin_FirstTimeCreatesFarmer(t *testing.T) {
	// Arrange
	uc, mockStore, mockGW := newTestAuthUC(t)

	reg := &models.FarmerRegistration{Name: "Ravi", LandSize: 10, LandUnit: "acres"}
	created := &models.Farmer{
		ID:              "farmer-1",
		Email:           "ravi@example.com",
		Name:            "Ravi",
		EstimatedIncome: 4050,
	}

	mockStore.EXPECT().VerifyOTP(gomock.Any(), "ravi@example.com", "123456").Return(true, nil)
	mockStore.EXPECT().FindFarmerByEmail(gomock.Any(), "ravi@example.com").Return(nil, nil)
	mockStore.EXPECT().CreateFarmer(gomock.Any(), "ravi@example.com", reg).Return(created, nil)
	mockGW.EXPECT().SendWelcome(gomock.Any(), "ravi@example.com", "Ravi", int64(4050)).Return(true)

	// Act
	resp, err := uc.CompleteOTPLogin(context.Background(), "ravi@example.com", "123456", reg)

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.NewUser)
	assert.Equal(t, "farmer-1", resp.Farmer.ID)
}

func TestCompleteOTPLogin_InvalidCode(t *testing.T) {
	uc, mockStore, _ := newTestAuthUC(t)

	mockStore.EXPECT().VerifyOTP(gomock.Any(), "ravi@example.com", "000000").Return(false, nil)

	resp, err := uc.CompleteOTPLogin(context.Background(), "ravi@example.com", "000000", nil)

	assert.ErrorIs(t, err, auth.ErrInvalidOTP)
	assert.Nil(t, resp)
}

func TestCompleteOTPLogin_WelcomeFailureStillSucceeds(t *testing.T) {
	uc, mockStore, mockGW := newTestAuthUC(t)

	created := &models.Farmer{ID: "farmer-1", Email: "ravi@example.com"}

	mockStore.EXPECT().VerifyOTP(gomock.Any(), "ravi@example.com", "123456").Return(true, nil)
	mockStore.EXPECT().FindFarmerByEmail(gomock.Any(), "ravi@example.com").Return(nil, nil)
	mockStore.EXPECT().CreateFarmer(gomock.Any(), "ravi@example.com", nil).Return(created, nil)
	mockGW.EXPECT().SendWelcome(gomock.Any(), "ravi@example.com", "", int64(0)).Return(false)

	resp, err := uc.CompleteOTPLogin(context.Background(), "ravi@example.com", "123456", nil)

	require.NoError(t, err)
	assert.True(t, resp.NewUser)
}

func TestRegisterFarmer_Success(t *testing.T) {
	// Arrange
	uc, mockStore, mockGW := newTestAuthUC(t)

	created := &models.Farmer{ID: "farmer-1", Email: "ravi@example.com", Name: "Ravi"}

	mockStore.EXPECT().
		CreateFarmer(gomock.Any(), "ravi@example.com", &models.FarmerRegistration{Name: "Ravi", Phone: "9876543210"}).
		Return(created, nil)
	mockStore.EXPECT().StorePassword(gomock.Any(), "farmer-1", models.UserTypeFarmer, "secret123").Return(nil)
	mockGW.EXPECT().SendWelcome(gomock.Any(), "ravi@example.com", "Ravi", int64(0)).Return(true)

	// Act
	resp, err := uc.RegisterFarmer(context.Background(), &models.RegisterRequest{
		Email:    "ravi@example.com",
		Password: "secret123",
		Name:     "Ravi",
		Phone:    "9876543210",
	})

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.NewUser)
	assert.NotEmpty(t, resp.Token)
}

func TestRegisterFarmer_WeakPassword(t *testing.T) {
	uc, _, _ := newTestAuthUC(t)

	resp, err := uc.RegisterFarmer(context.Background(), &models.RegisterRequest{
		Email:    "ravi@example.com",
		Password: "short",
	})

	assert.ErrorIs(t, err, auth.ErrWeakPassword)
	assert.Nil(t, resp)
}

func TestRegisterFarmer_EmailTaken(t *testing.T) {
	uc, mockStore, _ := newTestAuthUC(t)

	mockStore.EXPECT().CreateFarmer(gomock.Any(), "ravi@example.com", gomock.Any()).
		Return(nil, auth.ErrEmailTaken)

	resp, err := uc.RegisterFarmer(context.Background(), &models.RegisterRequest{
		Email:    "ravi@example.com",
		Password: "secret123",
	})

	assert.ErrorIs(t, err, auth.ErrEmailTaken)
	assert.Nil(t, resp)
}

func TestLoginFarmer_Success(t *testing.T) {
	// Arrange
	uc, mockStore, _ := newTestAuthUC(t)

	farmer := &models.Farmer{ID: "farmer-1", Email: "ravi@example.com"}

	mockStore.EXPECT().FindFarmerByEmail(gomock.Any(), "ravi@example.com").Return(farmer, nil)
	mockStore.EXPECT().VerifyUserPassword(gomock.Any(), "farmer-1", models.UserTypeFarmer, "secret123").
		Return(true, nil)

	// Act
	resp, err := uc.LoginFarmer(context.Background(), "ravi@example.com", "secret123")

	// Assert
	require.NoError(t, err)
	assert.False(t, resp.NewUser)
	assert.Equal(t, models.UserTypeFarmer, resp.UserType)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, "farmer-1", claims.UserID)
	assert.Equal(t, models.UserTypeFarmer, claims.UserType)
}

func TestLoginFarmer_UniformFailure(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable
	tests := []struct {
		name  string
		setup func(store *mocks.MockCredentialStore)
	}{
		{
			name: "unknown email",
			setup: func(store *mocks.MockCredentialStore) {
				store.EXPECT().FindFarmerByEmail(gomock.Any(), "ravi@example.com").Return(nil, nil)
			},
		},
		{
			name: "wrong password",
			setup: func(store *mocks.MockCredentialStore) {
				store.EXPECT().FindFarmerByEmail(gomock.Any(), "ravi@example.com").
					Return(&models.Farmer{ID: "farmer-1"}, nil)
				store.EXPECT().VerifyUserPassword(gomock.Any(), "farmer-1", models.UserTypeFarmer, "wrong").
					Return(false, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, mockStore, _ := newTestAuthUC(t)
			tt.setup(mockStore)

			resp, err := uc.LoginFarmer(context.Background(), "ravi@example.com", "wrong")

			assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
			assert.Nil(t, resp)
		})
	}
}

func TestLoginAdmin_Success(t *testing.T) {
	// Arrange
	uc, mockStore, _ := newTestAuthUC(t)

	admin := &models.Admin{ID: "admin-1", Email: "admin@carbonkhet.com", Role: models.UserTypeAdmin}

	mockStore.EXPECT().FindAdminByEmail(gomock.Any(), "admin@carbonkhet.com").Return(admin, nil)
	mockStore.EXPECT().VerifyUserPassword(gomock.Any(), "admin-1", models.UserTypeAdmin, "admin-pass").
		Return(true, nil)

	// Act
	resp, err := uc.LoginAdmin(context.Background(), "admin@carbonkhet.com", "admin-pass")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, resp.UserType)
	require.NotNil(t, resp.Admin)
	assert.Nil(t, resp.Farmer)

	claims, err := jwtpkg.ValidateToken(resp.Token, "test-secret")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, claims.UserType)
}

func TestLoginAdmin_UniformFailure(t *testing.T) {
	uc, mockStore, _ := newTestAuthUC(t)

	mockStore.EXPECT().FindAdminByEmail(gomock.Any(), "nobody@carbonkhet.com").Return(nil, nil)

	resp, err := uc.LoginAdmin(context.Background(), "nobody@carbonkhet.com", "whatever")

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	assert.Nil(t, resp)
}

func TestSocialLogin_KnownProviderNewFarmer(t *testing.T) {
	// Arrange
	uc, mockStore, mockGW := newTestAuthUC(t)

	created := &models.Farmer{ID: "farmer-1", Email: "ravi@example.com", Name: "Ravi"}

	mockStore.EXPECT().FindFarmerByEmail(gomock.Any(), "ravi@example.com").Return(nil, nil)
	mockStore.EXPECT().
		CreateFarmer(gomock.Any(), "ravi@example.com", &models.FarmerRegistration{Name: "Ravi"}).
		Return(created, nil)
	mockGW.EXPECT().SendWelcome(gomock.Any(), "ravi@example.com", "Ravi", int64(0)).Return(true)

	// Act
	resp, err := uc.SocialLogin(context.Background(), "google", "ravi@example.com", "Ravi")

	// Assert
	require.NoError(t, err)
	assert.True(t, resp.NewUser)
}

func TestSocialLogin_UnknownProvider(t *testing.T) {
	uc, _, _ := newTestAuthUC(t)

	resp, err := uc.SocialLogin(context.Background(), "myspace", "ravi@example.com", "Ravi")

	assert.ErrorIs(t, err, auth.ErrUnknownProvider)
	assert.Nil(t, resp)
}

func TestVerifySession_Farmer(t *testing.T) {
	// Arrange
	uc, mockStore, _ := newTestAuthUC(t)

	cfg := testConfig()
	token, _, err := jwtpkg.GenerateToken("farmer-1", models.UserTypeFarmer, cfg.JWT)
	require.NoError(t, err)

	farmer := &models.Farmer{ID: "farmer-1", Email: "ravi@example.com"}
	mockStore.EXPECT().FindFarmerByID(gomock.Any(), "farmer-1").Return(farmer, nil)

	// Act
	principal, err := uc.VerifySession(context.Background(), token)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeFarmer, principal.UserType)
	require.NotNil(t, principal.Farmer)
	assert.Equal(t, "farmer-1", principal.Farmer.ID)
	assert.Nil(t, principal.Admin)
}

func TestVerifySession_Admin(t *testing.T) {
	uc, mockStore, _ := newTestAuthUC(t)

	cfg := testConfig()
	token, _, err := jwtpkg.GenerateToken("admin-1", models.UserTypeAdmin, cfg.JWT)
	require.NoError(t, err)

	admin := &models.Admin{ID: "admin-1", Email: "admin@carbonkhet.com"}
	mockStore.EXPECT().FindAdminByID(gomock.Any(), "admin-1").Return(admin, nil)

	principal, err := uc.VerifySession(context.Background(), token)

	require.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, principal.UserType)
	require.NotNil(t, principal.Admin)
}

func TestVerifySession_GarbageToken(t *testing.T) {
	uc, _, _ := newTestAuthUC(t)

	principal, err := uc.VerifySession(context.Background(), "not-a-token")

	assert.Error(t, err)
	assert.Nil(t, principal)
}

func TestVerifySession_DeletedPrincipal(t *testing.T) {
	uc, mockStore, _ := newTestAuthUC(t)

	cfg := testConfig()
	token, _, err := jwtpkg.GenerateToken("farmer-1", models.UserTypeFarmer, cfg.JWT)
	require.NoError(t, err)

	mockStore.EXPECT().FindFarmerByID(gomock.Any(), "farmer-1").Return(nil, nil)

	principal, err := uc.VerifySession(context.Background(), token)

	assert.ErrorIs(t, err, jwtpkg.ErrTokenInvalid)
	assert.Nil(t, principal)
}
