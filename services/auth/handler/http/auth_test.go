package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/services/auth"
	"github.com/carbonkhet/carbonkhet/services/auth/mocks"
)

func newAuthTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestSendOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/send-otp", `{"email": "ravi@example.com"}`)

	mockAuthUC.EXPECT().
		RequestLoginOTP(gomock.Any(), "ravi@example.com").
		Return(nil)

	// Act
	err := authHandler.SendOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "OTP sent successfully", response["message"])
}

func TestSendOTP_InvalidEmail(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/send-otp", `{"email": "not-an-email"}`)

	// Act
	err := authHandler.SendOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
}

func TestSendOTP_UsecaseError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/send-otp", `{"email": "ravi@example.com"}`)

	mockAuthUC.EXPECT().
		RequestLoginOTP(gomock.Any(), "ravi@example.com").
		Return(errors.New("store unavailable"))

	err := authHandler.SendOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestVerifyOTP_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"email": "ravi@example.com", "otp": "123456", "registration_data": {"name": "Ravi", "land_size": 10, "land_unit": "acres"}}`
	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/verify-otp", requestBody)

	authResp := &models.AuthResponse{
		Token:    "jwt-token",
		Farmer:   &models.Farmer{ID: "farmer-1", Email: "ravi@example.com"},
		UserType: models.UserTypeFarmer,
		NewUser:  true,
	}

	mockAuthUC.EXPECT().
		CompleteOTPLogin(gomock.Any(), "ravi@example.com", "123456", gomock.Any()).
		Return(authResp, nil)

	// Act
	err := authHandler.VerifyOTP(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, true, response["success"])

	data := response["data"].(map[string]interface{})
	assert.Equal(t, "jwt-token", data["token"])
	assert.Equal(t, true, data["new_user"])
	assert.Equal(t, models.UserTypeFarmer, data["user_type"])
}

func TestVerifyOTP_InvalidCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/verify-otp", `{"email": "ravi@example.com", "otp": "000000"}`)

	mockAuthUC.EXPECT().
		CompleteOTPLogin(gomock.Any(), "ravi@example.com", "000000", gomock.Nil()).
		Return(nil, auth.ErrInvalidOTP)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, false, response["success"])
	assert.Equal(t, "invalid or expired OTP", response["error"])
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/verify-otp", `{"email": "ravi@example.com"}`)

	err := authHandler.VerifyOTP(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFarmerRegister_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	requestBody := `{"email": "ravi@example.com", "password": "secret123", "name": "Ravi"}`
	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/farmer-register", requestBody)

	authResp := &models.AuthResponse{
		Token:    "jwt-token",
		Farmer:   &models.Farmer{ID: "farmer-1"},
		UserType: models.UserTypeFarmer,
		NewUser:  true,
	}

	mockAuthUC.EXPECT().
		RegisterFarmer(gomock.Any(), gomock.Any()).
		Return(authResp, nil)

	// Act
	err := authHandler.FarmerRegister(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestFarmerRegister_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/farmer-register", `{"email": "ravi@example.com", "password": "secret123"}`)

	mockAuthUC.EXPECT().
		RegisterFarmer(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrEmailTaken)

	err := authHandler.FarmerRegister(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "email is already registered", response["error"])
}

func TestFarmerRegister_WeakPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/farmer-register", `{"email": "ravi@example.com", "password": "short"}`)

	mockAuthUC.EXPECT().
		RegisterFarmer(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrWeakPassword)

	err := authHandler.FarmerRegister(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestFarmerLogin_InvalidCredentials(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/farmer-login", `{"email": "ravi@example.com", "password": "wrong"}`)

	mockAuthUC.EXPECT().
		LoginFarmer(gomock.Any(), "ravi@example.com", "wrong").
		Return(nil, auth.ErrInvalidCredentials)

	// Act
	err := authHandler.FarmerLogin(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)
	assert.Equal(t, "invalid email or password", response["error"])
}

func TestAdminLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/admin-login", `{"email": "admin@carbonkhet.com", "password": "admin-pass"}`)

	authResp := &models.AuthResponse{
		Token:    "jwt-token",
		Admin:    &models.Admin{ID: "admin-1", Role: models.UserTypeAdmin},
		UserType: models.UserTypeAdmin,
	}

	mockAuthUC.EXPECT().
		LoginAdmin(gomock.Any(), "admin@carbonkhet.com", "admin-pass").
		Return(authResp, nil)

	// Act
	err := authHandler.AdminLogin(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.UserTypeAdmin, data["user_type"])
	assert.NotContains(t, data, "farmer")
}

func TestSocialLogin_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/social/google", strings.NewReader(`{"email": "ravi@example.com", "name": "Ravi"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("google")

	authResp := &models.AuthResponse{
		Token:    "jwt-token",
		Farmer:   &models.Farmer{ID: "farmer-1"},
		UserType: models.UserTypeFarmer,
		NewUser:  true,
	}

	mockAuthUC.EXPECT().
		SocialLogin(gomock.Any(), "google", "ravi@example.com", "Ravi").
		Return(authResp, nil)

	// Act
	err := authHandler.SocialLogin(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSocialLogin_UnknownProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/social/myspace", strings.NewReader(`{"email": "ravi@example.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("provider")
	c.SetParamValues("myspace")

	mockAuthUC.EXPECT().
		SocialLogin(gomock.Any(), "myspace", "ravi@example.com", "").
		Return(nil, auth.ErrUnknownProvider)

	err := authHandler.SocialLogin(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerify_Success(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	req.Header.Set("Authorization", "Bearer some-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	principal := &models.Principal{
		UserType: models.UserTypeFarmer,
		Farmer:   &models.Farmer{ID: "farmer-1", Email: "ravi@example.com"},
	}

	mockAuthUC.EXPECT().
		VerifySession(gomock.Any(), "some-token").
		Return(principal, nil)

	// Act
	err := authHandler.Verify(c)

	// Assert
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &response)
	assert.NoError(t, err)

	data := response["data"].(map[string]interface{})
	assert.Equal(t, models.UserTypeFarmer, data["user_type"])
}

func TestVerify_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/verify", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := authHandler.Verify(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLogout(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAuthUC := mocks.NewMockAuthUC(ctrl)
	authHandler := NewAuthHandler(mockAuthUC)

	c, rec := newAuthTestContext(http.MethodPost, "/api/auth/logout", "")

	err := authHandler.Logout(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
}
