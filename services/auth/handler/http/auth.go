package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/carbonkhet/carbonkhet/internal/pkg/logger"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/internal/utils"
	"github.com/carbonkhet/carbonkhet/services/auth"
)

// AuthHandler handles HTTP requests for authentication operations
type AuthHandler struct {
	authUC auth.AuthUC
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	authUC auth.AuthUC,
) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

// SendOTP handles OTP issuance requests
func (h *AuthHandler) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "A valid email is required")
	}

	if err := h.authUC.RequestLoginOTP(c.Request().Context(), req.Email); err != nil {
		logger.Error("Failed to issue OTP",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "Failed to send OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "OTP sent successfully", nil)
}

// VerifyOTP handles OTP verification and logs the farmer in, creating the
// account on first use
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.OTP == "" {
		return utils.BadRequestResponse(c, "Email and OTP are required")
	}

	resp, err := h.authUC.CompleteOTPLogin(c.Request().Context(), req.Email, req.OTP, req.RegistrationData)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidOTP) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to complete OTP login",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "Failed to verify OTP")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// FarmerRegister handles password-based farmer registration
func (h *AuthHandler) FarmerRegister(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "A valid email is required")
	}

	resp, err := h.authUC.RegisterFarmer(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, auth.ErrWeakPassword) || errors.Is(err, auth.ErrEmailTaken) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to register farmer",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "Failed to register")
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Registration successful", resp)
}

// FarmerLogin handles password-based farmer login
func (h *AuthHandler) FarmerLogin(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.LoginFarmer(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Failed to log farmer in",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// AdminLogin handles password-based admin login
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.Email == "" || req.Password == "" {
		return utils.BadRequestResponse(c, "Email and password are required")
	}

	resp, err := h.authUC.LoginAdmin(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, err.Error())
		}
		logger.Error("Failed to log admin in",
			logger.ErrorField(err),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// SocialLogin handles a social provider callback
func (h *AuthHandler) SocialLogin(c echo.Context) error {
	provider := c.Param("provider")

	var req models.SocialLoginRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if !utils.IsValidEmail(req.Email) {
		return utils.BadRequestResponse(c, "A valid email is required")
	}

	resp, err := h.authUC.SocialLogin(c.Request().Context(), provider, req.Email, req.Name)
	if err != nil {
		if errors.Is(err, auth.ErrUnknownProvider) {
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.Error("Failed to complete social login",
			logger.ErrorField(err),
			logger.String("provider", provider),
			logger.String("email", req.Email),
		)
		return utils.InternalServerErrorResponse(c, "Failed to log in")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// Verify resolves the bearer token into the full principal record
func (h *AuthHandler) Verify(c echo.Context) error {
	token := bearerToken(c)
	if token == "" {
		return utils.UnauthorizedResponse(c, "Authorization header is required")
	}

	principal, err := h.authUC.VerifySession(c.Request().Context(), token)
	if err != nil {
		return utils.UnauthorizedResponse(c, "Invalid token")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Session is valid", principal)
}

// Logout acknowledges a logout. Tokens are stateless, so the client simply
// discards its copy.
func (h *AuthHandler) Logout(c echo.Context) error {
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

func bearerToken(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}
