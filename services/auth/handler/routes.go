package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/carbonkhet/carbonkhet/internal/pkg/middleware"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler   *http.AuthHandler
	farmerHandler *http.FarmerHandler
	cfg           *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	farmerHandler *http.FarmerHandler,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:   authHandler,
		farmerHandler: farmerHandler,
		cfg:           cfg,
	}
}

// RegisterRoutes registers all auth routes on the echo instance
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/api/auth")

	// Public routes (no authentication required)
	authGroup.POST("/send-otp", h.authHandler.SendOTP)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP)
	authGroup.POST("/farmer-register", h.authHandler.FarmerRegister)
	authGroup.POST("/farmer-login", h.authHandler.FarmerLogin)
	authGroup.POST("/admin-login", h.authHandler.AdminLogin)
	authGroup.POST("/social/:provider", h.authHandler.SocialLogin)

	// Logout is client-side token discard, so it succeeds even when the
	// caller no longer holds a valid token
	authGroup.POST("/logout", h.authHandler.Logout)

	// Verify resolves its own bearer token so it can report token problems
	// in the response body
	authGroup.GET("/verify", h.authHandler.Verify)

	// Protected routes
	jwtAuth := middleware.JWTAuthMiddleware(h.cfg.JWT)
	authGroup.PUT("/update-profile", h.farmerHandler.UpdateProfile, jwtAuth, middleware.RequireUserType(models.UserTypeFarmer))
	authGroup.GET("/farmers", h.farmerHandler.GetFarmers, jwtAuth, middleware.RequireUserType(models.UserTypeAdmin))
}
