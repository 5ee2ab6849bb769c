package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/carbonkhet/carbonkhet/internal/pkg/logger"
	"github.com/carbonkhet/carbonkhet/internal/pkg/middleware"
	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/internal/utils"
	"github.com/carbonkhet/carbonkhet/services/auth"
)

// FarmerHandler handles HTTP requests for farmer profile operations
type FarmerHandler struct {
	authUC auth.AuthUC
}

// NewFarmerHandler creates a new farmer handler
func NewFarmerHandler(
	authUC auth.AuthUC,
) *FarmerHandler {
	return &FarmerHandler{
		authUC: authUC,
	}
}

// UpdateProfile applies a partial update to the authenticated farmer's
// profile. The farmer ID comes from the verified token, never the payload.
func (h *FarmerHandler) UpdateProfile(c echo.Context) error {
	farmerID, ok := c.Get(middleware.ContextUserID).(string)
	if !ok || farmerID == "" {
		return utils.UnauthorizedResponse(c, "Invalid session")
	}

	var update models.FarmerUpdate
	if err := c.Bind(&update); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	farmer, err := h.authUC.UpdateFarmerProfile(c.Request().Context(), farmerID, &update)
	if err != nil {
		if errors.Is(err, auth.ErrFarmerNotFound) {
			return utils.NotFoundResponse(c, err.Error())
		}
		logger.Error("Failed to update farmer profile",
			logger.ErrorField(err),
			logger.String("farmer_id", farmerID),
		)
		return utils.InternalServerErrorResponse(c, "Failed to update profile")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", farmer)
}

// GetFarmers lists every registered farmer. Admin only.
func (h *FarmerHandler) GetFarmers(c echo.Context) error {
	farmers, err := h.authUC.GetAllFarmers(c.Request().Context())
	if err != nil {
		logger.Error("Failed to list farmers", logger.ErrorField(err))
		return utils.InternalServerErrorResponse(c, "Failed to list farmers")
	}

	return utils.SuccessResponse(c, http.StatusOK, "Farmers retrieved successfully", farmers)
}
