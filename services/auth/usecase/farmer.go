package usecase

import (
	"context"
	"fmt"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
)

// UpdateFarmerProfile applies a partial profile update. The store
// recomputes the income estimate when land or practice fields change.
func (u *AuthUC) UpdateFarmerProfile(ctx context.Context, farmerID string, update *models.FarmerUpdate) (*models.Farmer, error) {
	farmer, err := u.store.UpdateFarmer(ctx, farmerID, update)
	if err != nil {
		return nil, err
	}
	return farmer, nil
}

// GetAllFarmers lists every registered farmer, newest first.
func (u *AuthUC) GetAllFarmers(ctx context.Context) ([]*models.Farmer, error) {
	farmers, err := u.store.GetAllFarmers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list farmers: %w", err)
	}
	return farmers, nil
}
