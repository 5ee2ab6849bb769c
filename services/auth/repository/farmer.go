package repository

import (
	"time"

	"github.com/google/uuid"

	"github.com/carbonkhet/carbonkhet/internal/pkg/models"
	"github.com/carbonkhet/carbonkhet/internal/utils"
)

// OTPTTL is how long an issued OTP stays valid
const OTPTTL = 5 * time.Minute

// newFarmerFromRegistration builds a farmer record for an email, applying
// registration data when provided and defaults otherwise. The income
// estimate is derived at creation time.
func newFarmerFromRegistration(email string, reg *models.FarmerRegistration) *models.Farmer {
	now := time.Now()
	farmer := &models.Farmer{
		ID:                   uuid.New().String(),
		Email:                email,
		LandUnit:             utils.LandUnitAcres,
		FarmingType:          "conventional",
		PrimaryCrops:         []string{},
		InterestedProjects:   []string{},
		SustainablePractices: []string{},
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if reg != nil {
		farmer.Name = reg.Name
		farmer.Phone = reg.Phone
		farmer.FarmName = reg.FarmName
		farmer.LandSize = reg.LandSize
		if reg.LandUnit != "" {
			farmer.LandUnit = reg.LandUnit
		}
		if reg.FarmingType != "" {
			farmer.FarmingType = reg.FarmingType
		}
		if reg.PrimaryCrops != nil {
			farmer.PrimaryCrops = reg.PrimaryCrops
		}
		farmer.IrrigationType = reg.IrrigationType
		farmer.Address = reg.Address
		farmer.Pincode = reg.Pincode
		farmer.State = reg.State
		farmer.District = reg.District
		farmer.Coordinates = reg.Coordinates
		farmer.AadhaarID = reg.AadhaarID
		farmer.PANNumber = reg.PANNumber
		farmer.BankAccount = reg.BankAccount
		farmer.IFSCCode = reg.IFSCCode
		if reg.InterestedProjects != nil {
			farmer.InterestedProjects = reg.InterestedProjects
		}
		if reg.SustainablePractices != nil {
			farmer.SustainablePractices = reg.SustainablePractices
		}
	}

	farmer.EstimatedIncome = utils.EstimateIncome(farmer.LandSize, farmer.LandUnit, farmer.SustainablePractices)

	return farmer
}

// applyFarmerUpdate applies a partial update in place. The income estimate
// is recomputed only when land size, land unit or sustainable practices
// are part of the update.
func applyFarmerUpdate(farmer *models.Farmer, update *models.FarmerUpdate) {
	if update.Name != nil {
		farmer.Name = *update.Name
	}
	if update.Phone != nil {
		farmer.Phone = *update.Phone
	}
	if update.FarmName != nil {
		farmer.FarmName = *update.FarmName
	}
	if update.LandSize != nil {
		farmer.LandSize = *update.LandSize
	}
	if update.LandUnit != nil {
		farmer.LandUnit = *update.LandUnit
	}
	if update.FarmingType != nil {
		farmer.FarmingType = *update.FarmingType
	}
	if update.PrimaryCrops != nil {
		farmer.PrimaryCrops = update.PrimaryCrops
	}
	if update.IrrigationType != nil {
		farmer.IrrigationType = *update.IrrigationType
	}
	if update.Address != nil {
		farmer.Address = *update.Address
	}
	if update.Pincode != nil {
		farmer.Pincode = *update.Pincode
	}
	if update.State != nil {
		farmer.State = *update.State
	}
	if update.District != nil {
		farmer.District = *update.District
	}
	if update.Coordinates != nil {
		farmer.Coordinates = update.Coordinates
	}
	if update.AadhaarID != nil {
		farmer.AadhaarID = *update.AadhaarID
	}
	if update.PANNumber != nil {
		farmer.PANNumber = *update.PANNumber
	}
	if update.BankAccount != nil {
		farmer.BankAccount = *update.BankAccount
	}
	if update.IFSCCode != nil {
		farmer.IFSCCode = *update.IFSCCode
	}
	if update.InterestedProjects != nil {
		farmer.InterestedProjects = update.InterestedProjects
	}
	if update.SustainablePractices != nil {
		farmer.SustainablePractices = update.SustainablePractices
	}

	if update.LandSize != nil || update.LandUnit != nil || update.SustainablePractices != nil {
		farmer.EstimatedIncome = utils.EstimateIncome(farmer.LandSize, farmer.LandUnit, farmer.SustainablePractices)
	}

	farmer.UpdatedAt = time.Now()
}
