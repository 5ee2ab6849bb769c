package utils

import (
	"math"
)

// Income estimation constants. Land is normalized to hectares and each
// declared sustainable practice adds a 10% bonus on the base rate.
const (
	HectaresPerAcre    = 0.405
	BaseRatePerHectare = 1000.0
	PracticeBonus      = 0.10

	LandUnitAcres    = "acres"
	LandUnitHectares = "hectares"
)

// EstimateIncome derives the annual income estimate from land size, land
// unit and the set of declared sustainable practices.
func EstimateIncome(landSize float64, landUnit string, practices []string) int64 {
	hectares := landSize
	if landUnit == LandUnitAcres {
		hectares = landSize * HectaresPerAcre
	}

	multiplier := 1.0 + PracticeBonus*float64(len(practices))
	return int64(math.Round(hectares * BaseRatePerHectare * multiplier))
}
