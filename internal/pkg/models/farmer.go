package models

import (
	"time"
)

// Farmer represents a registered grower on the platform
type Farmer struct {
	ID                   string       `json:"id" bson:"_id"`
	Email                string       `json:"email" bson:"email"`
	Name                 string       `json:"name" bson:"name"`
	Phone                string       `json:"phone" bson:"phone"`
	FarmName             string       `json:"farm_name" bson:"farm_name"`
	LandSize             float64      `json:"land_size" bson:"land_size"`
	LandUnit             string       `json:"land_unit" bson:"land_unit"` // acres or hectares
	FarmingType          string       `json:"farming_type" bson:"farming_type"`
	PrimaryCrops         []string     `json:"primary_crops" bson:"primary_crops"`
	IrrigationType       string       `json:"irrigation_type" bson:"irrigation_type"`
	Address              string       `json:"address" bson:"address"`
	Pincode              string       `json:"pincode" bson:"pincode"`
	State                string       `json:"state" bson:"state"`
	District             string       `json:"district" bson:"district"`
	Coordinates          *Coordinates `json:"coordinates,omitempty" bson:"coordinates,omitempty"`
	AadhaarID            string       `json:"aadhaar_id,omitempty" bson:"aadhaar_id,omitempty"`
	PANNumber            string       `json:"pan_number,omitempty" bson:"pan_number,omitempty"`
	BankAccount          string       `json:"bank_account,omitempty" bson:"bank_account,omitempty"`
	IFSCCode             string       `json:"ifsc_code,omitempty" bson:"ifsc_code,omitempty"`
	InterestedProjects   []string     `json:"interested_projects" bson:"interested_projects"`
	SustainablePractices []string     `json:"sustainable_practices" bson:"sustainable_practices"`
	EstimatedIncome      int64        `json:"estimated_income" bson:"estimated_income"`
	CarbonCredits        float64      `json:"carbon_credits" bson:"carbon_credits"`
	CreatedAt            time.Time    `json:"created_at" bson:"created_at"`
	UpdatedAt            time.Time    `json:"updated_at" bson:"updated_at"`
}

// Coordinates represents a GPS position of the farm
type Coordinates struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
}

// FarmerRegistration carries the optional profile fields supplied at
// registration time; zero values fall back to defaults at creation.
type FarmerRegistration struct {
	Name                 string       `json:"name"`
	Phone                string       `json:"phone"`
	FarmName             string       `json:"farm_name"`
	LandSize             float64      `json:"land_size"`
	LandUnit             string       `json:"land_unit"`
	FarmingType          string       `json:"farming_type"`
	PrimaryCrops         []string     `json:"primary_crops"`
	IrrigationType       string       `json:"irrigation_type"`
	Address              string       `json:"address"`
	Pincode              string       `json:"pincode"`
	State                string       `json:"state"`
	District             string       `json:"district"`
	Coordinates          *Coordinates `json:"coordinates,omitempty"`
	AadhaarID            string       `json:"aadhaar_id"`
	PANNumber            string       `json:"pan_number"`
	BankAccount          string       `json:"bank_account"`
	IFSCCode             string       `json:"ifsc_code"`
	InterestedProjects   []string     `json:"interested_projects"`
	SustainablePractices []string     `json:"sustainable_practices"`
}

// FarmerUpdate is a partial update to a farmer profile. Pointer fields
// distinguish "not provided" from zero values.
type FarmerUpdate struct {
	Name                 *string      `json:"name,omitempty"`
	Phone                *string      `json:"phone,omitempty"`
	FarmName             *string      `json:"farm_name,omitempty"`
	LandSize             *float64     `json:"land_size,omitempty"`
	LandUnit             *string      `json:"land_unit,omitempty"`
	FarmingType          *string      `json:"farming_type,omitempty"`
	PrimaryCrops         []string     `json:"primary_crops,omitempty"`
	IrrigationType       *string      `json:"irrigation_type,omitempty"`
	Address              *string      `json:"address,omitempty"`
	Pincode              *string      `json:"pincode,omitempty"`
	State                *string      `json:"state,omitempty"`
	District             *string      `json:"district,omitempty"`
	Coordinates          *Coordinates `json:"coordinates,omitempty"`
	AadhaarID            *string      `json:"aadhaar_id,omitempty"`
	PANNumber            *string      `json:"pan_number,omitempty"`
	BankAccount          *string      `json:"bank_account,omitempty"`
	IFSCCode             *string      `json:"ifsc_code,omitempty"`
	InterestedProjects   []string     `json:"interested_projects,omitempty"`
	SustainablePractices []string     `json:"sustainable_practices,omitempty"`
}
