package model

import (
	"time"
)

// GeoPoint représente un point géographique nommé (départ, arrivée)
type GeoPoint struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Milestone est un point d'étape du parcours, positionné par le nombre de pas requis
type Milestone struct {
	Name          string  `json:"name"`
	Description   string  `json:"description,omitempty"`
	StepsRequired int64   `json:"stepsRequired"`
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
}

type Challenge struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	StartLocation  GeoPoint    `json:"startLocation"`
	EndLocation    GeoPoint    `json:"endLocation"`
	TotalDistance  float64     `json:"totalDistance"`  // en kilomètres
	TotalSteps     int64       `json:"totalSteps"`     // toujours totalDistance * conversionRate
	ConversionRate float64     `json:"conversionRate"` // pas par kilomètre
	StartDate      time.Time   `json:"startDate"`
	EndDate        time.Time   `json:"endDate"`
	IsActive       bool        `json:"isActive"`
	MinTeamSize    int         `json:"minTeamSize"`
	MaxTeamSize    int         `json:"maxTeamSize"`
	Milestones     []Milestone `json:"milestones,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
}

// CreateChallengeRequest payload de création d'un challenge
type CreateChallengeRequest struct {
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	StartLocation  GeoPoint    `json:"startLocation"`
	EndLocation    GeoPoint    `json:"endLocation"`
	TotalDistance  float64     `json:"totalDistance"`
	ConversionRate float64     `json:"conversionRate"`
	StartDate      time.Time   `json:"startDate"`
	EndDate        time.Time   `json:"endDate"`
	MinTeamSize    int         `json:"minTeamSize"`
	MaxTeamSize    int         `json:"maxTeamSize"`
	Milestones     []Milestone `json:"milestones,omitempty"`
}

// UpdateChallengeRequest payload de mise à jour (tous les champs optionnels)
type UpdateChallengeRequest struct {
	Name           *string      `json:"name,omitempty"`
	Description    *string      `json:"description,omitempty"`
	StartLocation  *GeoPoint    `json:"startLocation,omitempty"`
	EndLocation    *GeoPoint    `json:"endLocation,omitempty"`
	TotalDistance  *float64     `json:"totalDistance,omitempty"`
	ConversionRate *float64     `json:"conversionRate,omitempty"`
	StartDate      *time.Time   `json:"startDate,omitempty"`
	EndDate        *time.Time   `json:"endDate,omitempty"`
	IsActive       *bool        `json:"isActive,omitempty"`
	MinTeamSize    *int         `json:"minTeamSize,omitempty"`
	MaxTeamSize    *int         `json:"maxTeamSize,omitempty"`
	Milestones     *[]Milestone `json:"milestones,omitempty"`
}
