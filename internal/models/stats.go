package model

// UserStatistics résumé des pas d'un utilisateur
type UserStatistics struct {
	TotalSteps         int64        `json:"totalSteps"`
	AverageStepsPerDay int64        `json:"averageStepsPerDay"`
	DailySteps         []DailySteps `json:"dailySteps"`
}

// TeamStatistics résumé des pas d'une équipe
type TeamStatistics struct {
	TeamID             string       `json:"teamId"`
	TeamName           string       `json:"teamName"`
	TotalSteps         int64        `json:"totalSteps"`
	PercentOfGoal      float64      `json:"percentOfGoal"`
	AverageStepsPerDay int64        `json:"averageStepsPerDay"`
	DailySteps         []DailySteps `json:"dailySteps"`
}

// ChallengeStatistics résumé d'un challenge, équipes classées par total décroissant
type ChallengeStatistics struct {
	ChallengeID     string           `json:"challengeId"`
	ChallengeName   string           `json:"challengeName"`
	TotalSteps      int64            `json:"totalSteps"`
	GoalSteps       int64            `json:"goalSteps"`
	PercentComplete float64          `json:"percentComplete"`
	TeamStatistics  []TeamStatistics `json:"teamStatistics"`
}

// Position point (lat, lng) projeté sur la ligne du parcours
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TeamMapView progression d'une équipe projetée sur la carte
type TeamMapView struct {
	TeamID          string   `json:"teamId"`
	TeamName        string   `json:"teamName"`
	TotalSteps      int64    `json:"totalSteps"`
	ProgressPercent float64  `json:"progressPercent"`
	DistanceCovered float64  `json:"distanceCovered"` // en kilomètres
	Position        Position `json:"position"`
}

// MilestoneMapView point d'étape projeté sur la carte
type MilestoneMapView struct {
	Name            string   `json:"name"`
	Description     string   `json:"description,omitempty"`
	StepsRequired   int64    `json:"stepsRequired"`
	ProgressPercent float64  `json:"progressPercent"`
	Position        Position `json:"position"`
}

// MapView vue carte complète d'un challenge
type MapView struct {
	ChallengeID   string             `json:"challengeId"`
	ChallengeName string             `json:"challengeName"`
	StartLocation GeoPoint           `json:"startLocation"`
	EndLocation   GeoPoint           `json:"endLocation"`
	TotalDistance float64            `json:"totalDistance"`
	TotalSteps    int64              `json:"totalSteps"`
	Teams         []TeamMapView      `json:"teams"`
	Milestones    []MilestoneMapView `json:"milestones"`
}
