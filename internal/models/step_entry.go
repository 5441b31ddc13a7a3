package model

import (
	"time"
)

// StepEntry enregistre les pas d'un utilisateur pour une date calendaire.
// L'équipe et le challenge sont capturés à la soumission : un changement
// d'équipe ultérieur ne réattribue jamais l'historique.
type StepEntry struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	TeamID      string    `json:"teamId"`
	ChallengeID string    `json:"challengeId"`
	Date        time.Time `json:"date"`
	Steps       int64     `json:"steps"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// StepInput une paire (date, pas) soumise par l'utilisateur
type StepInput struct {
	Date  string `json:"date"` // format YYYY-MM-DD
	Steps int64  `json:"steps"`
}

// StepEntryError erreur isolée pour une entrée d'un lot
type StepEntryError struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

// SubmitStepsResponse résultat d'une soumission par lot
type SubmitStepsResponse struct {
	Applied        []StepEntry      `json:"applied"`
	Errors         []StepEntryError `json:"errors,omitempty"`
	TeamTotalSteps int64            `json:"teamTotalSteps"`
}

// DailySteps total de pas pour une date calendaire (UTC)
type DailySteps struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Steps int64  `json:"steps"`
}
