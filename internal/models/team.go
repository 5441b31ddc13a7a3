package model

import (
	"time"
)

type Team struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	ChallengeID string        `json:"challengeId"` // exactement un challenge, immuable
	TotalSteps  int64         `json:"totalSteps"`  // somme dénormalisée des entrées du ledger
	Members     []UserProfile `json:"members,omitempty"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"updatedAt"`
}

// CreateTeamRequest payload de création d'une équipe
type CreateTeamRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ChallengeID string `json:"challengeId"`
}

// AddMemberRequest payload d'ajout d'un membre à une équipe
type AddMemberRequest struct {
	UserID string `json:"userId"`
}
