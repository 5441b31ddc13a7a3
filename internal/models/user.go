package model

import (
	"time"
)

type UserProfile struct {
	ID        string    `json:"id,omitempty"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"isAdmin"`
	TeamID    *string   `json:"teamId,omitempty"` // au plus une équipe à la fois
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}

// RegisterRequest payload d'inscription
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse réponse renvoyée après inscription/connexion
type AuthResponse struct {
	User  UserProfile `json:"user"`
	Token string      `json:"token"`
}
