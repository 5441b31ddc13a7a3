package handler

import (
	"context"
	"net/http"

	"github.com/Hankiiee/devstep/internal/database"
	"github.com/Hankiiee/devstep/internal/middleware"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/utils"

	"golang.org/x/crypto/bcrypt"
)

// GetProfile retourne le profil de l'utilisateur authentifié
func GetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	utils.Success(w, user)
}

type updateProfileRequest struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password *string `json:"password,omitempty"`
}

// UpdateProfile met à jour le profil de l'utilisateur authentifié
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var req updateProfileRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()

	if req.Username != nil {
		user.Username = *req.Username
	}
	if req.Email != nil {
		user.Email = *req.Email
	}

	// Mot de passe re-haché uniquement s'il est fourni
	passwordHash := ""
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not hash password")
			return
		}
		passwordHash = string(hash)
	}

	var updated model.UserProfile
	err = database.DB.QueryRow(ctx, `
		UPDATE users
		SET username = $2,
			email = $3,
			password_hash = CASE WHEN $4 <> '' THEN $4 ELSE password_hash END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, username, email, is_admin, team_id, created_at, updated_at
	`, user.ID, user.Username, user.Email, passwordHash).Scan(
		&updated.ID, &updated.Username, &updated.Email, &updated.IsAdmin,
		&updated.TeamID, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update profile: "+err.Error())
		return
	}

	token, err := utils.GenerateToken(updated.ID, updated.Username, updated.IsAdmin)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	utils.Success(w, model.AuthResponse{User: updated, Token: token})
}
