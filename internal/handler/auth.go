package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/google/uuid"

	"golang.org/x/crypto/bcrypt"
)

// Domaine email requis à l'inscription, injecté depuis la config au démarrage
// (vide = aucune restriction)
var AllowedEmailDomain string

// Register inscrit un nouvel utilisateur et retourne un token
func Register(w http.ResponseWriter, r *http.Request) {
	var req model.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" {
		utils.Error(w, http.StatusBadRequest, "username, email and password are required")
		return
	}

	// Inscription réservée au domaine configuré
	if AllowedEmailDomain != "" && !strings.HasSuffix(req.Email, "@"+AllowedEmailDomain) {
		utils.Error(w, http.StatusBadRequest,
			fmt.Sprintf("registration is only allowed with a %s email address", AllowedEmailDomain))
		return
	}

	ctx := context.Background()

	var exists bool
	err := database.DB.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE email = $1 OR username = $2)`,
		req.Email, req.Username,
	).Scan(&exists)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not check existing users: "+err.Error())
		return
	}
	if exists {
		utils.Error(w, http.StatusConflict, "user already exists")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not hash password")
		return
	}

	var user model.UserProfile
	err = database.DB.QueryRow(ctx, `
		INSERT INTO users (id, username, email, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id, username, email, is_admin, created_at, updated_at
	`, uuid.NewString(), req.Username, req.Email, string(hash)).Scan(
		&user.ID, &user.Username, &user.Email, &user.IsAdmin,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create user: "+err.Error())
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	utils.Created(w, model.AuthResponse{User: user, Token: token})
}

// Login authentifie un utilisateur et retourne un token
func Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()

	var user model.UserProfile
	var hashedPassword string
	err := database.DB.QueryRow(ctx, `
		SELECT id, username, email, is_admin, team_id, created_at, updated_at, password_hash
		FROM users WHERE email = $1
	`, req.Email).Scan(
		&user.ID, &user.Username, &user.Email, &user.IsAdmin, &user.TeamID,
		&user.CreatedAt, &user.UpdatedAt, &hashedPassword,
	)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(req.Password)); err != nil {
		utils.Error(w, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Username, user.IsAdmin)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not generate token")
		return
	}

	utils.Success(w, model.AuthResponse{User: user, Token: token})
}
