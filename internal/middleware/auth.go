package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/scanner"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/jackc/pgx/v5"
)

// Context keys
type contextKey string

const userContextKey = contextKey("user")

// AuthMiddleware valide le token JWT et injecte l'utilisateur dans le contexte
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			utils.Error(w, http.StatusUnauthorized, "missing authorization token")
			return
		}

		user, err := validateTokenAndGetUser(r.Context(), token)
		if err != nil {
			utils.Error(w, http.StatusUnauthorized, fmt.Sprintf("invalid token: %v", err))
			return
		}

		// Appeler le handler suivant avec le contexte enrichi
		ctx := context.WithValue(r.Context(), userContextKey, *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminMiddleware refuse la requête si l'utilisateur n'est pas administrateur
func AdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r)
		if err != nil || !user.IsAdmin {
			utils.Error(w, http.StatusForbidden, "admin access required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// validateTokenAndGetUser valide le token puis recharge l'utilisateur en
// base : le teamId du token peut être périmé, celui de la base fait foi
func validateTokenAndGetUser(ctx context.Context, token string) (*model.UserProfile, error) {
	claims, err := utils.ParseToken(token)
	if err != nil {
		return nil, err
	}

	user, err := scanner.ScanUserProfile(database.DB.QueryRow(ctx, `
		SELECT id, username, email, is_admin, team_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`, claims.UserID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("user no longer exists")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	return user, nil
}

// bearerToken extrait le token du header Authorization (préfixe Bearer optionnel)
func bearerToken(r *http.Request) string {
	token := r.Header.Get("Authorization")
	return strings.TrimPrefix(token, "Bearer ")
}

// GetUserFromContext récupère l'utilisateur depuis le contexte de la requête
func GetUserFromContext(r *http.Request) (model.UserProfile, error) {
	user, ok := r.Context().Value(userContextKey).(model.UserProfile)
	if !ok {
		return model.UserProfile{}, fmt.Errorf("user not found in context")
	}
	return user, nil
}
