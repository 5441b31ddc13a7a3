package api

import (
	"net/http"

	"github.com/Hankiiee/devstep/internal/handler"
	"github.com/Hankiiee/devstep/internal/middleware"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

// SetupRouter configure toutes les routes de l'API
func SetupRouter() http.Handler {
	r := mux.NewRouter()

	authenticatedRoutes := r.PathPrefix("/").Subrouter()
	authenticatedRoutes.Use(middleware.AuthMiddleware)
	authenticatedRoutes.Use(middleware.LoggerMiddleware)

	adminRoutes := r.PathPrefix("/").Subrouter()
	adminRoutes.Use(middleware.AuthMiddleware)
	adminRoutes.Use(middleware.AdminMiddleware)
	adminRoutes.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Auth
	r.HandleFunc("/auth/register", handler.Register).Methods(http.MethodPost)
	r.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)

	// Users
	authenticatedRoutes.HandleFunc("/users/profile", handler.GetProfile).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/users/profile", handler.UpdateProfile).Methods(http.MethodPut, http.MethodPatch)

	// Challenges
	r.HandleFunc("/challenges", handler.GetChallenges).Methods(http.MethodGet)
	r.HandleFunc("/challenges/{id}", handler.GetChallengeById).Methods(http.MethodGet)
	adminRoutes.HandleFunc("/challenges", handler.CreateChallenge).Methods(http.MethodPost)
	adminRoutes.HandleFunc("/challenges/{id}", handler.UpdateChallenge).Methods(http.MethodPut, http.MethodPatch)
	adminRoutes.HandleFunc("/challenges/{id}", handler.DeleteChallenge).Methods(http.MethodDelete)
	adminRoutes.HandleFunc("/challenges/{id}/toggle-status", handler.ToggleChallengeStatus).Methods(http.MethodPut)

	// Teams
	r.HandleFunc("/teams", handler.GetTeams).Methods(http.MethodGet)
	r.HandleFunc("/teams/{id}", handler.GetTeamById).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/teams", handler.CreateTeam).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/teams/{id}/members", handler.AddTeamMember).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/teams/{id}/members/{userId}", handler.RemoveTeamMember).Methods(http.MethodDelete)

	// Steps
	authenticatedRoutes.HandleFunc("/steps", handler.RegisterSteps).Methods(http.MethodPost)
	authenticatedRoutes.HandleFunc("/steps/user", handler.GetUserSteps).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/steps/team/{teamId}", handler.GetTeamSteps).Methods(http.MethodGet)

	// Statistics
	authenticatedRoutes.HandleFunc("/statistics/user", handler.GetUserStatistics).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/statistics/team/{teamId}", handler.GetTeamStatistics).Methods(http.MethodGet)
	authenticatedRoutes.HandleFunc("/statistics/challenge/{challengeId}", handler.GetChallengeStatistics).Methods(http.MethodGet)

	// Map
	r.HandleFunc("/map/{challengeId}", handler.GetMapData).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
