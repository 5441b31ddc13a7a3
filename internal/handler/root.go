package handler

import (
	"net/http"

	"github.com/Hankiiee/devstep/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "DevStep API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"auth": []map[string]string{
				{"method": "POST", "path": "/auth/register", "description": "Inscription utilisateur"},
				{"method": "POST", "path": "/auth/login", "description": "Connexion utilisateur"},
			},
			"users": []map[string]string{
				{"method": "GET", "path": "/users/profile", "description": "Profil de l'utilisateur connecté"},
				{"method": "PUT", "path": "/users/profile", "description": "Mettre à jour le profil"},
			},
			"challenges": []map[string]string{
				{"method": "GET", "path": "/challenges", "description": "Récupérer tous les challenges"},
				{"method": "GET", "path": "/challenges/{id}", "description": "Récupérer un challenge par ID"},
				{"method": "POST", "path": "/challenges", "description": "Créer un challenge (admin)"},
				{"method": "PUT", "path": "/challenges/{id}", "description": "Mettre à jour un challenge (admin)"},
				{"method": "DELETE", "path": "/challenges/{id}", "description": "Supprimer un challenge (admin)"},
				{"method": "PUT", "path": "/challenges/{id}/toggle-status", "description": "Démarrer ou terminer un challenge (admin)"},
			},
			"teams": []map[string]string{
				{"method": "GET", "path": "/teams", "description": "Récupérer toutes les équipes"},
				{"method": "GET", "path": "/teams/{id}", "description": "Récupérer une équipe par ID"},
				{"method": "POST", "path": "/teams", "description": "Créer une équipe"},
				{"method": "POST", "path": "/teams/{id}/members", "description": "Ajouter un membre à une équipe"},
				{"method": "DELETE", "path": "/teams/{id}/members/{userId}", "description": "Retirer un membre d'une équipe"},
			},
			"steps": []map[string]string{
				{"method": "POST", "path": "/steps", "description": "Enregistrer un lot de pas"},
				{"method": "GET", "path": "/steps/user", "description": "Pas de l'utilisateur connecté (params: from, to)"},
				{"method": "GET", "path": "/steps/team/{teamId}", "description": "Pas d'une équipe par jour (params: from, to)"},
			},
			"statistics": []map[string]string{
				{"method": "GET", "path": "/statistics/user", "description": "Statistiques de l'utilisateur connecté"},
				{"method": "GET", "path": "/statistics/team/{teamId}", "description": "Statistiques d'une équipe"},
				{"method": "GET", "path": "/statistics/challenge/{challengeId}", "description": "Statistiques d'un challenge"},
			},
			"map": []map[string]string{
				{"method": "GET", "path": "/map/{challengeId}", "description": "Vue carte d'un challenge (équipes + étapes)"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour DevStep - Challenge de marche virtuel par équipes",
		},
	}

	utils.Success(w, routes)
}

// HealthCheck répond que l'API est en vie
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Success(w, map[string]string{
		"status":  "ok",
		"message": "DevStep API is running",
	})
}
