package main

import (
	"net/http"
	"os"

	"github.com/Hankiiee/devstep/internal/api"
	"github.com/Hankiiee/devstep/internal/config"
	"github.com/Hankiiee/devstep/internal/database"
	"github.com/Hankiiee/devstep/internal/handler"
	"github.com/Hankiiee/devstep/internal/middleware"
	"github.com/Hankiiee/devstep/internal/utils"
)

func main() {
	// Chargement de la configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Could not load config: %v", err)
		os.Exit(1)
	}

	utils.InitJWT(cfg.JWTSecret, cfg.JWTExpiry)
	handler.AllowedEmailDomain = cfg.AllowedEmailDomain

	// Connexion à PostgreSQL
	db, err := database.ConnectPostgres(cfg)
	if err != nil {
		utils.LogError("Database connection failed: %v", err)
		os.Exit(1)
	}
	defer db.Close()

	// Application des migrations
	if err := database.Migrate(db); err != nil {
		utils.LogError("Migrations failed: %v", err)
		os.Exit(1)
	}

	// Initialisation des routes
	router := api.SetupRouter()

	// Middleware CORS autour du routeur
	srv := middleware.CORSMiddleware(router)

	utils.LogInfo("DevStep API starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, srv); err != nil {
		utils.LogError("Server failed: %v", err)
		os.Exit(1)
	}
}
