package handler

import (
	"context"
	"net/http"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/progress"
	"github.com/Hankiiee/devstep/internal/scanner"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/gorilla/mux"
)

// GetMapData construit la vue carte d'un challenge : chaque équipe et
// chaque point d'étape projetés sur la ligne départ → arrivée
func GetMapData(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	challenge, err := loadChallenge(ctx, vars["challengeId"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	// Ordre de création = ordre d'entrée stable pour les égalités
	rows, err := database.DB.Query(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE challenge_id = $1 ORDER BY created_at`,
		challenge.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query teams: "+err.Error())
		return
	}
	defer rows.Close()

	teams := []model.Team{}
	for rows.Next() {
		team, err := scanner.ScanTeam(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan team row: "+err.Error())
			return
		}
		teams = append(teams, *team)
	}

	utils.Success(w, progress.BuildMapView(*challenge, teams))
}
