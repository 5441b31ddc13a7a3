package handler

import (
	"context"
	"net/http"

	"github.com/Hankiiee/devstep/internal/database"
	"github.com/Hankiiee/devstep/internal/ledger"
	"github.com/Hankiiee/devstep/internal/middleware"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/scanner"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/gorilla/mux"
)

// RegisterSteps enregistre un lot de pas pour l'utilisateur authentifié.
// Chaque entrée est validée indépendamment ; les échecs partent dans la
// liste d'erreurs sans interrompre le lot.
func RegisterSteps(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	var inputs []model.StepInput
	if err := utils.DecodeJSON(r, &inputs); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if user.TeamID == nil {
		utils.ErrorFrom(w, model.ErrNoTeam)
		return
	}

	ctx := context.Background()

	team, err := loadTeam(ctx, *user.TeamID)
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	challenge, err := loadChallenge(ctx, team.ChallengeID)
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	result, err := ledger.SubmitBatch(ctx, user, *team, *challenge, inputs)
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	teamTotal, err := ledger.TeamTotal(ctx, team.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, err.Error())
		return
	}

	applied := result.Applied
	if applied == nil {
		applied = []model.StepEntry{}
	}

	utils.Created(w, model.SubmitStepsResponse{
		Applied:        applied,
		Errors:         result.Errors,
		TeamTotalSteps: teamTotal,
	})
}

// dateFilter construit la clause de filtrage par dates optionnelles from/to
func dateFilter(r *http.Request, args []interface{}) (string, []interface{}) {
	query := r.URL.Query()
	clause := ""

	if from := query.Get("from"); from != "" {
		args = append(args, from)
		clause += ` AND entry_date >= $2`
	}
	if to := query.Get("to"); to != "" {
		args = append(args, to)
		if len(args) == 2 {
			clause += ` AND entry_date <= $2`
		} else {
			clause += ` AND entry_date <= $3`
		}
	}

	return clause, args
}

// GetUserSteps récupère les entrées de pas de l'utilisateur authentifié
func GetUserSteps(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	clause, args := dateFilter(r, []interface{}{user.ID})

	ctx := context.Background()
	rows, err := database.DB.Query(ctx, `
		SELECT id, user_id, team_id, challenge_id, entry_date, steps, created_at, updated_at
		FROM step_entries
		WHERE user_id = $1`+clause+`
		ORDER BY entry_date DESC
	`, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query steps: "+err.Error())
		return
	}
	defer rows.Close()

	entries := []model.StepEntry{}
	for rows.Next() {
		entry, err := scanner.ScanStepEntry(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan step entry: "+err.Error())
			return
		}
		entries = append(entries, *entry)
	}

	utils.Success(w, entries)
}

// GetTeamSteps récupère les pas d'une équipe groupés par date calendaire
func GetTeamSteps(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	team, err := loadTeam(ctx, vars["teamId"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	clause, args := dateFilter(r, []interface{}{team.ID})

	// Total de pas par date (UTC, granularité jour)
	rows, err := database.DB.Query(ctx, `
		SELECT to_char(entry_date, 'YYYY-MM-DD'), SUM(steps)
		FROM step_entries
		WHERE team_id = $1`+clause+`
		GROUP BY entry_date
		ORDER BY entry_date DESC
	`, args...)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query team steps: "+err.Error())
		return
	}
	defer rows.Close()

	daily := []model.DailySteps{}
	for rows.Next() {
		var d model.DailySteps
		if err := rows.Scan(&d.Date, &d.Steps); err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan daily steps: "+err.Error())
			return
		}
		daily = append(daily, d)
	}

	utils.Success(w, map[string]interface{}{
		"teamId":     team.ID,
		"teamName":   team.Name,
		"totalSteps": team.TotalSteps,
		"dailySteps": daily,
	})
}
