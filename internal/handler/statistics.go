package handler

import (
	"context"
	"net/http"

	"github.com/Hankiiee/devstep/internal/database"
	"github.com/Hankiiee/devstep/internal/middleware"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/progress"
	"github.com/Hankiiee/devstep/internal/scanner"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/gorilla/mux"
)

// dailyRollup agrège les pas par date calendaire pour un filtre donné
// (user_id ou team_id). Seuls les jours renseignés comptent dans la moyenne.
func dailyRollup(ctx context.Context, column, id string) ([]model.DailySteps, int64, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT to_char(entry_date, 'YYYY-MM-DD'), SUM(steps)
		FROM step_entries
		WHERE `+column+` = $1
		GROUP BY entry_date
		ORDER BY entry_date
	`, id)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	daily := []model.DailySteps{}
	var total int64
	for rows.Next() {
		var d model.DailySteps
		if err := rows.Scan(&d.Date, &d.Steps); err != nil {
			return nil, 0, err
		}
		daily = append(daily, d)
		total += d.Steps
	}

	return daily, total, rows.Err()
}

// GetUserStatistics statistiques de l'utilisateur authentifié
func GetUserStatistics(w http.ResponseWriter, r *http.Request) {
	user, err := middleware.GetUserFromContext(r)
	if err != nil {
		utils.Error(w, http.StatusUnauthorized, "not authenticated")
		return
	}

	daily, total, err := dailyRollup(context.Background(), "user_id", user.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute statistics: "+err.Error())
		return
	}

	utils.Success(w, model.UserStatistics{
		TotalSteps:         total,
		AverageStepsPerDay: progress.AveragePerDay(total, len(daily)),
		DailySteps:         daily,
	})
}

// teamStatistics construit les statistiques d'une équipe dans son challenge
func teamStatistics(ctx context.Context, team model.Team, goalSteps int64) (model.TeamStatistics, error) {
	daily, _, err := dailyRollup(ctx, "team_id", team.ID)
	if err != nil {
		return model.TeamStatistics{}, err
	}

	return model.TeamStatistics{
		TeamID:             team.ID,
		TeamName:           team.Name,
		TotalSteps:         team.TotalSteps,
		PercentOfGoal:      progress.Percent(team.TotalSteps, goalSteps),
		AverageStepsPerDay: progress.AveragePerDay(team.TotalSteps, len(daily)),
		DailySteps:         daily,
	}, nil
}

// GetTeamStatistics statistiques d'une équipe
func GetTeamStatistics(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	team, err := loadTeam(ctx, vars["teamId"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	challenge, err := loadChallenge(ctx, team.ChallengeID)
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	stats, err := teamStatistics(ctx, *team, challenge.TotalSteps)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not compute statistics: "+err.Error())
		return
	}

	utils.Success(w, stats)
}

// GetChallengeStatistics statistiques d'un challenge : somme des totaux
// d'équipes, pourcentage d'objectif, équipes classées par total décroissant
// (égalités dans l'ordre de création)
func GetChallengeStatistics(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	challenge, err := loadChallenge(ctx, vars["challengeId"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

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

	var totalSteps int64
	teamStats := []model.TeamStatistics{}
	for _, team := range teams {
		totalSteps += team.TotalSteps
		stats, err := teamStatistics(ctx, team, challenge.TotalSteps)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not compute statistics: "+err.Error())
			return
		}
		teamStats = append(teamStats, stats)
	}

	progress.RankTeamStats(teamStats)

	utils.Success(w, model.ChallengeStatistics{
		ChallengeID:     challenge.ID,
		ChallengeName:   challenge.Name,
		TotalSteps:      totalSteps,
		GoalSteps:       challenge.TotalSteps,
		PercentComplete: progress.Percent(totalSteps, challenge.TotalSteps),
		TeamStatistics:  teamStats,
	})
}
