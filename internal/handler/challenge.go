package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/progress"
	"github.com/Hankiiee/devstep/internal/scanner"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

const challengeColumns = `
	id, name, description,
	start_name, start_lat, start_lng,
	end_name, end_lat, end_lng,
	total_distance, conversion_rate, total_steps,
	start_date, end_date, is_active,
	min_team_size, max_team_size, milestones,
	created_at, updated_at`

// loadChallenge charge un challenge par id
func loadChallenge(ctx context.Context, id string) (*model.Challenge, error) {
	challenge, err := scanner.ScanChallenge(database.DB.QueryRow(ctx,
		`SELECT `+challengeColumns+` FROM challenges WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrChallengeNotFound
		}
		return nil, err
	}
	return challenge, nil
}

// CreateChallenge crée un nouveau challenge (admin)
func CreateChallenge(w http.ResponseWriter, r *http.Request) {
	var req model.CreateChallengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" {
		utils.Error(w, http.StatusBadRequest, "name is required")
		return
	}
	if req.TotalDistance <= 0 || req.ConversionRate <= 0 {
		utils.Error(w, http.StatusBadRequest, "totalDistance and conversionRate must be positive")
		return
	}
	if req.MaxTeamSize <= 0 {
		utils.Error(w, http.StatusBadRequest, "maxTeamSize must be positive")
		return
	}
	if !req.EndDate.After(req.StartDate) {
		utils.Error(w, http.StatusBadRequest, "endDate must be after startDate")
		return
	}

	// L'objectif dérive toujours de la distance et du taux de conversion
	totalSteps := progress.TotalSteps(req.TotalDistance, req.ConversionRate)

	milestones := req.Milestones
	if milestones == nil {
		milestones = []model.Milestone{}
	}
	milestonesJSON, err := json.Marshal(milestones)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid milestones")
		return
	}

	ctx := context.Background()

	challenge, err := scanner.ScanChallenge(database.DB.QueryRow(ctx, `
		INSERT INTO challenges (
			id, name, description,
			start_name, start_lat, start_lng,
			end_name, end_lat, end_lng,
			total_distance, conversion_rate, total_steps,
			start_date, end_date, min_team_size, max_team_size, milestones
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
		RETURNING `+challengeColumns,
		uuid.NewString(), req.Name, req.Description,
		req.StartLocation.Name, req.StartLocation.Latitude, req.StartLocation.Longitude,
		req.EndLocation.Name, req.EndLocation.Latitude, req.EndLocation.Longitude,
		req.TotalDistance, req.ConversionRate, totalSteps,
		req.StartDate, req.EndDate, req.MinTeamSize, req.MaxTeamSize, milestonesJSON,
	))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create challenge: "+err.Error())
		return
	}

	utils.Created(w, challenge)
}

// GetChallenges récupère tous les challenges
func GetChallenges(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	rows, err := database.DB.Query(ctx,
		`SELECT `+challengeColumns+` FROM challenges ORDER BY created_at`)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not query challenges: "+err.Error())
		return
	}
	defer rows.Close()

	challenges := []model.Challenge{}
	for rows.Next() {
		challenge, err := scanner.ScanChallenge(rows)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not scan challenge row: "+err.Error())
			return
		}
		challenges = append(challenges, *challenge)
	}

	utils.Success(w, challenges)
}

// GetChallengeById récupère un challenge par ID
func GetChallengeById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	challenge, err := loadChallenge(context.Background(), vars["id"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	utils.Success(w, challenge)
}

// UpdateChallenge met à jour un challenge (admin). L'objectif total_steps
// est recalculé dès que la distance ou le taux de conversion change.
func UpdateChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req model.UpdateChallengeRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()

	challenge, err := loadChallenge(ctx, vars["id"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	if req.Name != nil {
		challenge.Name = *req.Name
	}
	if req.Description != nil {
		challenge.Description = *req.Description
	}
	if req.StartLocation != nil {
		challenge.StartLocation = *req.StartLocation
	}
	if req.EndLocation != nil {
		challenge.EndLocation = *req.EndLocation
	}
	if req.TotalDistance != nil {
		challenge.TotalDistance = *req.TotalDistance
	}
	if req.ConversionRate != nil {
		challenge.ConversionRate = *req.ConversionRate
	}
	if req.StartDate != nil {
		challenge.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		challenge.EndDate = *req.EndDate
	}
	if req.IsActive != nil {
		challenge.IsActive = *req.IsActive
	}
	if req.MinTeamSize != nil {
		challenge.MinTeamSize = *req.MinTeamSize
	}
	if req.MaxTeamSize != nil {
		challenge.MaxTeamSize = *req.MaxTeamSize
	}
	if req.Milestones != nil {
		challenge.Milestones = *req.Milestones
	}

	// Invariant : total_steps = total_distance * conversion_rate
	challenge.TotalSteps = progress.TotalSteps(challenge.TotalDistance, challenge.ConversionRate)

	milestonesJSON, err := json.Marshal(challenge.Milestones)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid milestones")
		return
	}

	updated, err := scanner.ScanChallenge(database.DB.QueryRow(ctx, `
		UPDATE challenges SET
			name = $2, description = $3,
			start_name = $4, start_lat = $5, start_lng = $6,
			end_name = $7, end_lat = $8, end_lng = $9,
			total_distance = $10, conversion_rate = $11, total_steps = $12,
			start_date = $13, end_date = $14, is_active = $15,
			min_team_size = $16, max_team_size = $17, milestones = $18,
			updated_at = NOW()
		WHERE id = $1
		RETURNING `+challengeColumns,
		challenge.ID, challenge.Name, challenge.Description,
		challenge.StartLocation.Name, challenge.StartLocation.Latitude, challenge.StartLocation.Longitude,
		challenge.EndLocation.Name, challenge.EndLocation.Latitude, challenge.EndLocation.Longitude,
		challenge.TotalDistance, challenge.ConversionRate, challenge.TotalSteps,
		challenge.StartDate, challenge.EndDate, challenge.IsActive,
		challenge.MinTeamSize, challenge.MaxTeamSize, milestonesJSON,
	))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not update challenge: "+err.Error())
		return
	}

	utils.Success(w, updated)
}

// DeleteChallenge supprime un challenge (admin). Refusé tant que des
// équipes le référencent.
func DeleteChallenge(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	var teamsCount int
	err := database.DB.QueryRow(ctx,
		`SELECT COUNT(*) FROM teams WHERE challenge_id = $1`, vars["id"],
	).Scan(&teamsCount)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not count teams: "+err.Error())
		return
	}
	if teamsCount > 0 {
		utils.Error(w, http.StatusBadRequest, "cannot delete challenge with associated teams")
		return
	}

	res, err := database.DB.Exec(ctx, `DELETE FROM challenges WHERE id = $1`, vars["id"])
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not delete challenge: "+err.Error())
		return
	}
	if res.RowsAffected() == 0 {
		utils.ErrorFrom(w, model.ErrChallengeNotFound)
		return
	}

	utils.Message(w, "challenge removed")
}

// ToggleChallengeStatus démarre ou termine un challenge (admin)
func ToggleChallengeStatus(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	var isActive bool
	err := database.DB.QueryRow(ctx, `
		UPDATE challenges SET is_active = NOT is_active, updated_at = NOW()
		WHERE id = $1
		RETURNING is_active
	`, vars["id"]).Scan(&isActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			utils.ErrorFrom(w, model.ErrChallengeNotFound)
			return
		}
		utils.Error(w, http.StatusInternalServerError, "could not toggle challenge: "+err.Error())
		return
	}

	message := "challenge has been ended"
	if isActive {
		message = "challenge has been started"
	}

	utils.Success(w, map[string]interface{}{
		"isActive": isActive,
		"message":  message,
	})
}
