package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/Hankiiee/devstep/internal/roster"
	"github.com/Hankiiee/devstep/internal/scanner"
	"github.com/Hankiiee/devstep/internal/utils"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5"
)

const teamColumns = `id, name, description, challenge_id, total_steps, created_at, updated_at`

// loadTeam charge une équipe par id
func loadTeam(ctx context.Context, id string) (*model.Team, error) {
	team, err := scanner.ScanTeam(database.DB.QueryRow(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = $1`, id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrTeamNotFound
		}
		return nil, err
	}
	return team, nil
}

// CreateTeam crée une nouvelle équipe rattachée à un challenge
func CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req model.CreateTeamRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.Name == "" || req.ChallengeID == "" {
		utils.Error(w, http.StatusBadRequest, "name and challengeId are required")
		return
	}

	ctx := context.Background()

	// Le challenge doit exister, la référence est immuable ensuite
	if _, err := loadChallenge(ctx, req.ChallengeID); err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	team, err := scanner.ScanTeam(database.DB.QueryRow(ctx, `
		INSERT INTO teams (id, name, description, challenge_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+teamColumns,
		uuid.NewString(), req.Name, req.Description, req.ChallengeID,
	))
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not create team: "+err.Error())
		return
	}

	utils.Created(w, team)
}

// GetTeams récupère toutes les équipes avec leurs membres
func GetTeams(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	rows, err := database.DB.Query(ctx,
		`SELECT `+teamColumns+` FROM teams ORDER BY created_at`)
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

	for i := range teams {
		members, err := roster.Members(ctx, teams[i].ID)
		if err != nil {
			utils.Error(w, http.StatusInternalServerError, "could not load members: "+err.Error())
			return
		}
		teams[i].Members = members
	}

	utils.Success(w, teams)
}

// GetTeamById récupère une équipe et son roster
func GetTeamById(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	team, err := loadTeam(ctx, vars["id"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	members, err := roster.Members(ctx, team.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load members: "+err.Error())
		return
	}
	team.Members = members

	utils.Success(w, team)
}

// AddTeamMember ajoute un membre à une équipe
func AddTeamMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	var req model.AddMemberRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		utils.Error(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.UserID == "" {
		utils.Error(w, http.StatusBadRequest, "userId is required")
		return
	}

	ctx := context.Background()

	if err := roster.AddMember(ctx, vars["id"], req.UserID); err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	team, err := loadTeam(ctx, vars["id"])
	if err != nil {
		utils.ErrorFrom(w, err)
		return
	}
	team.Members, err = roster.Members(ctx, team.ID)
	if err != nil {
		utils.Error(w, http.StatusInternalServerError, "could not load members: "+err.Error())
		return
	}

	utils.Success(w, team)
}

// RemoveTeamMember retire un membre d'une équipe
func RemoveTeamMember(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ctx := context.Background()

	if err := roster.RemoveMember(ctx, vars["id"], vars["userId"]); err != nil {
		utils.ErrorFrom(w, err)
		return
	}

	utils.Message(w, "member removed from team")
}
