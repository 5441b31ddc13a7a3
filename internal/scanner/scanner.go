package scanner

import (
	"encoding/json"
	"fmt"

	model "github.com/Hankiiee/devstep/internal/models"
)

// rowScanner abstraction minimale sur pgx.Row / pgx.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// ScanChallenge scanne une ligne SQL vers un Challenge.
// Colonnes attendues : id, name, description, start_name, start_lat,
// start_lng, end_name, end_lat, end_lng, total_distance, conversion_rate,
// total_steps, start_date, end_date, is_active, min_team_size,
// max_team_size, milestones, created_at, updated_at
func ScanChallenge(scanner rowScanner) (*model.Challenge, error) {
	var c model.Challenge
	var milestonesJSON []byte

	err := scanner.Scan(
		&c.ID, &c.Name, &c.Description,
		&c.StartLocation.Name, &c.StartLocation.Latitude, &c.StartLocation.Longitude,
		&c.EndLocation.Name, &c.EndLocation.Latitude, &c.EndLocation.Longitude,
		&c.TotalDistance, &c.ConversionRate, &c.TotalSteps,
		&c.StartDate, &c.EndDate, &c.IsActive,
		&c.MinTeamSize, &c.MaxTeamSize, &milestonesJSON,
		&c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(milestonesJSON) > 0 {
		if err := json.Unmarshal(milestonesJSON, &c.Milestones); err != nil {
			return nil, fmt.Errorf("could not decode milestones: %w", err)
		}
	}

	return &c, nil
}

// ScanTeam scanne une ligne SQL vers une Team.
// Colonnes : id, name, description, challenge_id, total_steps, created_at, updated_at
func ScanTeam(scanner rowScanner) (*model.Team, error) {
	var t model.Team

	err := scanner.Scan(
		&t.ID, &t.Name, &t.Description, &t.ChallengeID,
		&t.TotalSteps, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &t, nil
}

// ScanUserProfile scanne une ligne SQL vers un UserProfile.
// Colonnes : id, username, email, is_admin, team_id, created_at, updated_at
func ScanUserProfile(scanner rowScanner) (*model.UserProfile, error) {
	var u model.UserProfile

	err := scanner.Scan(
		&u.ID, &u.Username, &u.Email, &u.IsAdmin, &u.TeamID,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &u, nil
}

// ScanStepEntry scanne une ligne SQL vers une StepEntry.
// Colonnes : id, user_id, team_id, challenge_id, entry_date, steps, created_at, updated_at
func ScanStepEntry(scanner rowScanner) (*model.StepEntry, error) {
	var e model.StepEntry

	err := scanner.Scan(
		&e.ID, &e.UserID, &e.TeamID, &e.ChallengeID,
		&e.Date, &e.Steps, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &e, nil
}
