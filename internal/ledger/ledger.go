// Package ledger gère les soumissions de pas : une entrée par (utilisateur,
// date), upsert avec delta signé, et application atomique du delta sur le
// total de l'équipe. Le total d'une équipe n'est jamais recalculé par un
// scan complet sur le chemin chaud.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

// Result résultat d'une soumission par lot. Les deltas sont cumulés par
// équipe d'attribution : la mise à jour d'une entrée historique crédite
// l'équipe capturée à l'époque, pas l'équipe actuelle de l'utilisateur.
type Result struct {
	Applied    []model.StepEntry
	Errors     []model.StepEntryError
	TeamDeltas map[string]int64
}

// validateEntry vérifie une entrée indépendamment du reste du lot
func validateEntry(input model.StepInput, challenge model.Challenge, now time.Time) (time.Time, error) {
	entryDate, err := time.ParseInLocation(dateLayout, input.Date, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid date format (expected YYYY-MM-DD)", model.ErrValidation)
	}

	if input.Steps < 0 {
		return time.Time{}, fmt.Errorf("%w: steps must be >= 0", model.ErrValidation)
	}
	if entryDate.Before(challenge.StartDate) {
		return time.Time{}, fmt.Errorf("%w: date is before challenge start date", model.ErrValidation)
	}
	if entryDate.After(challenge.EndDate) {
		return time.Time{}, fmt.Errorf("%w: date is after challenge end date", model.ErrValidation)
	}
	if entryDate.After(now) {
		return time.Time{}, fmt.Errorf("%w: cannot register steps for a future date", model.ErrValidation)
	}

	return entryDate, nil
}

// upsert crée ou écrase l'entrée (user, date) et retourne l'entrée avec le
// delta signé. Une seule instruction : l'ancienne valeur est lue dans le
// même snapshot que l'écriture. En cas de conflit, team_id et challenge_id
// de la ligne existante sont conservés (faits historiques immuables).
func upsert(ctx context.Context, user model.UserProfile, team model.Team, entryDate time.Time, steps int64) (model.StepEntry, int64, error) {
	var entry model.StepEntry
	var delta int64

	err := database.DB.QueryRow(ctx, `
		WITH previous AS (
			SELECT steps FROM step_entries
			WHERE user_id = $1 AND entry_date = $2
		)
		INSERT INTO step_entries (id, user_id, team_id, challenge_id, entry_date, steps)
		VALUES ($3, $1, $4, $5, $2, $6)
		ON CONFLICT (user_id, entry_date)
		DO UPDATE SET steps = EXCLUDED.steps, updated_at = NOW()
		RETURNING id, user_id, team_id, challenge_id, entry_date, steps,
			steps - COALESCE((SELECT steps FROM previous), 0),
			created_at, updated_at
	`, user.ID, entryDate, uuid.NewString(), team.ID, team.ChallengeID, steps).Scan(
		&entry.ID, &entry.UserID, &entry.TeamID, &entry.ChallengeID,
		&entry.Date, &entry.Steps, &delta, &entry.CreatedAt, &entry.UpdatedAt,
	)
	if err != nil {
		return model.StepEntry{}, 0, fmt.Errorf("could not upsert step entry: %w", err)
	}

	return entry, delta, nil
}

// Submit enregistre les pas d'un utilisateur pour une date et retourne le
// delta signé, pour que l'appelant ajuste les agrégats sans rescanner.
func Submit(ctx context.Context, user model.UserProfile, team model.Team, challenge model.Challenge, input model.StepInput) (model.StepEntry, int64, error) {
	if !challenge.IsActive {
		return model.StepEntry{}, 0, model.ErrChallengeInactive
	}

	entryDate, err := validateEntry(input, challenge, time.Now().UTC())
	if err != nil {
		return model.StepEntry{}, 0, err
	}

	return upsert(ctx, user, team, entryDate, input.Steps)
}

// SubmitBatch traite une séquence ordonnée d'entrées. Chaque entrée est
// validée indépendamment : un échec est ajouté à la liste d'erreurs sans
// interrompre le lot, les succès sont appliqués individuellement.
func SubmitBatch(ctx context.Context, user model.UserProfile, team model.Team, challenge model.Challenge, inputs []model.StepInput) (Result, error) {
	result := Result{TeamDeltas: map[string]int64{}}

	if user.TeamID == nil || *user.TeamID != team.ID {
		return result, model.ErrNoTeam
	}
	if !challenge.IsActive {
		return result, model.ErrChallengeInactive
	}

	now := time.Now().UTC()
	for _, input := range inputs {
		entryDate, err := validateEntry(input, challenge, now)
		if err != nil {
			result.Errors = append(result.Errors, model.StepEntryError{Date: input.Date, Error: err.Error()})
			continue
		}

		entry, delta, err := upsert(ctx, user, team, entryDate, input.Steps)
		if err != nil {
			result.Errors = append(result.Errors, model.StepEntryError{Date: input.Date, Error: err.Error()})
			continue
		}

		result.Applied = append(result.Applied, entry)
		result.TeamDeltas[entry.TeamID] += delta
	}

	if err := ApplyDeltas(ctx, result.TeamDeltas); err != nil {
		return result, err
	}

	return result, nil
}

// ApplyDeltas applique les deltas nets sur les totaux d'équipes.
// Incrément atomique côté stockage : les soumissions concurrentes pour une
// même équipe se sérialisent sans perte de mise à jour.
func ApplyDeltas(ctx context.Context, deltas map[string]int64) error {
	for teamID, delta := range deltas {
		if delta == 0 {
			continue
		}
		_, err := database.DB.Exec(ctx,
			`UPDATE teams SET total_steps = total_steps + $1, updated_at = NOW() WHERE id = $2`,
			delta, teamID,
		)
		if err != nil {
			return fmt.Errorf("could not update team total: %w", err)
		}
	}
	return nil
}

// TeamTotal relit le total courant d'une équipe
func TeamTotal(ctx context.Context, teamID string) (int64, error) {
	var total int64
	err := database.DB.QueryRow(ctx,
		`SELECT total_steps FROM teams WHERE id = $1`, teamID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("could not read team total: %w", err)
	}
	return total, nil
}
