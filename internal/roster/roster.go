// Package roster fait respecter les invariants d'effectif : un utilisateur
// appartient à au plus une équipe, et une équipe ne dépasse jamais la
// taille maximale de son challenge.
package roster

import (
	"context"
	"errors"
	"fmt"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/jackc/pgx/v5"
)

// AddMember ajoute un utilisateur à une équipe. La ligne de l'équipe est
// verrouillée avant la vérification d'effectif : deux ajouts concurrents se
// sérialisent et ne peuvent pas dépasser la capacité. L'ajout au roster et
// la référence d'équipe de l'utilisateur forment une unité atomique.
func AddMember(ctx context.Context, teamID, userID string) error {
	tx, err := database.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// Verrou sur l'équipe : point de sérialisation des mutations de roster
	var challengeID string
	err = tx.QueryRow(ctx,
		`SELECT challenge_id FROM teams WHERE id = $1 FOR UPDATE`, teamID,
	).Scan(&challengeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrTeamNotFound
		}
		return fmt.Errorf("could not lock team: %w", err)
	}

	var maxTeamSize int
	err = tx.QueryRow(ctx,
		`SELECT max_team_size FROM challenges WHERE id = $1`, challengeID,
	).Scan(&maxTeamSize)
	if err != nil {
		return fmt.Errorf("could not load challenge: %w", err)
	}

	var size int
	err = tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM users WHERE team_id = $1`, teamID,
	).Scan(&size)
	if err != nil {
		return fmt.Errorf("could not count members: %w", err)
	}
	if size >= maxTeamSize {
		return model.ErrTeamFull
	}

	// Mise à jour conditionnelle : échoue si l'utilisateur a déjà une équipe
	res, err := tx.Exec(ctx,
		`UPDATE users SET team_id = $1, updated_at = NOW() WHERE id = $2 AND team_id IS NULL`,
		teamID, userID,
	)
	if err != nil {
		return fmt.Errorf("could not add member: %w", err)
	}
	if res.RowsAffected() == 0 {
		var exists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM users WHERE id = $1)`, userID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("could not check user: %w", err)
		}
		if !exists {
			return model.ErrUserNotFound
		}
		return model.ErrAlreadyInTeam
	}

	return tx.Commit(ctx)
}

// RemoveMember retire un utilisateur du roster et efface sa référence
// d'équipe, atomiquement. La taille minimale n'est volontairement pas
// vérifiée ici : une équipe peut passer sous le minimum (comportement assumé).
func RemoveMember(ctx context.Context, teamID, userID string) error {
	tx, err := database.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("could not begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var lockedID string
	err = tx.QueryRow(ctx,
		`SELECT id FROM teams WHERE id = $1 FOR UPDATE`, teamID,
	).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrTeamNotFound
		}
		return fmt.Errorf("could not lock team: %w", err)
	}

	res, err := tx.Exec(ctx,
		`UPDATE users SET team_id = NULL, updated_at = NOW() WHERE id = $1 AND team_id = $2`,
		userID, teamID,
	)
	if err != nil {
		return fmt.Errorf("could not remove member: %w", err)
	}
	if res.RowsAffected() == 0 {
		return model.ErrNotAMember
	}

	return tx.Commit(ctx)
}

// Members liste les membres d'une équipe
func Members(ctx context.Context, teamID string) ([]model.UserProfile, error) {
	rows, err := database.DB.Query(ctx, `
		SELECT id, username, email, is_admin, team_id, created_at, updated_at
		FROM users
		WHERE team_id = $1
		ORDER BY username
	`, teamID)
	if err != nil {
		return nil, fmt.Errorf("could not list members: %w", err)
	}
	defer rows.Close()

	var members []model.UserProfile
	for rows.Next() {
		var member model.UserProfile
		if err := rows.Scan(
			&member.ID, &member.Username, &member.Email, &member.IsAdmin,
			&member.TeamID, &member.CreatedAt, &member.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("could not scan member: %w", err)
		}
		members = append(members, member)
	}

	return members, rows.Err()
}
