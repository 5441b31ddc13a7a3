package roster

/*
Tests via un conteneur PostgreSQL éphémère.
Vérifie :
	1. Ajout d'un membre : team_id de l'utilisateur renseigné
	2. Capacité maximale : le membre de trop est refusé, l'effectif reste plafonné
	3. Un utilisateur ne peut appartenir qu'à une seule équipe
	4. Retrait d'un membre : team_id effacé
	5. Retrait d'un non-membre refusé
*/

import (
	"context"
	"testing"
	"time"

	"github.com/Hankiiee/devstep/internal/database"
	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("devstep_test"),
		postgres.WithUsername("test_user"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2),
		),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, container.Terminate(ctx))
	})

	connStr, err := container.ConnectionString(ctx)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	_, err = pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS challenges (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			min_team_size INT NOT NULL DEFAULT 1,
			max_team_size INT NOT NULL
		);

		CREATE TABLE IF NOT EXISTS teams (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			challenge_id UUID NOT NULL REFERENCES challenges(id),
			total_steps BIGINT NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username TEXT NOT NULL UNIQUE,
			email TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			is_admin BOOLEAN NOT NULL DEFAULT false,
			team_id UUID REFERENCES teams(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE INDEX IF NOT EXISTS idx_users_team ON users(team_id);
	`)
	require.NoError(t, err)

	database.DB = pool
	return pool
}

func seedChallenge(t *testing.T, pool *pgxpool.Pool, maxTeamSize int) string {
	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO challenges (id, name, min_team_size, max_team_size) VALUES ($1, $2, 2, $3)`,
		id, "challenge-"+id[:8], maxTeamSize)
	require.NoError(t, err)
	return id
}

func seedTeam(t *testing.T, pool *pgxpool.Pool, challengeID string) string {
	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO teams (id, name, challenge_id) VALUES ($1, $2, $3)`,
		id, "team-"+id[:8], challengeID)
	require.NoError(t, err)
	return id
}

func seedUser(t *testing.T, pool *pgxpool.Pool, teamID *string) string {
	id := uuid.NewString()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO users (id, username, email, password_hash, team_id) VALUES ($1, $2, $3, 'hash', $4)`,
		id, "user-"+id[:8], "user-"+id[:8]+"@devoteam.com", teamID)
	require.NoError(t, err)
	return id
}

func TestAddMember_Success(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	challengeID := seedChallenge(t, pool, 6)
	teamID := seedTeam(t, pool, challengeID)
	userID := seedUser(t, pool, nil)

	err := AddMember(ctx, teamID, userID)
	require.NoError(t, err)

	var got *string
	err = pool.QueryRow(ctx, `SELECT team_id FROM users WHERE id = $1`, userID).Scan(&got)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, teamID, *got)
}

func TestAddMember_TeamFull(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	challengeID := seedChallenge(t, pool, 3)
	teamID := seedTeam(t, pool, challengeID)

	for i := 0; i < 3; i++ {
		userID := seedUser(t, pool, nil)
		require.NoError(t, AddMember(ctx, teamID, userID))
	}

	extraID := seedUser(t, pool, nil)
	err := AddMember(ctx, teamID, extraID)
	assert.ErrorIs(t, err, model.ErrTeamFull)

	// L'effectif reste plafonné et le refus n'a laissé aucune trace
	members, err := Members(ctx, teamID)
	require.NoError(t, err)
	assert.Len(t, members, 3)
}

func TestAddMember_AlreadyInTeam(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	challengeID := seedChallenge(t, pool, 6)
	firstTeam := seedTeam(t, pool, challengeID)
	secondTeam := seedTeam(t, pool, challengeID)
	userID := seedUser(t, pool, nil)

	require.NoError(t, AddMember(ctx, firstTeam, userID))

	err := AddMember(ctx, secondTeam, userID)
	assert.ErrorIs(t, err, model.ErrAlreadyInTeam)

	// L'utilisateur est resté dans sa première équipe
	var got *string
	err = pool.QueryRow(ctx, `SELECT team_id FROM users WHERE id = $1`, userID).Scan(&got)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, firstTeam, *got)
}

func TestAddMember_UserNotFound(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	challengeID := seedChallenge(t, pool, 6)
	teamID := seedTeam(t, pool, challengeID)

	err := AddMember(ctx, teamID, uuid.NewString())
	assert.ErrorIs(t, err, model.ErrUserNotFound)
}

func TestAddMember_TeamNotFound(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	userID := seedUser(t, pool, nil)

	err := AddMember(ctx, uuid.NewString(), userID)
	assert.ErrorIs(t, err, model.ErrTeamNotFound)
}

func TestRemoveMember_Success(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	challengeID := seedChallenge(t, pool, 6)
	teamID := seedTeam(t, pool, challengeID)
	userID := seedUser(t, pool, nil)
	require.NoError(t, AddMember(ctx, teamID, userID))

	err := RemoveMember(ctx, teamID, userID)
	require.NoError(t, err)

	var got *string
	err = pool.QueryRow(ctx, `SELECT team_id FROM users WHERE id = $1`, userID).Scan(&got)
	require.NoError(t, err)
	assert.Nil(t, got)

	// L'utilisateur peut rejoindre une autre équipe ensuite
	otherTeam := seedTeam(t, pool, challengeID)
	assert.NoError(t, AddMember(ctx, otherTeam, userID))
}

func TestRemoveMember_NotAMember(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	challengeID := seedChallenge(t, pool, 6)
	teamID := seedTeam(t, pool, challengeID)
	otherTeam := seedTeam(t, pool, challengeID)
	userID := seedUser(t, pool, nil)
	require.NoError(t, AddMember(ctx, otherTeam, userID))

	err := RemoveMember(ctx, teamID, userID)
	assert.ErrorIs(t, err, model.ErrNotAMember)
}

func TestAddMember_ConcurrentCapacity(t *testing.T) {
	pool := setupTestDB(t)
	ctx := context.Background()

	challengeID := seedChallenge(t, pool, 4)
	teamID := seedTeam(t, pool, challengeID)

	userIDs := make([]string, 8)
	for i := range userIDs {
		userIDs[i] = seedUser(t, pool, nil)
	}

	errs := make(chan error, len(userIDs))
	for _, userID := range userIDs {
		go func(id string) {
			errs <- AddMember(ctx, teamID, id)
		}(userID)
	}

	var accepted, rejected int
	for range userIDs {
		select {
		case err := <-errs:
			if err == nil {
				accepted++
			} else {
				assert.ErrorIs(t, err, model.ErrTeamFull)
				rejected++
			}
		case <-time.After(30 * time.Second):
			t.Fatal("timeout waiting for concurrent AddMember calls")
		}
	}

	assert.Equal(t, 4, accepted)
	assert.Equal(t, 4, rejected)

	members, err := Members(ctx, teamID)
	require.NoError(t, err)
	assert.Len(t, members, 4)
}
