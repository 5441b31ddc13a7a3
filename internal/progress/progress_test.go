package progress

import (
	"testing"
	"time"

	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Challenge de référence : Londres → Édimbourg, 534 km à 1500 pas/km
func londonChallenge() model.Challenge {
	return model.Challenge{
		ID:   "c1",
		Name: "London to Edinburgh Challenge",
		StartLocation: model.GeoPoint{
			Name: "London", Latitude: 51.5074, Longitude: -0.1278,
		},
		EndLocation: model.GeoPoint{
			Name: "Edinburgh", Latitude: 55.9533, Longitude: -3.1883,
		},
		TotalDistance:  534,
		ConversionRate: 1500,
		TotalSteps:     801000,
		StartDate:      time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		EndDate:        time.Date(2025, 4, 30, 0, 0, 0, 0, time.UTC),
		IsActive:       true,
	}
}

func TestTotalSteps(t *testing.T) {
	assert.Equal(t, int64(801000), TotalSteps(534, 1500))
}

func TestFraction(t *testing.T) {
	assert.Equal(t, 0.5, Fraction(400500, 801000))
	// Une équipe au-delà de l'objectif reste bornée à 1
	assert.Equal(t, 1.0, Fraction(900000, 801000))
	// Objectif nul : 0, pas d'erreur
	assert.Equal(t, 0.0, Fraction(1000, 0))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, 50.0, Percent(400500, 801000))
	// Non borné pour les rapports
	assert.InDelta(t, 112.36, Percent(900000, 801000), 0.01)
	assert.Equal(t, 0.0, Percent(1000, 0))
}

func TestAveragePerDay(t *testing.T) {
	// {10-01: 1000, 10-03: 2000} → 2 jours renseignés, moyenne 1500
	assert.Equal(t, int64(1500), AveragePerDay(3000, 2))
	assert.Equal(t, int64(0), AveragePerDay(0, 0))
	// Arrondi au plus proche
	assert.Equal(t, int64(667), AveragePerDay(2000, 3))
}

func TestProjectTeam(t *testing.T) {
	challenge := londonChallenge()
	team := model.Team{ID: "t1", Name: "Les Marcheurs", TotalSteps: 400500}

	view := ProjectTeam(team, challenge)

	assert.Equal(t, 50.0, view.ProgressPercent)
	assert.Equal(t, 267.0, view.DistanceCovered)
	assert.InDelta(t, 53.73035, view.Position.Latitude, 1e-9)
	assert.InDelta(t, -1.65805, view.Position.Longitude, 1e-9)
}

func TestProjectTeam_ClampedBeyondGoal(t *testing.T) {
	challenge := londonChallenge()
	team := model.Team{ID: "t1", Name: "Les Rapides", TotalSteps: 900000}

	view := ProjectTeam(team, challenge)

	// La fraction est bornée même quand le total dépasse l'objectif
	assert.Equal(t, 100.0, view.ProgressPercent)
	assert.Equal(t, 534.0, view.DistanceCovered)
	assert.Equal(t, challenge.EndLocation.Latitude, view.Position.Latitude)
	assert.Equal(t, challenge.EndLocation.Longitude, view.Position.Longitude)
}

func TestProjectMilestones_UnclampedPercent(t *testing.T) {
	challenge := londonChallenge()
	challenge.Milestones = []model.Milestone{
		{Name: "Birmingham", StepsRequired: 244500},
		// Point d'étape mal configuré : au-delà de l'objectif
		{Name: "Trop loin", StepsRequired: 900000},
	}

	views := ProjectMilestones(challenge)
	require.Len(t, views, 2)

	assert.InDelta(t, 30.52, views[0].ProgressPercent, 0.01)
	// Le pourcentage dépasse 100 et signale le problème de données
	assert.Greater(t, views[1].ProgressPercent, 100.0)
	// La position reste sur le segment (même interpolateur que les équipes)
	assert.Equal(t, challenge.EndLocation.Latitude, views[1].Position.Latitude)
}

func TestBuildMapView_SortsTeamsByProgress(t *testing.T) {
	challenge := londonChallenge()
	teams := []model.Team{
		{ID: "t1", Name: "A", TotalSteps: 100},
		{ID: "t2", Name: "B", TotalSteps: 5000},
		{ID: "t3", Name: "C", TotalSteps: 5000}, // égalité avec B
		{ID: "t4", Name: "D", TotalSteps: 300},
	}

	view := BuildMapView(challenge, teams)
	require.Len(t, view.Teams, 4)

	assert.Equal(t, "t2", view.Teams[0].TeamID)
	// Tri stable : B reste devant C à égalité
	assert.Equal(t, "t3", view.Teams[1].TeamID)
	assert.Equal(t, "t4", view.Teams[2].TeamID)
	assert.Equal(t, "t1", view.Teams[3].TeamID)
}

func TestRankTeamStats_StableTies(t *testing.T) {
	stats := []model.TeamStatistics{
		{TeamID: "t1", TotalSteps: 200},
		{TeamID: "t2", TotalSteps: 500},
		{TeamID: "t3", TotalSteps: 200},
	}

	RankTeamStats(stats)

	assert.Equal(t, "t2", stats[0].TeamID)
	assert.Equal(t, "t1", stats[1].TeamID)
	assert.Equal(t, "t3", stats[2].TeamID)
}
