// Package progress contient les règles de calcul de progression : fractions
// et pourcentages d'objectif, moyennes journalières, classement des équipes
// et projection carte d'un challenge.
package progress

import (
	"math"
	"sort"

	"github.com/Hankiiee/devstep/internal/geo"
	model "github.com/Hankiiee/devstep/internal/models"
)

// Fraction retourne min(1, steps/goal). Un objectif nul donne 0, pas une erreur.
func Fraction(steps, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	f := float64(steps) / float64(goal)
	if f > 1 {
		return 1
	}
	return f
}

// Percent retourne steps/goal*100 sans borne supérieure, pour les rapports.
// Un objectif nul donne 0.
func Percent(steps, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(steps) / float64(goal) * 100
}

// MilestoneFraction retourne stepsRequired/goal, volontairement non bornée :
// un point d'étape mal configuré (au-delà de l'objectif) se voit dans la
// valeur plutôt que d'être masqué.
func MilestoneFraction(stepsRequired, goal int64) float64 {
	if goal <= 0 {
		return 0
	}
	return float64(stepsRequired) / float64(goal)
}

// AveragePerDay moyenne arrondie sur les jours renseignés uniquement.
// Aucun jour renseigné donne 0.
func AveragePerDay(total int64, days int) int64 {
	if days <= 0 {
		return 0
	}
	return int64(math.Round(float64(total) / float64(days)))
}

// TotalSteps calcule l'objectif d'un challenge : distance * taux de conversion
func TotalSteps(totalDistance, conversionRate float64) int64 {
	return int64(totalDistance * conversionRate)
}

// RankTeamStats trie les statistiques d'équipes par total décroissant.
// Tri stable : les égalités conservent l'ordre d'entrée.
func RankTeamStats(stats []model.TeamStatistics) {
	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].TotalSteps > stats[j].TotalSteps
	})
}

// ProjectTeam projette la progression d'une équipe sur la ligne du challenge
func ProjectTeam(team model.Team, challenge model.Challenge) model.TeamMapView {
	fraction := Fraction(team.TotalSteps, challenge.TotalSteps)

	return model.TeamMapView{
		TeamID:          team.ID,
		TeamName:        team.Name,
		TotalSteps:      team.TotalSteps,
		ProgressPercent: fraction * 100,
		DistanceCovered: fraction * challenge.TotalDistance,
		Position:        geo.PointBetween(challenge.StartLocation, challenge.EndLocation, fraction),
	}
}

// ProjectMilestones projette les points d'étape d'un challenge sur la carte.
// Le pourcentage n'est pas borné ; la position, elle, passe par le même
// interpolateur que les équipes et reste donc sur le segment.
func ProjectMilestones(challenge model.Challenge) []model.MilestoneMapView {
	views := make([]model.MilestoneMapView, 0, len(challenge.Milestones))
	for _, m := range challenge.Milestones {
		fraction := MilestoneFraction(m.StepsRequired, challenge.TotalSteps)
		views = append(views, model.MilestoneMapView{
			Name:            m.Name,
			Description:     m.Description,
			StepsRequired:   m.StepsRequired,
			ProgressPercent: fraction * 100,
			Position:        geo.PointBetween(challenge.StartLocation, challenge.EndLocation, fraction),
		})
	}
	return views
}

// BuildMapView assemble la vue carte complète d'un challenge. Les équipes
// sont classées par progression décroissante, égalités dans l'ordre d'entrée.
func BuildMapView(challenge model.Challenge, teams []model.Team) model.MapView {
	teamViews := make([]model.TeamMapView, 0, len(teams))
	for _, team := range teams {
		teamViews = append(teamViews, ProjectTeam(team, challenge))
	}
	sort.SliceStable(teamViews, func(i, j int) bool {
		return teamViews[i].ProgressPercent > teamViews[j].ProgressPercent
	})

	return model.MapView{
		ChallengeID:   challenge.ID,
		ChallengeName: challenge.Name,
		StartLocation: challenge.StartLocation,
		EndLocation:   challenge.EndLocation,
		TotalDistance: challenge.TotalDistance,
		TotalSteps:    challenge.TotalSteps,
		Teams:         teamViews,
		Milestones:    ProjectMilestones(challenge),
	}
}
