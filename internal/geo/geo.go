// Package geo projette une fraction de progression sur la ligne droite
// entre deux coordonnées. Interpolation linéaire par axe, pas de grand
// cercle : approximation acceptable à l'échelle des parcours modélisés.
package geo

import (
	model "github.com/Hankiiee/devstep/internal/models"
)

// PointBetween calcule la position sur la ligne [start, end] pour une
// fraction de progression. La fraction est bornée à [0, 1].
func PointBetween(start, end model.GeoPoint, fraction float64) model.Position {
	clamped := Clamp(fraction)

	return model.Position{
		Latitude:  start.Latitude + (end.Latitude-start.Latitude)*clamped,
		Longitude: start.Longitude + (end.Longitude-start.Longitude)*clamped,
	}
}

// Clamp borne une fraction à l'intervalle [0, 1]
func Clamp(fraction float64) float64 {
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}
