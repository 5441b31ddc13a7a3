package geo

import (
	"testing"

	model "github.com/Hankiiee/devstep/internal/models"
	"github.com/stretchr/testify/assert"
)

var (
	london    = model.GeoPoint{Name: "London", Latitude: 51.5074, Longitude: -0.1278}
	edinburgh = model.GeoPoint{Name: "Edinburgh", Latitude: 55.9533, Longitude: -3.1883}
)

func TestPointBetween_Midpoint(t *testing.T) {
	pos := PointBetween(london, edinburgh, 0.5)

	assert.InDelta(t, 53.73035, pos.Latitude, 1e-9)
	assert.InDelta(t, -1.65805, pos.Longitude, 1e-9)
}

func TestPointBetween_Bounds(t *testing.T) {
	start := PointBetween(london, edinburgh, 0)
	assert.Equal(t, london.Latitude, start.Latitude)
	assert.Equal(t, london.Longitude, start.Longitude)

	end := PointBetween(london, edinburgh, 1)
	assert.Equal(t, edinburgh.Latitude, end.Latitude)
	assert.Equal(t, edinburgh.Longitude, end.Longitude)
}

func TestPointBetween_ClampsFraction(t *testing.T) {
	// Une fraction hors bornes est ramenée sur le segment
	beyond := PointBetween(london, edinburgh, 1.7)
	assert.Equal(t, edinburgh.Latitude, beyond.Latitude)
	assert.Equal(t, edinburgh.Longitude, beyond.Longitude)

	before := PointBetween(london, edinburgh, -0.3)
	assert.Equal(t, london.Latitude, before.Latitude)
	assert.Equal(t, london.Longitude, before.Longitude)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1))
	assert.Equal(t, 0.25, Clamp(0.25))
	assert.Equal(t, 1.0, Clamp(2.5))
}
