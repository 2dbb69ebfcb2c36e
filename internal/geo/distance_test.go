package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKmZeroForSamePoint(t *testing.T) {
	assert.Equal(t, 0.0, DistanceKm(48.8566, 2.3522, 48.8566, 2.3522))
}

func TestDistanceKmSymmetry(t *testing.T) {
	d1 := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	d2 := DistanceKm(51.5074, -0.1278, 48.8566, 2.3522)
	assert.Equal(t, d1, d2)
}

func TestDistanceKmKnownDistance(t *testing.T) {
	// Paris to London is roughly 344 km.
	d := DistanceKm(48.8566, 2.3522, 51.5074, -0.1278)
	assert.InDelta(t, 344, d, 5)
}

func TestDistanceKmNonNegative(t *testing.T) {
	assert.GreaterOrEqual(t, DistanceKm(-33.8688, 151.2093, 40.7128, -74.0060), 0.0)
}

func TestDistanceKmNaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(DistanceKm(math.NaN(), 0, 0, 0)))
}
