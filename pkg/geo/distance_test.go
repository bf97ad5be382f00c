package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm_Symmetric(t *testing.T) {
	points := [][4]float64{
		{28.6, 77.2, 28.61, 77.21},
		{51.5074, -0.1278, 40.7128, -74.0060},
		{-33.8688, 151.2093, 35.6762, 139.6503},
	}
	for _, p := range points {
		ab := HaversineKm(p[0], p[1], p[2], p[3])
		ba := HaversineKm(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestHaversineKm_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, HaversineKm(12.97, 77.59, 12.97, 77.59))
}

func TestHaversineKm_OneDegreeOfLatitude(t *testing.T) {
	assert.InDelta(t, 111.0, HaversineKm(10, 20, 11, 20), 1.0)
}

func TestHaversineKm_NearbyClinic(t *testing.T) {
	assert.InDelta(t, 1.48, HaversineKm(28.61, 77.21, 28.6, 77.2), 0.01)
}

func TestHaversineKm_NaNInput(t *testing.T) {
	assert.True(t, math.IsNaN(HaversineKm(math.NaN(), 0, 0, 0)))
}
