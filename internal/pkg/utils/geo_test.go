package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance_SamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{12.990461, 80.220037},
		{0, 0},
		{-33.865143, 151.209900},
		{89.9, -179.9},
	}
	for _, p := range points {
		d := CalculateHaversineDistance(p[0], p[1], p[0], p[1])
		assert.Zero(t, d, "distance from (%f,%f) to itself", p[0], p[1])
	}
}

func TestCalculateHaversineDistance_Symmetric(t *testing.T) {
	pairs := [][4]float64{
		{12.990461, 80.220037, 13.082680, 80.270721},
		{51.507351, -0.127758, 48.856613, 2.352222},
		{-33.865143, 151.209900, 35.689487, 139.691711},
	}
	for _, p := range pairs {
		ab := CalculateHaversineDistance(p[0], p[1], p[2], p[3])
		ba := CalculateHaversineDistance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1.0)
	}
}

func TestCalculateHaversineDistance_HundredMetersNorth(t *testing.T) {
	// 0.0009 degrees of latitude is roughly 100 meters on the surface.
	const lat, lon = 12.990461, 80.220037
	d := CalculateHaversineDistance(lat, lon, lat+0.0009, lon)
	assert.InDelta(t, 100.0, d, 1.0)
}

func TestCalculateHaversineDistance_KnownCityPair(t *testing.T) {
	// Chennai to Bangalore is about 291 km as the crow flies.
	d := CalculateHaversineDistance(13.082680, 80.270721, 12.971599, 77.594566)
	assert.InDelta(t, 291000, d, 2000)
}
