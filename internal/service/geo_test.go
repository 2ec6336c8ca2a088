package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHaversineKm(t *testing.T) {
	assert.InDelta(t, 0, HaversineKm(10, 20, 10, 20), 1e-9)
	assert.InDelta(t, 10, HaversineKm(0, 0, 0, 0.0899322), 1e-3)
	// порядок точек не важен
	assert.InDelta(t, HaversineKm(51.5, -0.12, 48.85, 2.35), HaversineKm(48.85, 2.35, 51.5, -0.12), 1e-9)
	// Лондон - Париж, около 343 км
	assert.InDelta(t, 343, HaversineKm(51.5074, -0.1278, 48.8566, 2.3522), 2)
}

func TestTravelMinutes(t *testing.T) {
	cases := []struct {
		km   float64
		want int
	}{
		{0, 0},
		{0.04, 0},
		{0.05, 1},
		{1, 12},
		{10, 120},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TravelMinutes(tc.km), "km=%v", tc.km)
	}
}
