package dispatch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }

func TestHaversineKm_KnownDistance(t *testing.T) {
	// Tokyo Station to Osaka Station is roughly 400km great-circle
	distance := HaversineKm(35.6812, 139.7671, 34.7025, 135.4959)

	assert.InDelta(t, 400, distance, 10)
}

func TestHaversineKm_SamePoint(t *testing.T) {
	assert.InDelta(t, 0, HaversineKm(35.0, 139.0, 35.0, 139.0), 1e-9)
}

func TestTravelScore_NoCoordinates_Default(t *testing.T) {
	assert.Equal(t, DefaultTravelScore, TravelScore(JobRequest{}, PolicyConfig{}))
}

func TestTravelScore_MissingBaseLocation_Default(t *testing.T) {
	job := JobRequest{Latitude: floatPtr(35.0), Longitude: floatPtr(139.0)}

	assert.Equal(t, DefaultTravelScore, TravelScore(job, PolicyConfig{}))
}

func TestTravelScore_CloseSiteScoresHigh(t *testing.T) {
	policy := PolicyConfig{BaseLatitude: floatPtr(35.6812), BaseLongitude: floatPtr(139.7671)}
	job := JobRequest{Latitude: floatPtr(35.6812), Longitude: floatPtr(139.7671)}

	// Zero distance scores the full 10
	assert.InDelta(t, 10.0, TravelScore(job, policy), 1e-9)
}

func TestTravelScore_FarSiteFlooredAtZero(t *testing.T) {
	// Tokyo to Naha is ~1,550km, far beyond the 500km scoring range
	policy := PolicyConfig{BaseLatitude: floatPtr(35.6812), BaseLongitude: floatPtr(139.7671)}
	job := JobRequest{Latitude: floatPtr(26.2124), Longitude: floatPtr(127.6809)}

	assert.Zero(t, TravelScore(job, policy))
}
