package dispatch

import "math"

const (
	// DefaultTravelScore is used when the job or base location has no
	// resolved coordinates
	DefaultTravelScore = 8.0

	// travelKmPerPoint is the distance that costs one point of travel
	// score, covering a 0-500km working range
	travelKmPerPoint = 50.0

	earthRadiusKm = 6371.0
)

// HaversineKm returns the great-circle distance between two coordinates
func HaversineKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// TravelScore rates how close the job site is to the base location on a
// 0-10 scale. Missing coordinates on either end degrade to the default
// score rather than failing - geocoding is not this engine's job.
func TravelScore(job JobRequest, policy PolicyConfig) float64 {
	if job.Latitude == nil || job.Longitude == nil ||
		policy.BaseLatitude == nil || policy.BaseLongitude == nil {
		return DefaultTravelScore
	}

	distance := HaversineKm(*policy.BaseLatitude, *policy.BaseLongitude, *job.Latitude, *job.Longitude)
	score := 10 - distance/travelKmPerPoint
	if score < 0 {
		return 0
	}
	return score
}
