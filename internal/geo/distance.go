// Package geo provides great-circle distance math for listing radius
// filtering.
package geo

import "math"

const earthRadiusKm = 6371

// DistanceKm returns the Haversine great-circle distance in kilometers
// between two points given in degrees. Pure and total; NaN inputs propagate.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	latDelta := toRadians(lat2 - lat1)
	lonDelta := toRadians(lon2 - lon1)

	a := math.Sin(latDelta/2)*math.Sin(latDelta/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(lonDelta/2)*math.Sin(lonDelta/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
