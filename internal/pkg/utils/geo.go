package utils

import (
	"fmt"
	"math"
)

const earthRadiusKm = 6371.0

// HaversineDistance computes the great-circle distance between two points
// in kilometers. Inputs must already be validated.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180.0
	dLon := (lon2 - lon1) * math.Pi / 180.0

	lat1Rad := lat1 * math.Pi / 180.0
	lat2Rad := lat2 * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(lat1Rad)*math.Cos(lat2Rad)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

// ValidateCoordinates reports whether lat/lon are finite and within range.
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// DistanceKm validates both coordinate pairs and returns the haversine
// distance, or ok=false when any input is out of range. Callers treat a
// failed computation as "distance unknown".
func DistanceKm(lat1, lon1, lat2, lon2 float64) (float64, bool) {
	if !ValidateCoordinates(lat1, lon1) || !ValidateCoordinates(lat2, lon2) {
		return 0, false
	}
	return HaversineDistance(lat1, lon1, lat2, lon2), true
}

// FormatDistance renders a distance for display: meters below 1 km, one
// decimal place up to 10 km, whole kilometers above that. Nil, negative or
// non-finite input renders as an empty string and the caller omits the
// distance entirely. The decimal separator is always a period.
func FormatDistance(distanceKm *float64) string {
	if distanceKm == nil {
		return ""
	}
	km := *distanceKm
	if math.IsNaN(km) || math.IsInf(km, 0) || km < 0 {
		return ""
	}
	if km < 1 {
		return fmt.Sprintf("Aprox. %.0f m", km*1000)
	}
	if km < 10 {
		return fmt.Sprintf("Aprox. %.1f km", km)
	}
	return fmt.Sprintf("Aprox. %.0f km", km)
}
